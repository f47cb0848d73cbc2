package commands

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order to a target status:
//   - Delivering runs StartDelivery
//   - Delivered runs FinishDelivery
//   - Completed runs Complete and needs a user
//   - Canceled and Returned run Cancel and Return and need a user and a problem
type ChangeOrderStatusCommand struct {
	ref     OrderRef
	target  order.Status
	userID  string
	problem string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	ref OrderRef,
	target order.Status,
	userID, problem string,
) (ChangeOrderStatusCommand, error) {
	problems := []error{ref.Kind().Validate()}
	switch target {
	case order.Delivering, order.Delivered:
	case order.Completed:
		problems = append(problems, kernel.ValidateUserID(userID))
	case order.Canceled, order.Returned:
		problems = append(problems, kernel.ValidateUserID(userID), validateProblem(problem))
	case order.StatusUnknown, order.Processing:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("target status",
			fmt.Errorf("%s cannot be requested", target)))
	default:
		problems = append(problems, target.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		ref:     ref,
		target:  target,
		userID:  userID,
		problem: problem,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Ref() OrderRef {
	return c.ref
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c ChangeOrderStatusCommand) UserID() string {
	return c.userID
}

func (c ChangeOrderStatusCommand) Problem() string {
	return c.problem
}
