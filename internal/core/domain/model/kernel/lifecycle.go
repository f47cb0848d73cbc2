package kernel

import (
	"time"

	"supplychain/internal/pkg/errs"
)

type lifecycleState string

func (s lifecycleState) String() string { return string(s) }

// Lifecycle records who created an aggregate and who finished it.
// The creator is immutable; the finisher is written at most once.
type Lifecycle struct {
	createUserID string
	createTime   time.Time
	finishUserID string
	finishTime   *time.Time
}

// BeginLifecycle stamps the creator.
func BeginLifecycle(userID string, at time.Time) (Lifecycle, error) {
	if err := ValidateUserID(userID); err != nil {
		return Lifecycle{}, err
	}
	return Lifecycle{createUserID: userID, createTime: at.UTC()}, nil
}

// RestoreLifecycle rebuilds stamps loaded from persistence.
func RestoreLifecycle(createUserID string, createTime time.Time, finishUserID string, finishTime *time.Time) Lifecycle {
	return Lifecycle{
		createUserID: createUserID,
		createTime:   createTime,
		finishUserID: finishUserID,
		finishTime:   finishTime,
	}
}

// End stamps the finisher. A second call fails with IllegalTransitionError.
func (l *Lifecycle) End(userID string, at time.Time) error {
	if l.IsEnded() {
		return errs.NewIllegalTransitionError("finish", lifecycleState("Ended"))
	}
	if err := ValidateUserID(userID); err != nil {
		return err
	}
	finished := at.UTC()
	l.finishUserID = userID
	l.finishTime = &finished
	return nil
}

func (l Lifecycle) IsEnded() bool {
	return l.finishTime != nil
}

func (l Lifecycle) CreateUserID() string {
	return l.createUserID
}

func (l Lifecycle) CreateTime() time.Time {
	return l.createTime
}

func (l Lifecycle) FinishUserID() string {
	return l.finishUserID
}

func (l Lifecycle) FinishTime() *time.Time {
	return l.finishTime
}

// ValidateUserID checks the identifier supplied by the identity collaborator.
func ValidateUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	return nil
}
