package kernel

import (
	"errors"
	"fmt"

	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when a zero-value Party is used.
var ErrPartyIsNotConstructed = errs.NewValueIsRequiredError("party must be created via NewParty")

// Party references master data owned outside this core: a vendor, a customer or a
// production facility, together with the location goods are shipped from or to by default.
type Party struct { //nolint:recvcheck //using for validation
	id       int64
	location Location
	guard    guard.ConstructorGuard
}

func NewParty(id int64, location Location) (Party, error) {
	p := Party{guard: guard.NewConstructorGuard()}
	if err := errors.Join(p.setID(id), p.setLocation(location)); err != nil {
		return Party{}, err
	}
	return p, nil
}

func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

func (p Party) ID() int64 {
	return p.id
}

// Location is the party's default location.
func (p Party) Location() Location {
	return p.location
}

func (p *Party) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("party id", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Party) setLocation(location Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}
