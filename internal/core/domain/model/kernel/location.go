package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// LocationMaxLength bounds the stored address text.
const LocationMaxLength = 255

// ErrLocationIsNotConstructed is returned when a zero-value Location is used where one is required.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Location is the address goods leave from or arrive at. The zero value means "not set".
type Location struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewLocation trims the address and rejects empty or oversized values.
func NewLocation(name string) (Location, error) {
	loc := Location{guard: guard.NewConstructorGuard()}
	if err := loc.setName(name); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// MustLocation is NewLocation for literals known to be valid.
func MustLocation(name string) Location {
	loc, err := NewLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// IsZero reports whether the location was never set.
func (l Location) IsZero() bool {
	return l.Validate() != nil
}

func (l Location) String() string {
	return l.name
}

func (l Location) IsEqual(other Location) bool {
	return l.name == other.name && l.IsZero() == other.IsZero()
}

func (l *Location) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("location")
	}
	if n := utf8.RuneCountInString(name); n > LocationMaxLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"location",
			fmt.Errorf("%d characters exceed the limit of %d", n, LocationMaxLength),
		)
	}
	l.name = name
	return nil
}
