package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrDuplicateItem     = errors.New("duplicate item")
	ErrImmutableEvent    = errors.New("event is immutable")
	ErrInvalidEventType  = errors.New("invalid event type")
)

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(fmt.Sprintf("%v", v))
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports that the entity identified by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed input value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports data an operation needs but did not receive.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports a stale concurrency token.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// IllegalTransitionError reports an operation invoked from a state that forbids it.
type IllegalTransitionError struct {
	Operation string
	State     string
	Cause     error
}

func NewIllegalTransitionError(operation string, state fmt.Stringer) *IllegalTransitionError {
	return &IllegalTransitionError{Operation: operation, State: state.String()}
}

func NewIllegalTransitionErrorWithCause(operation string, state fmt.Stringer, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{Operation: operation, State: state.String(), Cause: cause}
}

func (e *IllegalTransitionError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s from %s", ErrIllegalTransition, e.Operation, e.State)
	return withCause(msg, e.Cause)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// DuplicateItemError reports a repeated item identifier within one item set.
type DuplicateItemError struct {
	ItemID any
}

func NewDuplicateItemError(itemID any) *DuplicateItemError {
	return &DuplicateItemError{ItemID: itemID}
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateItem, sanitize(e.ItemID))
}

func (e *DuplicateItemError) Unwrap() error {
	return ErrDuplicateItem
}

// ImmutableEventError reports an edit attempt on an automatic event.
type ImmutableEventError struct {
	EventID any
	Type    string
}

func NewImmutableEventError(eventID any, eventType fmt.Stringer) *ImmutableEventError {
	return &ImmutableEventError{EventID: eventID, Type: eventType.String()}
}

func (e *ImmutableEventError) Error() string {
	return fmt.Sprintf("%s: %s is a %s event", ErrImmutableEvent, sanitize(e.EventID), e.Type)
}

func (e *ImmutableEventError) Unwrap() error {
	return ErrImmutableEvent
}

// InvalidEventTypeError reports a manual event request with a non-manual type.
type InvalidEventTypeError struct {
	Type string
}

func NewInvalidEventTypeError(eventType fmt.Stringer) *InvalidEventTypeError {
	return &InvalidEventTypeError{Type: eventType.String()}
}

func (e *InvalidEventTypeError) Error() string {
	return fmt.Sprintf("%s: %s cannot be recorded manually", ErrInvalidEventType, e.Type)
}

func (e *InvalidEventTypeError) Unwrap() error {
	return ErrInvalidEventType
}
