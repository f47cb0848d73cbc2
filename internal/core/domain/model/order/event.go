package order

import (
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// EventType classifies an entry of the order timeline.
type EventType int

const (
	EventUnknown EventType = iota
	EventLeft
	EventArrived
	EventDelivered
	EventInterrupted
	EventCompleted
	EventCanceled
	EventReturned
	EventPaymentCompleted
)

var eventTypeNames = map[EventType]string{
	EventUnknown:          "Unknown",
	EventLeft:             "Left",
	EventArrived:          "Arrived",
	EventDelivered:        "Delivered",
	EventInterrupted:      "Interrupted",
	EventCompleted:        "Completed",
	EventCanceled:         "Canceled",
	EventReturned:         "Returned",
	EventPaymentCompleted: "PaymentCompleted",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

func (t EventType) Validate() error {
	if t <= EventUnknown || t > EventPaymentCompleted {
		return errs.NewValueIsInvalidErrorWithCause("event type", fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

// IsManual reports whether an operator may record this type by hand.
func (t EventType) IsManual() bool {
	switch t {
	case EventLeft, EventArrived, EventDelivered, EventInterrupted:
		return true
	default:
		return false
	}
}

// IsEditable reports whether an event of this type may change after it was recorded.
// Delivered can be recorded manually but is immutable afterwards.
func (t EventType) IsEditable() bool {
	return t == EventLeft || t == EventArrived || t == EventInterrupted
}

// Event is one entry of the order timeline.
type Event struct {
	id        int64
	eventType EventType
	location  kernel.Location
	message   string
	time      time.Time
}

// NewEvent builds an event record. Ids are assigned by the owning log.
func NewEvent(id int64, eventType EventType, location kernel.Location, message string, at time.Time) (Event, error) {
	if id <= 0 {
		return Event{}, errs.NewValueIsInvalidErrorWithCause("event id", fmt.Errorf("%d must be positive", id))
	}
	if err := eventType.Validate(); err != nil {
		return Event{}, err
	}
	if err := location.Validate(); err != nil {
		return Event{}, errs.NewValueIsRequiredErrorWithCause("event location", err)
	}
	return Event{id: id, eventType: eventType, location: location, message: message, time: at.UTC()}, nil
}

func (e Event) ID() int64 {
	return e.id
}

func (e Event) Type() EventType {
	return e.eventType
}

func (e Event) Location() kernel.Location {
	return e.location
}

func (e Event) Message() string {
	return e.message
}

func (e Event) Time() time.Time {
	return e.time
}
