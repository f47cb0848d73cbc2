package order

import (
	"slices"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// EventLog is the append-only timeline of an order. Entries are never removed;
// editable entries change in place and keep their position.
type EventLog struct {
	events []Event
	lastID int64
}

// RestoreEventLog rebuilds a log from persisted events in insertion order.
func RestoreEventLog(events []Event) (EventLog, error) {
	log := EventLog{}
	for _, e := range events {
		if _, found := log.find(e.ID()); found {
			return EventLog{}, errs.NewValueIsInvalidError("duplicate event id")
		}
		log.events = append(log.events, e)
		log.lastID = max(log.lastID, e.ID())
	}
	return log, nil
}

// NextID is the id the next appended event receives.
func (l EventLog) NextID() int64 {
	return l.lastID + 1
}

// Append adds an event built for NextID.
func (l *EventLog) Append(e Event) error {
	if e.ID() != l.NextID() {
		return errs.NewValueIsInvalidError("event id is out of sequence")
	}
	l.events = append(l.events, e)
	l.lastID = e.ID()
	return nil
}

// Edit updates the supplied fields of a manual event. Nil arguments leave a field unchanged.
func (l *EventLog) Edit(id int64, location *kernel.Location, message *string) (Event, error) {
	idx, found := l.find(id)
	if !found {
		return Event{}, errs.NewObjectNotFoundError("event", id)
	}
	e := l.events[idx]
	if !e.Type().IsEditable() {
		return Event{}, errs.NewImmutableEventError(id, e.Type())
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return Event{}, errs.NewValueIsRequiredErrorWithCause("event location", err)
		}
		e.location = *location
	}
	if message != nil {
		e.message = *message
	}
	l.events[idx] = e
	return e, nil
}

// Last returns the most recently appended event.
func (l EventLog) Last() (Event, bool) {
	if len(l.events) == 0 {
		return Event{}, false
	}
	return l.events[len(l.events)-1], true
}

func (l EventLog) Get(id int64) (Event, bool) {
	idx, found := l.find(id)
	if !found {
		return Event{}, false
	}
	return l.events[idx], true
}

// Events returns a copy of the timeline.
func (l EventLog) Events() []Event {
	return slices.Clone(l.events)
}

func (l EventLog) Len() int {
	return len(l.events)
}

func (l EventLog) find(id int64) (int, bool) {
	idx := slices.IndexFunc(l.events, func(e Event) bool { return e.ID() == id })
	return idx, idx >= 0
}
