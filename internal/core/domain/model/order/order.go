package order

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder constructor")

	// ErrPolicyIsRequired is returned when an order is built without a variant policy.
	ErrPolicyIsRequired = errs.NewValueIsRequiredError("order policy")
)

// Order is the lifecycle engine shared by every order variant. It owns the status and
// payment status axes, the item ledger, the event timeline and the create/finish stamps.
//
// Order follows these invariants:
//   - TotalAmount = SubTotal + VatAmount and VatAmount = SubTotal x VatRate after every item change
//   - items are unique by ItemID
//   - events are append-only and only manual ones are editable
//   - finish stamps are written once, by Complete, Cancel or Return
//
// Variant behavior (how a line is totaled, how an event is built) is delegated to a Policy.
type Order struct {
	id     kernel.UUID
	policy Policy

	fromLocation kernel.Location
	toLocation   kernel.Location

	status        Status
	paymentStatus PaymentStatus

	ledger    Ledger
	events    EventLog
	lifecycle kernel.Lifecycle

	deliverTime *time.Time
	problem     string
	invoiceURL  string
	receiptURL  string

	// version is the optimistic concurrency token of the stored snapshot
	version int64

	isConstructed bool
}

// NewOrder creates an order in Processing with payment Pending and no items.
//
// Parameters:
//   - id: unique order identifier
//   - policy: the variant policy (purchase or sales)
//   - from: source location, may be zero when the variant has none yet
//   - to: destination location, required
//   - vatRate: fixed VAT rate used for every recalculation
//   - userID: creator identity supplied by the identity collaborator
func NewOrder(
	id kernel.UUID,
	policy Policy,
	from, to kernel.Location,
	vatRate kernel.VatRate,
	userID string,
) (*Order, error) {
	if policy == nil {
		return nil, ErrPolicyIsRequired
	}

	o := &Order{
		policy:        policy,
		fromLocation:  from,
		status:        Processing,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	lifecycle, errLifecycle := kernel.BeginLifecycle(userID, now())
	ledger, errLedger := NewLedger(vatRate, policy.LineTotal)
	if err := errors.Join(
		o.setID(id),
		o.setToLocation(to),
		errLedger,
		errLifecycle,
	); err != nil {
		return nil, err
	}
	o.ledger = ledger
	o.lifecycle = lifecycle

	return o, nil
}

// RestoreParams carries a persisted order snapshot.
type RestoreParams struct {
	ID            kernel.UUID
	FromLocation  kernel.Location
	ToLocation    kernel.Location
	VatRate       kernel.VatRate
	Status        Status
	PaymentStatus PaymentStatus
	Items         []Item
	Events        []Event
	Lifecycle     kernel.Lifecycle
	DeliverTime   *time.Time
	Problem       string
	InvoiceURL    string
	ReceiptURL    string
	Version       int64
}

// RestoreOrder rebuilds an order loaded from persistence. Totals are recomputed
// from the items rather than trusted from storage.
func RestoreOrder(policy Policy, p RestoreParams) (*Order, error) {
	if policy == nil {
		return nil, ErrPolicyIsRequired
	}

	o := &Order{
		policy:        policy,
		fromLocation:  p.FromLocation,
		status:        p.Status,
		paymentStatus: p.PaymentStatus,
		lifecycle:     p.Lifecycle,
		deliverTime:   p.DeliverTime,
		problem:       p.Problem,
		invoiceURL:    p.InvoiceURL,
		receiptURL:    p.ReceiptURL,
		version:       p.Version,
		isConstructed: true,
	}

	ledger, errLedger := NewLedger(p.VatRate, policy.LineTotal)
	events, errEvents := RestoreEventLog(p.Events)
	if err := errors.Join(
		o.setID(p.ID),
		o.setToLocation(p.ToLocation),
		p.Status.Validate(),
		p.PaymentStatus.Validate(),
		errLedger,
		errEvents,
	); err != nil {
		return nil, err
	}
	if p.Status.IsTerminal() != p.Lifecycle.IsEnded() {
		return nil, errs.NewValueIsInvalidErrorWithCause("finish stamps",
			fmt.Errorf("status %s does not match finish time", p.Status))
	}
	if err := ledger.Replace(p.Items); err != nil {
		return nil, err
	}
	o.ledger = ledger
	o.events = events

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Kind() Kind {
	return o.policy.Kind()
}

func (o *Order) FromLocation() kernel.Location {
	return o.fromLocation
}

func (o *Order) ToLocation() kernel.Location {
	return o.toLocation
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) VatRate() kernel.VatRate {
	return o.ledger.VatRate()
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return o.ledger.Items()
}

func (o *Order) Totals() kernel.Totals {
	return o.ledger.Totals()
}

// Events returns a copy of the timeline in insertion order.
func (o *Order) Events() []Event {
	return o.events.Events()
}

func (o *Order) Lifecycle() kernel.Lifecycle {
	return o.lifecycle
}

// IsEnded reports whether finish stamps have been written.
func (o *Order) IsEnded() bool {
	return o.lifecycle.IsEnded()
}

func (o *Order) DeliverTime() *time.Time {
	return o.deliverTime
}

// Problem is the reason given when the order was canceled or returned.
func (o *Order) Problem() string {
	return o.problem
}

func (o *Order) InvoiceURL() string {
	return o.invoiceURL
}

func (o *Order) ReceiptURL() string {
	return o.receiptURL
}

func (o *Order) Version() int64 {
	return o.version
}

// AdvanceVersion is called by the persistence layer after a successful write.
func (o *Order) AdvanceVersion() {
	o.version++
}

// AddItem appends a line while the order is still Processing.
func (o *Order) AddItem(item Item) error {
	if o.ledger.Contains(item.ItemID()) {
		return errs.NewDuplicateItemError(item.ItemID())
	}
	if o.status != Processing {
		return errs.NewIllegalTransitionError("add item", o.status)
	}
	return o.ledger.Add(item)
}

// ReplaceItems swaps the whole item set while the order is still Processing.
func (o *Order) ReplaceItems(items []Item) error {
	if o.status != Processing {
		return errs.NewIllegalTransitionError("replace items", o.status)
	}
	return o.ledger.Replace(items)
}

// UpdateLocations edits the route. A nil argument leaves that end unchanged.
// The source is editable only while Processing; the destination until delivery completes.
func (o *Order) UpdateLocations(from, to *kernel.Location) error {
	if from != nil && o.status != Processing {
		return errs.NewIllegalTransitionError("change source location", o.status)
	}
	if to != nil && o.status != Processing && o.status != Delivering {
		return errs.NewIllegalTransitionError("change destination location", o.status)
	}
	if to != nil {
		if err := o.setToLocation(*to); err != nil {
			return err
		}
	}
	if from != nil {
		o.fromLocation = *from
	}
	return nil
}

// RecordManualEvent appends an operator event. Only Left, Arrived, Delivered and
// Interrupted may be recorded this way.
func (o *Order) RecordManualEvent(eventType EventType, location kernel.Location, message string) (Event, error) {
	if !eventType.IsManual() {
		return Event{}, errs.NewInvalidEventTypeError(eventType)
	}
	return o.recordEvent(eventType, location, message)
}

// EditEvent changes the location and/or message of a Left, Arrived or Interrupted event.
func (o *Order) EditEvent(id int64, location *kernel.Location, message *string) (Event, error) {
	return o.events.Edit(id, location, message)
}

// StartDelivery moves a Processing order to Delivering.
func (o *Order) StartDelivery() error {
	next, err := o.status.StartDelivery()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// FinishDelivery moves a Delivering order to Delivered, makes payment Due and stamps
// the delivery time. No event is emitted; operators record Delivered events manually.
func (o *Order) FinishDelivery() error {
	next, err := o.status.FinishDelivery()
	if err != nil {
		return err
	}
	delivered := now()
	o.status = next
	o.paymentStatus = PaymentDue
	o.deliverTime = &delivered
	return nil
}

// Complete finishes a Delivered order. Payment becomes Due unless it was already completed.
func (o *Order) Complete(userID string) error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	if err = o.finish(userID); err != nil {
		return err
	}
	o.status = next
	if o.paymentStatus != PaymentCompleted {
		o.paymentStatus = PaymentDue
	}
	_, err = o.recordEvent(EventCompleted, o.toLocation, "")
	return err
}

// Cancel terminates an order before delivery completes. The Canceled event is placed at
// the last recorded event's location, falling back to the source and then the destination.
func (o *Order) Cancel(userID, problem string) error {
	problem = strings.TrimSpace(problem)
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	if problem == "" {
		return errs.NewValueIsRequiredError("problem")
	}
	if err = o.finish(userID); err != nil {
		return err
	}
	o.status = next
	o.paymentStatus = PaymentCanceled
	o.problem = problem
	_, err = o.recordEvent(EventCanceled, o.cancelLocation(), problem)
	return err
}

// Return terminates a Delivered order that was sent back.
func (o *Order) Return(userID, problem string) error {
	problem = strings.TrimSpace(problem)
	next, err := o.status.Return()
	if err != nil {
		return err
	}
	if problem == "" {
		return errs.NewValueIsRequiredError("problem")
	}
	if err = o.finish(userID); err != nil {
		return err
	}
	o.status = next
	o.paymentStatus = PaymentCanceled
	o.problem = problem
	_, err = o.recordEvent(EventReturned, o.toLocation, problem)
	return err
}

// CompletePayment settles a Due payment and emits PaymentCompleted.
func (o *Order) CompletePayment() error {
	next, err := o.paymentStatus.Complete()
	if err != nil {
		return err
	}
	o.paymentStatus = next
	_, err = o.recordEvent(EventPaymentCompleted, o.toLocation, "")
	return err
}

// AttachInvoice stores a reference to an invoice document kept by external storage.
func (o *Order) AttachInvoice(ref string) error {
	ref, err := o.validateDocument(ref)
	if err != nil {
		return err
	}
	o.invoiceURL = ref
	return nil
}

// AttachReceipt stores a reference to a receipt document kept by external storage.
func (o *Order) AttachReceipt(ref string) error {
	ref, err := o.validateDocument(ref)
	if err != nil {
		return err
	}
	o.receiptURL = ref
	return nil
}

func (o *Order) validateDocument(ref string) (string, error) {
	if o.status == Canceled || o.status == Returned {
		return "", errs.NewIllegalTransitionError("attach document", o.status)
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errs.NewValueIsRequiredError("document url")
	}
	if _, err := url.ParseRequestURI(ref); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("document url", err)
	}
	return ref, nil
}

// finish is the only writer of the finish stamps.
func (o *Order) finish(userID string) error {
	return o.lifecycle.End(userID, now())
}

func (o *Order) cancelLocation() kernel.Location {
	if last, ok := o.events.Last(); ok {
		return last.Location()
	}
	if !o.fromLocation.IsZero() {
		return o.fromLocation
	}
	return o.toLocation
}

func (o *Order) recordEvent(eventType EventType, location kernel.Location, message string) (Event, error) {
	e, err := o.policy.NewEvent(o.events.NextID(), eventType, location, message, now())
	if err != nil {
		return Event{}, err
	}
	if err = o.events.Append(e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setToLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination location", err)
	}
	o.toLocation = location
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
