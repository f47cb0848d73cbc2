package requisition

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/purchase"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrRequisitionIsNotConstructed is returned when a PurchaseRequisition was not created
	// through NewPurchaseRequisition or RestorePurchaseRequisition.
	ErrRequisitionIsNotConstructed = errors.New("requisition must be created via NewPurchaseRequisition constructor")

	errLiveOrder     = errors.New("a derived purchase order is still live")
	errMissingLinked = errors.New("a derived purchase order was not supplied")
)

// PurchaseRequisition is the aggregate root of the approval workflow.
//
// Invariants:
//   - ApprovalStatus becomes Approved only when both approval slots are filled
//   - a rejected requisition is canceled
//   - at most one derived purchase order is live at a time
//   - finish stamps are written once, by Cancel or Complete
type PurchaseRequisition struct {
	id       kernel.UUID
	vendor   kernel.Party
	facility kernel.Party

	ledger order.Ledger

	status         Status
	approvalStatus ApprovalStatus
	approvals      Approvals

	lifecycle kernel.Lifecycle
	problem   string

	purchaseOrderIDs []kernel.UUID

	version int64

	isConstructed bool
}

// NewPurchaseRequisition creates a requisition awaiting approval.
func NewPurchaseRequisition(
	id kernel.UUID,
	vendor, facility kernel.Party,
	vatRate kernel.VatRate,
	userID string,
) (*PurchaseRequisition, error) {
	r := &PurchaseRequisition{
		status:         Processing,
		approvalStatus: PendingApproval,
		isConstructed:  true,
	}

	lifecycle, errLifecycle := kernel.BeginLifecycle(userID, now())
	ledger, errLedger := order.NewLedger(vatRate, order.GrossLineTotal)
	if err := errors.Join(
		r.setID(id),
		r.setVendor(vendor),
		r.setFacility(facility),
		errLedger,
		errLifecycle,
	); err != nil {
		return nil, err
	}
	r.ledger = ledger
	r.lifecycle = lifecycle

	return r, nil
}

// RestoreParams carries a persisted requisition snapshot.
type RestoreParams struct {
	ID               kernel.UUID
	Vendor           kernel.Party
	Facility         kernel.Party
	VatRate          kernel.VatRate
	Items            []order.Item
	Status           Status
	ApprovalStatus   ApprovalStatus
	Approvals        Approvals
	Lifecycle        kernel.Lifecycle
	Problem          string
	PurchaseOrderIDs []kernel.UUID
	Version          int64
}

func RestorePurchaseRequisition(p RestoreParams) (*PurchaseRequisition, error) {
	r := &PurchaseRequisition{
		status:           p.Status,
		approvalStatus:   p.ApprovalStatus,
		approvals:        p.Approvals,
		lifecycle:        p.Lifecycle,
		problem:          p.Problem,
		purchaseOrderIDs: slices.Clone(p.PurchaseOrderIDs),
		version:          p.Version,
		isConstructed:    true,
	}

	ledger, errLedger := order.NewLedger(p.VatRate, order.GrossLineTotal)
	if err := errors.Join(
		r.setID(p.ID),
		r.setVendor(p.Vendor),
		r.setFacility(p.Facility),
		p.Status.Validate(),
		p.ApprovalStatus.Validate(),
		errLedger,
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
	r.ledger = ledger

	return r, nil
}

func (r *PurchaseRequisition) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequisitionIsNotConstructed
	}
	return nil
}

func (r *PurchaseRequisition) ID() kernel.UUID {
	return r.id
}

func (r *PurchaseRequisition) Vendor() kernel.Party {
	return r.vendor
}

func (r *PurchaseRequisition) Facility() kernel.Party {
	return r.facility
}

func (r *PurchaseRequisition) Items() []order.Item {
	return r.ledger.Items()
}

func (r *PurchaseRequisition) VatRate() kernel.VatRate {
	return r.ledger.VatRate()
}

func (r *PurchaseRequisition) Totals() kernel.Totals {
	return r.ledger.Totals()
}

func (r *PurchaseRequisition) Status() Status {
	return r.status
}

func (r *PurchaseRequisition) ApprovalStatus() ApprovalStatus {
	return r.approvalStatus
}

func (r *PurchaseRequisition) Approvals() Approvals {
	return r.approvals
}

func (r *PurchaseRequisition) Lifecycle() kernel.Lifecycle {
	return r.lifecycle
}

func (r *PurchaseRequisition) IsEnded() bool {
	return r.lifecycle.IsEnded()
}

func (r *PurchaseRequisition) Problem() string {
	return r.problem
}

// PurchaseOrderIDs lists every purchase order derived so far, oldest first.
func (r *PurchaseRequisition) PurchaseOrderIDs() []kernel.UUID {
	return slices.Clone(r.purchaseOrderIDs)
}

func (r *PurchaseRequisition) Version() int64 {
	return r.version
}

// AdvanceVersion is called by the persistence layer after a successful write.
func (r *PurchaseRequisition) AdvanceVersion() {
	r.version++
}

// IsInfoUpdateAllowed reports whether items may still change.
func (r *PurchaseRequisition) IsInfoUpdateAllowed() bool {
	return !r.IsEnded() && r.approvalStatus == PendingApproval
}

// IsApprovalAllowed reports whether an approver may still sign or reject.
func (r *PurchaseRequisition) IsApprovalAllowed() bool {
	return !r.IsEnded() && r.approvalStatus == PendingApproval
}

// IsPurchaseOrderCreateAllowed reports whether GeneratePurchaseOrder passes its state checks.
// Liveness of previously derived orders is checked separately.
func (r *PurchaseRequisition) IsPurchaseOrderCreateAllowed() bool {
	return !r.IsEnded() && r.approvalStatus == Approved && r.status != Purchasing
}

func (r *PurchaseRequisition) AddItem(item order.Item) error {
	if r.ledger.Contains(item.ItemID()) {
		return errs.NewDuplicateItemError(item.ItemID())
	}
	if !r.IsInfoUpdateAllowed() {
		return errs.NewIllegalTransitionError("add item", r.approvalStatus)
	}
	return r.ledger.Add(item)
}

func (r *PurchaseRequisition) ReplaceItems(items []order.Item) error {
	if !r.IsInfoUpdateAllowed() {
		return errs.NewIllegalTransitionError("replace items", r.approvalStatus)
	}
	return r.ledger.Replace(items)
}

// Approve fills the slot for role. The requisition becomes Approved once both
// slots are filled, in either order.
func (r *PurchaseRequisition) Approve(role Role, userID string) error {
	if !r.IsApprovalAllowed() {
		return errs.NewIllegalTransitionError("approve", r.approvalStatus)
	}
	approvals, err := r.approvals.Sign(role, userID, now())
	if err != nil {
		return err
	}
	r.approvals = approvals
	if approvals.IsComplete() {
		r.approvalStatus = Approved
	}
	return nil
}

func (r *PurchaseRequisition) ApproveByFinance(userID string) error {
	return r.Approve(RoleFinance, userID)
}

func (r *PurchaseRequisition) ApproveByProductionManager(userID string) error {
	return r.Approve(RoleProductionManager, userID)
}

// Reject refuses a pending requisition and cancels it with the given problem.
func (r *PurchaseRequisition) Reject(userID, problem string) error {
	if !r.IsApprovalAllowed() {
		return errs.NewIllegalTransitionError("reject", r.approvalStatus)
	}
	if err := r.Cancel(userID, problem); err != nil {
		return err
	}
	r.approvalStatus = Rejected
	return nil
}

// Cancel terminates a requisition that has not ended yet.
func (r *PurchaseRequisition) Cancel(userID, problem string) error {
	if r.status.IsTerminal() {
		return errs.NewIllegalTransitionError("cancel", r.status)
	}
	problem = strings.TrimSpace(problem)
	if problem == "" {
		return errs.NewValueIsRequiredError("problem")
	}
	if err := r.lifecycle.End(userID, now()); err != nil {
		return err
	}
	r.status = Canceled
	r.problem = problem
	return nil
}

// Complete closes a requisition whose purchase order is outstanding.
func (r *PurchaseRequisition) Complete(userID string) error {
	if r.status != Purchasing {
		return errs.NewIllegalTransitionError("complete", r.status)
	}
	if err := r.lifecycle.End(userID, now()); err != nil {
		return err
	}
	r.status = Completed
	return nil
}

// Delay parks a requisition whose purchase order is stuck. A new purchase order may
// be derived afterwards once the previous one is no longer live.
func (r *PurchaseRequisition) Delay(problem string) error {
	if r.status != Purchasing {
		return errs.NewIllegalTransitionError("delay", r.status)
	}
	problem = strings.TrimSpace(problem)
	if problem == "" {
		return errs.NewValueIsRequiredError("problem")
	}
	r.status = Delayed
	r.problem = problem
	return nil
}

// GeneratePurchaseOrder derives a purchase order from an approved requisition.
//
// The order ships from the vendor's default location to the facility's location and
// carries a copy of the requisition items. linked are the orders derived earlier and
// must cover every linked id; the call fails while any of them is still live. On success the new order is linked and
// the requisition moves to Purchasing. Both aggregates must be persisted together.
func (r *PurchaseRequisition) GeneratePurchaseOrder(
	id kernel.UUID,
	userID string,
	linked []*purchase.PurchaseOrder,
) (*purchase.PurchaseOrder, error) {
	switch {
	case r.IsEnded():
		return nil, errs.NewIllegalTransitionError("generate purchase order", r.status)
	case r.approvalStatus != Approved:
		return nil, errs.NewIllegalTransitionError("generate purchase order", r.approvalStatus)
	case r.status == Purchasing:
		return nil, errs.NewIllegalTransitionError("generate purchase order", r.status)
	}
	for _, id := range r.purchaseOrderIDs {
		supplied := slices.ContainsFunc(linked, func(po *purchase.PurchaseOrder) bool {
			return po != nil && po.ID().IsEqual(id)
		})
		if !supplied {
			return nil, errs.NewIllegalTransitionErrorWithCause("generate purchase order", r.status,
				fmt.Errorf("%w: %s", errMissingLinked, id))
		}
	}
	for _, po := range linked {
		if po.IsLive() {
			return nil, errs.NewIllegalTransitionErrorWithCause("generate purchase order", r.status,
				fmt.Errorf("%w: %s", errLiveOrder, po.ID()))
		}
	}

	po, err := purchase.NewPurchaseOrder(id, r.vendor, r.facility, r.ledger.VatRate(), userID)
	if err != nil {
		return nil, err
	}
	if err = po.ReplaceItems(r.ledger.Items()); err != nil {
		return nil, err
	}
	if err = po.LinkRequisition(r.id); err != nil {
		return nil, err
	}

	r.purchaseOrderIDs = append(r.purchaseOrderIDs, po.ID())
	r.status = Purchasing
	return po, nil
}

func (r *PurchaseRequisition) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requisition id", err)
	}
	r.id = id
	return nil
}

func (r *PurchaseRequisition) setVendor(vendor kernel.Party) error {
	if err := vendor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendor", err)
	}
	r.vendor = vendor
	return nil
}

func (r *PurchaseRequisition) setFacility(facility kernel.Party) error {
	if err := facility.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("production facility", err)
	}
	r.facility = facility
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
