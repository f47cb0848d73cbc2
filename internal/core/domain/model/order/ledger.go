package order

import (
	"slices"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineTotalFunc decides how much a single line contributes to the subtotal.
type LineTotalFunc func(Item) decimal.Decimal

// Ledger is the item set of an order together with its cached totals.
// Items are unique by ItemID and totals are recomputed on every mutation.
type Ledger struct {
	items     []Item
	vatRate   kernel.VatRate
	lineTotal LineTotalFunc
	totals    kernel.Totals
}

// NewLedger returns an empty ledger with a fixed VAT rate.
// A nil lineTotal totals lines by GrossLineTotal.
func NewLedger(vatRate kernel.VatRate, lineTotal LineTotalFunc) (Ledger, error) {
	if err := vatRate.Validate(); err != nil {
		return Ledger{}, err
	}
	if lineTotal == nil {
		lineTotal = GrossLineTotal
	}
	l := Ledger{vatRate: vatRate, lineTotal: lineTotal}
	l.recalculate()
	return l, nil
}

// Add appends an item. The item set is unchanged when the id is already present.
func (l *Ledger) Add(item Item) error {
	if l.Contains(item.ItemID()) {
		return errs.NewDuplicateItemError(item.ItemID())
	}
	l.items = append(l.items, item)
	l.recalculate()
	return nil
}

// Replace swaps the whole item set. Duplicates in the input reject the call.
func (l *Ledger) Replace(items []Item) error {
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ItemID()]; ok {
			return errs.NewDuplicateItemError(item.ItemID())
		}
		seen[item.ItemID()] = struct{}{}
	}
	l.items = slices.Clone(items)
	l.recalculate()
	return nil
}

func (l Ledger) Contains(itemID int64) bool {
	return slices.ContainsFunc(l.items, func(i Item) bool { return i.ItemID() == itemID })
}

// Items returns a copy of the item set in insertion order.
func (l Ledger) Items() []Item {
	return slices.Clone(l.items)
}

func (l Ledger) Len() int {
	return len(l.items)
}

func (l Ledger) VatRate() kernel.VatRate {
	return l.vatRate
}

func (l Ledger) Totals() kernel.Totals {
	return l.totals
}

func (l *Ledger) recalculate() {
	lines := make([]decimal.Decimal, 0, len(l.items))
	for _, item := range l.items {
		lines = append(lines, l.lineTotal(item))
	}
	l.totals = kernel.CalculateTotals(lines, l.vatRate)
}
