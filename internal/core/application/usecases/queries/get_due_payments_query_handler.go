package queries

import (
	"context"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetDuePaymentsQueryHandler struct {
	db *gorm.DB
}

func NewGetDuePaymentsQueryHandler(db *gorm.DB) GetDuePaymentsQueryHandler {
	return GetDuePaymentsQueryHandler{db: db}
}

// Handle returns due payments, longest outstanding first. Orders completed without
// a recorded delivery time come last.
func (h GetDuePaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetDuePaymentsQuery,
) ([]GetDuePaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			status,
			COALESCE(vendor_id, customer_id, 0),
			sub_total,
			vat_amount,
			total_amount,
			deliver_time
		FROM orders
		WHERE payment_status = ?
		ORDER BY deliver_time NULLS LAST, id
	`, int(order.PaymentDue)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]GetDuePaymentsQueryResponse, 0)
	for rows.Next() {
		var (
			id                   uuid.UUID
			kind                 string
			status               int
			partyID              int64
			subTotal, vat, total decimal.Decimal
			deliverTime          *time.Time
		)
		if err = rows.Scan(&id, &kind, &status, &partyID, &subTotal, &vat, &total, &deliverTime); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		payments = append(payments, GetDuePaymentsQueryResponse{
			ID:          orderID,
			Kind:        order.Kind(kind),
			Status:      order.Status(status),
			PartyID:     partyID,
			SubTotal:    subTotal,
			VatAmount:   vat,
			TotalAmount: total,
			DeliverTime: deliverTime,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
