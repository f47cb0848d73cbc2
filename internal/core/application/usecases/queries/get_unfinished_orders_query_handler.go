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

// GetUnfinishedOrdersQueryHandler reads open orders straight from the orders table.
type GetUnfinishedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUnfinishedOrdersQueryHandler(db *gorm.DB) GetUnfinishedOrdersQueryHandler {
	return GetUnfinishedOrdersQueryHandler{db: db}
}

// Handle returns open orders oldest first.
func (h GetUnfinishedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnfinishedOrdersQuery,
) ([]GetUnfinishedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	kinds := make([]string, 0, len(query.Kinds()))
	for _, k := range query.Kinds() {
		kinds = append(kinds, k.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			status,
			payment_status,
			from_location,
			to_location,
			total_amount,
			create_time
		FROM orders
		WHERE status NOT IN ? AND kind IN ?
		ORDER BY create_time, id
	`, terminalStatuses(), kinds).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetUnfinishedOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			kind          string
			status        int
			paymentStatus int
			from, to      string
			total         decimal.Decimal
			createTime    time.Time
		)
		if err = rows.Scan(&id, &kind, &status, &paymentStatus, &from, &to, &total, &createTime); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		fromLoc, fromErr := optionalLocation(from)
		if fromErr != nil {
			return nil, fromErr
		}
		toLoc, toErr := kernel.NewLocation(to)
		if toErr != nil {
			return nil, toErr
		}

		orders = append(orders, GetUnfinishedOrdersQueryResponse{
			ID:            orderID,
			Kind:          order.Kind(kind),
			Status:        order.Status(status),
			PaymentStatus: order.PaymentStatus(paymentStatus),
			FromLocation:  fromLoc,
			ToLocation:    toLoc,
			TotalAmount:   total,
			CreateTime:    createTime,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func terminalStatuses() []int {
	return []int{int(order.Completed), int(order.Canceled), int(order.Returned)}
}

func optionalLocation(s string) (kernel.Location, error) {
	if s == "" {
		return kernel.Location{}, nil
	}
	return kernel.NewLocation(s)
}
