package queries

import (
	"context"

	"checkout/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCartsWithoutDeliveryModeQueryHandler struct {
	db *gorm.DB
}

func NewGetCartsWithoutDeliveryModeQueryHandler(db *gorm.DB) GetCartsWithoutDeliveryModeQueryHandler {
	return GetCartsWithoutDeliveryModeQueryHandler{db: db}
}

// Handle returns pending carts oldest first.
func (h GetCartsWithoutDeliveryModeQueryHandler) Handle(
	ctx context.Context,
	query GetCartsWithoutDeliveryModeQuery,
) ([]GetCartsWithoutDeliveryModeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carts := make([]GetCartsWithoutDeliveryModeQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			COUNT(m.code)
		FROM carts c
		JOIN cart_delivery_modes m ON m.cart_id = c.id
		WHERE c.delivery_mode_code IS NULL
		GROUP BY c.id, c.created_at
		ORDER BY c.created_at, c.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var count int

		if err = rows.Scan(&id, &count); err != nil {
			return nil, err
		}

		cartID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}

		carts = append(carts, GetCartsWithoutDeliveryModeQueryResponse{
			ID:                cartID,
			DeliveryModeCount: count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carts, nil
}
