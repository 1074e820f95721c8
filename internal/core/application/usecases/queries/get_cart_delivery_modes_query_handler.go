package queries

import (
	"context"
	"database/sql"
	"errors"

	"checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCartDeliveryModesQueryHandler struct {
	db *gorm.DB
}

func NewGetCartDeliveryModesQueryHandler(db *gorm.DB) GetCartDeliveryModesQueryHandler {
	return GetCartDeliveryModesQueryHandler{db: db}
}

// Handle returns an *errs.ObjectNotFoundError for unknown carts.
func (h GetCartDeliveryModesQueryHandler) Handle(
	ctx context.Context,
	query GetCartDeliveryModesQuery,
) (GetCartDeliveryModesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartDeliveryModesQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	cartID := query.CartID()

	var selected sql.NullString
	err := db.Raw(`SELECT delivery_mode_code FROM carts WHERE id = ?`, cartID.Bytes()).Row().Scan(&selected)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCartDeliveryModesQueryResponse{}, errs.NewObjectNotFoundError("cart", cartID.String())
	}
	if err != nil {
		return GetCartDeliveryModesQueryResponse{}, err
	}

	resp := GetCartDeliveryModesQueryResponse{
		CartID:        cartID,
		DeliveryModes: make([]DeliveryModeResponse, 0),
	}
	if selected.Valid {
		code := selected.String
		resp.DeliveryModeCode = &code
	}

	rows, err := db.Raw(`
		SELECT
			code,
			name,
			cost
		FROM cart_delivery_modes
		WHERE cart_id = ?
		ORDER BY cost, position
	`, cartID.Bytes()).Rows()
	if err != nil {
		return GetCartDeliveryModesQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var mode DeliveryModeResponse
		var cost decimal.Decimal

		if err = rows.Scan(&mode.Code, &mode.Name, &cost); err != nil {
			return GetCartDeliveryModesQueryResponse{}, err
		}

		mode.Cost = cost
		mode.Selected = selected.Valid && selected.String == mode.Code
		resp.DeliveryModes = append(resp.DeliveryModes, mode)
	}

	if err = rows.Err(); err != nil {
		return GetCartDeliveryModesQueryResponse{}, err
	}

	return resp, nil
}
