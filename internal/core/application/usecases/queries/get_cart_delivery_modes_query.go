// Package queries holds the read side of the checkout service. Handlers
// run raw SQL through gorm and return flat response structs; they never
// load aggregates.
package queries

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCartDeliveryModesQueryIsNotConstructed = errors.New(
	"GetCartDeliveryModesQuery must be created via NewGetCartDeliveryModesQuery constructor",
)

// GetCartDeliveryModesQuery lists the delivery modes a cart offers.
type GetCartDeliveryModesQuery struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartDeliveryModesQuery(cartID kernel.UUID) (GetCartDeliveryModesQuery, error) {
	if err := cartID.Validate(); err != nil {
		return GetCartDeliveryModesQuery{}, err
	}

	return GetCartDeliveryModesQuery{
		cartID: cartID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetCartDeliveryModesQuery) Validate() error {
	return q.guard.Validate(ErrGetCartDeliveryModesQueryIsNotConstructed)
}

func (q GetCartDeliveryModesQuery) CartID() kernel.UUID {
	return q.cartID
}

// GetCartDeliveryModesQueryResponse lists modes cheapest first; modes of
// equal cost keep the order in which they were offered.
type GetCartDeliveryModesQueryResponse struct {
	CartID           kernel.UUID
	DeliveryModeCode *string
	DeliveryModes    []DeliveryModeResponse
}

type DeliveryModeResponse struct {
	Code     string
	Name     string
	Cost     decimal.Decimal
	Selected bool
}
