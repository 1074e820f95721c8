package queries

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var ErrGetCartsWithoutDeliveryModeQueryIsNotConstructed = errors.New(
	"GetCartsWithoutDeliveryModeQuery must be created via NewGetCartsWithoutDeliveryModeQuery constructor",
)

// GetCartsWithoutDeliveryModeQuery lists carts waiting for the assignment
// job: they offer delivery modes but have none selected.
type GetCartsWithoutDeliveryModeQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCartsWithoutDeliveryModeQuery() GetCartsWithoutDeliveryModeQuery {
	return GetCartsWithoutDeliveryModeQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCartsWithoutDeliveryModeQuery) Validate() error {
	return q.guard.Validate(ErrGetCartsWithoutDeliveryModeQueryIsNotConstructed)
}

type GetCartsWithoutDeliveryModeQueryResponse struct {
	ID                kernel.UUID
	DeliveryModeCount int
}
