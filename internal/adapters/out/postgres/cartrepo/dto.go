// Package cartrepo persists cart aggregates with GORM. A cart is one row in
// carts plus one row per offered delivery mode in cart_delivery_modes;
// the position column keeps the order in which modes were offered.
package cartrepo

import (
	"time"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/deliverymode"
	"checkout/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartDTO struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey"`
	DeliveryModeCode *string           `gorm:"type:varchar(255);index"`
	DeliveryModes    []DeliveryModeDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time         `gorm:"autoCreateTime"`
}

func (CartDTO) TableName() string {
	return "carts"
}

type DeliveryModeDTO struct {
	CartID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code     string          `gorm:"type:varchar(255);primaryKey"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Cost     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position int             `gorm:"type:int;not null"`
}

func (DeliveryModeDTO) TableName() string {
	return "cart_delivery_modes"
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	cartID := aggregate.ID().Bytes()
	modes := aggregate.DeliveryModes()

	dtos := make([]DeliveryModeDTO, 0, len(modes))
	for i, m := range modes {
		dtos = append(dtos, DeliveryModeDTO{
			CartID:   cartID,
			Code:     m.Code(),
			Name:     m.Name(),
			Cost:     m.Cost().Amount(),
			Position: i,
		})
	}

	return CartDTO{
		ID:               cartID,
		DeliveryModeCode: aggregate.DeliveryModeCode(),
		DeliveryModes:    dtos,
	}
}

// toDomain expects dto.DeliveryModes ordered by position.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	modes := make([]deliverymode.DeliveryMode, 0, len(dto.DeliveryModes))
	for _, m := range dto.DeliveryModes {
		cost, costErr := kernel.NewPrice(m.Cost)
		if costErr != nil {
			return nil, costErr
		}

		mode, modeErr := deliverymode.NewDeliveryMode(m.Code, m.Name, cost)
		if modeErr != nil {
			return nil, modeErr
		}
		modes = append(modes, mode)
	}

	return cart.RestoreCart(id, modes, dto.DeliveryModeCode)
}
