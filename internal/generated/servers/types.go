package servers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Cart defines model for Cart.
type Cart struct {
	Id openapi_types.UUID `json:"id"`
}

// PendingCart defines model for PendingCart.
type PendingCart struct {
	DeliveryModeCount int                `json:"deliveryModeCount"`
	Id                openapi_types.UUID `json:"id"`
}

// NewDeliveryMode defines model for NewDeliveryMode.
type NewDeliveryMode struct {
	Code string  `json:"code"`
	Cost string  `json:"cost"`
	Name *string `json:"name,omitempty"`
}

// DeliveryMode defines model for DeliveryMode.
type DeliveryMode struct {
	Code     string `json:"code"`
	Cost     string `json:"cost"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// CartDeliveryModes defines model for CartDeliveryModes.
type CartDeliveryModes struct {
	CartId           openapi_types.UUID `json:"cartId"`
	DeliveryModeCode *string            `json:"deliveryModeCode"`
	DeliveryModes    []DeliveryMode     `json:"deliveryModes"`
}

// DeliveryModeSelection defines model for DeliveryModeSelection.
type DeliveryModeSelection struct {
	Code string `json:"code"`
}

// CheckoutStep defines model for CheckoutStep.
type CheckoutStep struct {
	Id        string   `json:"id"`
	Name      string   `json:"name"`
	RouteName string   `json:"routeName"`
	Types     []string `json:"types"`
}

// CheckoutFlow defines model for CheckoutFlow.
type CheckoutFlow struct {
	DefaultDeliveryMode []string       `json:"defaultDeliveryMode"`
	ExpressCheckout     bool           `json:"expressCheckout"`
	GuestCheckout       bool           `json:"guestCheckout"`
	Steps               []CheckoutStep `json:"steps"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddDeliveryModeJSONRequestBody defines body for AddDeliveryMode for application/json ContentType.
type AddDeliveryModeJSONRequestBody = NewDeliveryMode

// SetDeliveryModeJSONRequestBody defines body for SetDeliveryMode for application/json ContentType.
type SetDeliveryModeJSONRequestBody = DeliveryModeSelection
