package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Create an empty cart
	// (POST /api/v1/carts)
	CreateCart(ctx echo.Context) error
	// List carts that offer delivery modes but have none selected
	// (GET /api/v1/carts/pending)
	GetPendingCarts(ctx echo.Context) error
	// List the delivery modes of a cart, cheapest first
	// (GET /api/v1/carts/{cartId}/delivery-modes)
	GetCartDeliveryModes(ctx echo.Context, cartId openapi_types.UUID) error
	// Offer a delivery mode for a cart
	// (POST /api/v1/carts/{cartId}/delivery-modes)
	AddDeliveryMode(ctx echo.Context, cartId openapi_types.UUID) error
	// Select one of the offered delivery modes
	// (PUT /api/v1/carts/{cartId}/delivery-mode)
	SetDeliveryMode(ctx echo.Context, cartId openapi_types.UUID) error
	// Select a delivery mode using the configured preferences
	// (POST /api/v1/carts/{cartId}/delivery-mode/preferred)
	SelectPreferredDeliveryMode(ctx echo.Context, cartId openapi_types.UUID) error
	// Describe the configured checkout flow
	// (GET /api/v1/checkout/steps)
	GetCheckoutFlow(ctx echo.Context) error
	// Step after the given one
	// (GET /api/v1/checkout/steps/{routeName}/next)
	GetNextCheckoutStep(ctx echo.Context, routeName string) error
	// Step before the given one
	// (GET /api/v1/checkout/steps/{routeName}/previous)
	GetPreviousCheckoutStep(ctx echo.Context, routeName string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateCart converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCart(ctx echo.Context) error {
	return w.Handler.CreateCart(ctx)
}

// GetPendingCarts converts echo context to params.
func (w *ServerInterfaceWrapper) GetPendingCarts(ctx echo.Context) error {
	return w.Handler.GetPendingCarts(ctx)
}

// GetCartDeliveryModes converts echo context to params.
func (w *ServerInterfaceWrapper) GetCartDeliveryModes(ctx echo.Context) error {
	cartId, err := bindCartID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCartDeliveryModes(ctx, cartId)
}

// AddDeliveryMode converts echo context to params.
func (w *ServerInterfaceWrapper) AddDeliveryMode(ctx echo.Context) error {
	cartId, err := bindCartID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AddDeliveryMode(ctx, cartId)
}

// SetDeliveryMode converts echo context to params.
func (w *ServerInterfaceWrapper) SetDeliveryMode(ctx echo.Context) error {
	cartId, err := bindCartID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SetDeliveryMode(ctx, cartId)
}

// SelectPreferredDeliveryMode converts echo context to params.
func (w *ServerInterfaceWrapper) SelectPreferredDeliveryMode(ctx echo.Context) error {
	cartId, err := bindCartID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SelectPreferredDeliveryMode(ctx, cartId)
}

// GetCheckoutFlow converts echo context to params.
func (w *ServerInterfaceWrapper) GetCheckoutFlow(ctx echo.Context) error {
	return w.Handler.GetCheckoutFlow(ctx)
}

// GetNextCheckoutStep converts echo context to params.
func (w *ServerInterfaceWrapper) GetNextCheckoutStep(ctx echo.Context) error {
	routeName, err := bindRouteName(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetNextCheckoutStep(ctx, routeName)
}

// GetPreviousCheckoutStep converts echo context to params.
func (w *ServerInterfaceWrapper) GetPreviousCheckoutStep(ctx echo.Context) error {
	routeName, err := bindRouteName(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetPreviousCheckoutStep(ctx, routeName)
}

func bindCartID(ctx echo.Context) (openapi_types.UUID, error) {
	var cartId openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "cartId", ctx.Param("cartId"), &cartId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return cartId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cartId: %s", err))
	}
	return cartId, nil
}

func bindRouteName(ctx echo.Context) (string, error) {
	var routeName string
	err := runtime.BindStyledParameterWithOptions("simple", "routeName", ctx.Param("routeName"), &routeName,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return routeName, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter routeName: %s", err))
	}
	return routeName, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/carts", wrapper.CreateCart)
	router.GET(baseURL+"/api/v1/carts/pending", wrapper.GetPendingCarts)
	router.GET(baseURL+"/api/v1/carts/:cartId/delivery-modes", wrapper.GetCartDeliveryModes)
	router.POST(baseURL+"/api/v1/carts/:cartId/delivery-modes", wrapper.AddDeliveryMode)
	router.PUT(baseURL+"/api/v1/carts/:cartId/delivery-mode", wrapper.SetDeliveryMode)
	router.POST(baseURL+"/api/v1/carts/:cartId/delivery-mode/preferred", wrapper.SelectPreferredDeliveryMode)
	router.GET(baseURL+"/api/v1/checkout/steps", wrapper.GetCheckoutFlow)
	router.GET(baseURL+"/api/v1/checkout/steps/:routeName/next", wrapper.GetNextCheckoutStep)
	router.GET(baseURL+"/api/v1/checkout/steps/:routeName/previous", wrapper.GetPreviousCheckoutStep)
}
