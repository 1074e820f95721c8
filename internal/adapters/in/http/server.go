// Package http exposes carts and the checkout flow over echo. Routes,
// request models and parameter binding come from the servers package; this
// package maps them onto the command and query handlers.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

type (
	CreateCartHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCartCommand) error
	}
	AddDeliveryModeHandler interface {
		Handle(ctx context.Context, cmd commands.AddDeliveryModeCommand) error
	}
	SetDeliveryModeHandler interface {
		Handle(ctx context.Context, cmd commands.SetDeliveryModeCommand) error
	}
	SelectPreferredDeliveryModeHandler interface {
		Handle(ctx context.Context, cmd commands.SelectPreferredDeliveryModeCommand) (string, error)
	}
	GetCartDeliveryModesHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetCartDeliveryModesQuery,
		) (queries.GetCartDeliveryModesQueryResponse, error)
	}
	GetCartsWithoutDeliveryModeHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetCartsWithoutDeliveryModeQuery,
		) ([]queries.GetCartsWithoutDeliveryModeQueryResponse, error)
	}
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	// Command handlers
	CreateCart                  CreateCartHandler
	AddDeliveryMode             AddDeliveryModeHandler
	SetDeliveryMode             SetDeliveryModeHandler
	SelectPreferredDeliveryMode SelectPreferredDeliveryModeHandler

	// Query handlers
	GetCartDeliveryModes        GetCartDeliveryModesHandler
	GetCartsWithoutDeliveryMode GetCartsWithoutDeliveryModeHandler
}

// Server implements servers.ServerInterface.
type Server struct {
	handlers Handlers
	flow     checkout.Flow
	logger   *slog.Logger
}

func NewServer(handlers Handlers, flow checkout.Flow, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		flow:     flow,
		logger:   logger.With("component", "http"),
	}
}

// CreateCart handles POST /api/v1/carts.
func (s *Server) CreateCart(ctx echo.Context) error {
	cartID := kernel.NewUUID()

	cmd, err := commands.NewCreateCartCommand(cartID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.handlers.CreateCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Cart{Id: cartID.Bytes()})
}

// GetPendingCarts handles GET /api/v1/carts/pending.
func (s *Server) GetPendingCarts(ctx echo.Context) error {
	carts, err := s.handlers.GetCartsWithoutDeliveryMode.Handle(
		ctx.Request().Context(), queries.NewGetCartsWithoutDeliveryModeQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]servers.PendingCart, len(carts))
	for i, c := range carts {
		response[i] = servers.PendingCart{
			Id:                c.ID.Bytes(),
			DeliveryModeCount: c.DeliveryModeCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCartDeliveryModes handles GET /api/v1/carts/{cartId}/delivery-modes.
func (s *Server) GetCartDeliveryModes(ctx echo.Context, cartId openapi_types.UUID) error {
	cartID, err := kernel.UUIDFromGoogle(cartId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetCartDeliveryModesQuery(cartID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.handlers.GetCartDeliveryModes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	modes := make([]servers.DeliveryMode, len(result.DeliveryModes))
	for i, m := range result.DeliveryModes {
		modes[i] = servers.DeliveryMode{
			Code:     m.Code,
			Name:     m.Name,
			Cost:     m.Cost.StringFixed(2),
			Selected: m.Selected,
		}
	}

	return ctx.JSON(http.StatusOK, servers.CartDeliveryModes{
		CartId:           result.CartID.Bytes(),
		DeliveryModeCode: result.DeliveryModeCode,
		DeliveryModes:    modes,
	})
}

// AddDeliveryMode handles POST /api/v1/carts/{cartId}/delivery-modes.
func (s *Server) AddDeliveryMode(ctx echo.Context, cartId openapi_types.UUID) error {
	var body servers.AddDeliveryModeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cartID, err := kernel.UUIDFromGoogle(cartId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cost, err := kernel.NewPriceFromString(body.Cost)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var name string
	if body.Name != nil {
		name = *body.Name
	}

	cmd, err := commands.NewAddDeliveryModeCommand(cartID, body.Code, name, cost)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.handlers.AddDeliveryMode.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SetDeliveryMode handles PUT /api/v1/carts/{cartId}/delivery-mode.
func (s *Server) SetDeliveryMode(ctx echo.Context, cartId openapi_types.UUID) error {
	var body servers.SetDeliveryModeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cartID, err := kernel.UUIDFromGoogle(cartId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewSetDeliveryModeCommand(cartID, body.Code)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.handlers.SetDeliveryMode.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SelectPreferredDeliveryMode handles POST /api/v1/carts/{cartId}/delivery-mode/preferred.
func (s *Server) SelectPreferredDeliveryMode(ctx echo.Context, cartId openapi_types.UUID) error {
	cartID, err := kernel.UUIDFromGoogle(cartId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewSelectPreferredDeliveryModeCommand(cartID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	code, err := s.handlers.SelectPreferredDeliveryMode.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryModeSelection{Code: code})
}

// GetCheckoutFlow handles GET /api/v1/checkout/steps.
func (s *Server) GetCheckoutFlow(ctx echo.Context) error {
	steps := s.flow.Steps()
	response := servers.CheckoutFlow{
		ExpressCheckout:     s.flow.IsExpressCheckout(),
		GuestCheckout:       s.flow.IsGuestCheckout(),
		DefaultDeliveryMode: s.flow.DefaultDeliveryMode().Tokens(),
		Steps:               make([]servers.CheckoutStep, len(steps)),
	}
	for i, step := range steps {
		response.Steps[i] = toCheckoutStep(step)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNextCheckoutStep handles GET /api/v1/checkout/steps/{routeName}/next.
func (s *Server) GetNextCheckoutStep(ctx echo.Context, routeName string) error {
	step, err := s.flow.NextStep(routeName)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCheckoutStep(step))
}

// GetPreviousCheckoutStep handles GET /api/v1/checkout/steps/{routeName}/previous.
func (s *Server) GetPreviousCheckoutStep(ctx echo.Context, routeName string) error {
	step, err := s.flow.PreviousStep(routeName)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCheckoutStep(step))
}

func toCheckoutStep(step checkout.Step) servers.CheckoutStep {
	types := make([]string, len(step.Types()))
	for i, t := range step.Types() {
		types[i] = string(t)
	}
	return servers.CheckoutStep{
		Id:        step.ID(),
		Name:      step.Name(),
		RouteName: step.RouteName(),
		Types:     types,
	}
}
