package http

import (
	"errors"
	"log/slog"
	"net/http"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/services"
	"checkout/internal/generated/servers"
	"checkout/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, checkout.ErrNoNextStep),
		errors.Is(err, checkout.ErrNoPreviousStep):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrDeliveryModeAlreadyExists),
		errors.Is(err, services.ErrNoCandidates):
		return http.StatusConflict
	case errors.Is(err, cart.ErrDeliveryModeNotAvailable),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) errorResponse(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Path()),
			slog.Any("error", err))
		message = http.StatusText(status)
	}
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}
