package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error onto the response status. Ledger rule
// violations and lost write races are conflicts with the current state;
// malformed input is a bad request.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrTransferFailed),
		errors.Is(err, errs.ErrInsufficientFunds),
		errors.Is(err, errs.ErrInsufficientRewardPool),
		errors.Is(err, errs.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidPayment),
		errors.Is(err, errs.ErrInvalidAddress),
		errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrArithmeticOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = http.StatusText(status)
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// parseAddresses parses the named raw addresses in order and joins every failure.
func parseAddresses(raw ...string) ([]kernel.Address, error) {
	out := make([]kernel.Address, len(raw))
	var all []error
	for i, s := range raw {
		a, err := kernel.ParseAddress(s)
		if err != nil {
			all = append(all, err)
			continue
		}
		out[i] = a
	}
	return out, errors.Join(all...)
}
