package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

// statusCodeFor maps domain errors to HTTP status codes. Workflow and
// concurrency violations both surface as 409: in either case the caller
// holds a stale view of the order and must re-read before retrying.
func statusCodeFor(err error) int {
	var (
		notFound      *errs.ObjectNotFoundError
		alreadyExists *errs.ObjectAlreadyExistsError
		invalid       *errs.ValueIsInvalidError
		required      *errs.ValueIsRequiredError
		forbidden     *errs.AccessForbiddenError
		precondition  *errs.PreconditionFailedError
	)

	switch {
	case errors.Is(err, order.ErrTransitionNotAllowed):
		return http.StatusConflict
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &alreadyExists), errors.As(err, &precondition):
		return http.StatusConflict
	case errors.As(err, &invalid), errors.As(err, &required):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the uniform error payload for err. Echo's own HTTP
// errors (the 401 from identity resolution) pass through untouched.
func respondError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, Error{
			Code:    httpErr.Code,
			Message: messageText(httpErr.Message),
		})
	}

	code := statusCodeFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		// Do not leak storage internals to clients.
		message = "internal error"
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func messageText(message any) string {
	if s, ok := message.(string); ok {
		return s
	}
	return "request failed"
}
