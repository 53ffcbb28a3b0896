package iohttp

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/internal/iostore"
	"github.com/gnames/pokedb/pkg/errcode"
	"github.com/gofiber/fiber/v2"
)

// Codes of the JSON error body.
const (
	ErrInvalidRequest = "INVALID_REQUEST"
	ErrNotFound       = "NOT_FOUND"
	ErrUnavailable    = "SERVICE_UNAVAILABLE"
	ErrInternal       = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// StartError is returned when the server cannot listen on its address.
func StartError(addr string, err error) error {
	msg := `Cannot start HTTP server on <em>%s</em>

<em>How to fix:</em>
  1. Make sure no other process uses the port
  2. Pick another port: 'pokedb serve --port 8080'`

	return &gn.Error{
		Code: errcode.ServerStartError,
		Msg:  msg,
		Vars: []any{addr},
		Err:  fmt.Errorf("listen on %s: %w", addr, err),
	}
}

// badRequest creates a 400 error with details.
func badRequest(msg, details string) error {
	return &requestError{status: fiber.StatusBadRequest, msg: msg, details: details}
}

type requestError struct {
	status  int
	msg     string
	details string
}

func (e *requestError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.details)
}

// customErrorHandler maps errors of handlers to a status and a JSON body.
// NotFound from the store becomes 404, anything unknown becomes 500.
func customErrorHandler(c *fiber.Ctx, err error) error {
	status, resp := errorResponse(err)
	if status >= fiber.StatusInternalServerError {
		slog.Error("Request failed",
			"request_id", requestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
	}
	return c.Status(status).JSON(resp)
}

func errorResponse(err error) (int, ErrorResponse) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return reqErr.status, ErrorResponse{
			Error:   reqErr.msg,
			Code:    ErrInvalidRequest,
			Details: reqErr.details,
		}
	}

	if iostore.IsNotFound(err) {
		var gnErr *gn.Error
		errors.As(err, &gnErr)
		return fiber.StatusNotFound, ErrorResponse{
			Error:   "pokemon not found",
			Code:    ErrNotFound,
			Details: gnErr.Err.Error(),
		}
	}

	var fErr *fiber.Error
	if errors.As(err, &fErr) {
		resp := ErrorResponse{Error: fErr.Message, Code: ErrInternal}
		switch fErr.Code {
		case fiber.StatusNotFound:
			resp.Code = ErrNotFound
		case fiber.StatusBadRequest, fiber.StatusMethodNotAllowed,
			fiber.StatusUnprocessableEntity, fiber.StatusUnsupportedMediaType:
			resp.Code = ErrInvalidRequest
		case fiber.StatusServiceUnavailable:
			resp.Code = ErrUnavailable
		}
		return fErr.Code, resp
	}

	return fiber.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Code:  ErrInternal,
	}
}
