package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/segurosmx/cotizador/internal/calculation"
	"github.com/segurosmx/cotizador/internal/output"
	"github.com/segurosmx/cotizador/internal/quoting"
)

// AppError is an error with the HTTP status and code it is answered with.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body of every error answer.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewAppError(code, message string, status int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

var (
	errInvalidPayload = NewAppError("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest, nil)
	errInvalidFormat  = NewAppError("UNSUPPORTED_FORMAT", "Unsupported report format", http.StatusBadRequest, nil)
)

func mapQuoteError(err error) *AppError {
	switch {
	case errors.Is(err, quoting.ErrInvalidQuote), errors.Is(err, calculation.ErrEmptyPackage), errors.Is(err, calculation.ErrNilRequest):
		return NewAppError("INVALID_REQUEST", err.Error(), http.StatusBadRequest, err)
	case errors.Is(err, output.ErrUnsupportedFormat):
		return NewAppError(errInvalidFormat.Code, err.Error(), http.StatusBadRequest, err)
	case errors.Is(err, quoting.ErrPackageNotFound):
		return NewAppError("PACKAGE_NOT_FOUND", "Coverage package not found", http.StatusNotFound, err)
	case errors.Is(err, quoting.ErrPaymentTypeNotFound):
		return NewAppError("PAYMENT_TYPE_NOT_FOUND", "Payment type not found", http.StatusNotFound, err)
	case errors.Is(err, quoting.ErrCatalogUnavailable):
		return NewAppError("CATALOG_UNAVAILABLE", "Catalog backend unavailable", http.StatusBadGateway, err)
	case errors.Is(err, quoting.ErrInvalidCatalog):
		return NewAppError("INVALID_CATALOG_RECORD", "Catalog backend returned an invalid record", http.StatusBadGateway, err)
	case errors.Is(err, context.DeadlineExceeded):
		return NewAppError("TIMEOUT", "Quote calculation timed out", http.StatusGatewayTimeout, err)
	default:
		return NewAppError("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError, err)
	}
}
