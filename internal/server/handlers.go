package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/segurosmx/cotizador/internal/output"
	"github.com/segurosmx/cotizador/internal/quoting"
)

// QuoteHandler handles the quoting endpoints.
type QuoteHandler struct {
	service quoting.IQuoteService
}

func NewQuoteHandler(svc quoting.IQuoteService) *QuoteHandler {
	return &QuoteHandler{service: svc}
}

// CreateQuote prices a package referenced by id against the catalog backend.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), cmd)
	if err != nil {
		abortWithError(c, err)
		return
	}
	writeQuote(c, http.StatusCreated, quote)
}

// CalculateQuote prices a request that carries its catalog records inline.
func (h *QuoteHandler) CalculateQuote(c *gin.Context) {
	var req domain.SolicitudCotizacion
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	quote, err := h.service.Calculate(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	writeQuote(c, http.StatusOK, quote)
}

// PaymentSchedule splits a total into installments.
func (h *QuoteHandler) PaymentSchedule(c *gin.Context) {
	var payload ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	plan, err := h.service.Schedule(cmd)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ScheduleResponse{Divisor: payload.Divisor, PlanPagos: plan})
}

// writeQuote answers JSON unless ?format= names another report formatter.
func writeQuote(c *gin.Context, status int, quote *domain.Cotizacion) {
	format := c.Query("format")
	if format == "" || output.NormalizeFormatName(format) == "json" {
		c.JSON(status, quote)
		return
	}

	f := output.GetFormatterByName(format)
	if f == nil {
		abortWithError(c, fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format))
		return
	}
	data, err := f.Format(quote)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(status, contentType(f.Name()), data)
}

func contentType(format string) string {
	switch {
	case format == "html":
		return "text/html; charset=utf-8"
	case strings.Contains(format, "csv"):
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
