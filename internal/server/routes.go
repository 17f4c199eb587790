package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/segurosmx/cotizador/internal/calculation"
	"github.com/segurosmx/cotizador/internal/quoting"
)

const (
	PathQuotes          = "/quotes"
	PathPaymentSchedule = "/payment-schedule"
)

// NewRouter builds the gin engine serving the quoting API under /v1.
func NewRouter(svc quoting.IQuoteService, requestTimeout time.Duration, logger calculation.Logger) *gin.Engine {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, HTTPError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"})
	}))
	if requestTimeout > 0 {
		router.Use(timeoutMiddleware(requestTimeout))
	}

	h := NewQuoteHandler(svc)
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	quotes := v1.Group(PathQuotes)
	{
		quotes.POST("", h.CreateQuote)
		quotes.POST("/calculate", h.CalculateQuote)
	}
	v1.POST(PathPaymentSchedule, h.PaymentSchedule)
	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// timeoutMiddleware bounds the request context so backend lookups give up.
func timeoutMiddleware(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
