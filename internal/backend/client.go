package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/segurosmx/cotizador/internal/config"
	"github.com/segurosmx/cotizador/internal/domain"
)

// ErrNotFound is returned when the backend answers 404 for a record.
var ErrNotFound = domain.ErrNotFound

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog backend error (status %d): %s", e.StatusCode, e.Body)
}

// Client reads packages, business rules, postal-code adjustments and payment
// types from the catalog REST backend. It only issues GET requests.
type Client struct {
	baseURL    string
	token      string
	client     *http.Client
	retries    uint64
	newBackOff func() backoff.BackOff
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithBackOff replaces the exponential retry policy.
func WithBackOff(f func() backoff.BackOff) Option {
	return func(c *Client) { c.newBackOff = f }
}

// NewClient creates a catalog client from the backend settings.
func NewClient(cfg config.BackendConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	retries := cfg.Retries
	if retries < 0 {
		retries = 0
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  &http.Client{Timeout: timeout},
		retries: uint64(retries),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 100 * time.Millisecond
			b.MaxElapsedTime = timeout
			return b
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetPaquete fetches a coverage package with its coverages.
func (c *Client) GetPaquete(ctx context.Context, id int) (*domain.Paquete, error) {
	var p domain.Paquete
	if err := c.get(ctx, "/paquetes/"+strconv.Itoa(id), nil, &p); err != nil {
		return nil, fmt.Errorf("get paquete %d: %w", id, err)
	}
	return &p, nil
}

// GetReglas fetches the active business rules that may apply to a package.
func (c *Client) GetReglas(ctx context.Context, paqueteID int) ([]domain.ReglaNegocio, error) {
	q := url.Values{}
	q.Set("activa", "true")
	q.Set("paqueteId", strconv.Itoa(paqueteID))
	var reglas []domain.ReglaNegocio
	if err := c.get(ctx, "/reglas-negocio", q, &reglas); err != nil {
		return nil, fmt.Errorf("get reglas for paquete %d: %w", paqueteID, err)
	}
	return reglas, nil
}

// GetAjusteCP fetches the loss-ratio adjustment of a postal code. A postal
// code without an adjustment yields nil and no error.
func (c *Client) GetAjusteCP(ctx context.Context, cp string) (*domain.AjusteCP, error) {
	var a domain.AjusteCP
	err := c.get(ctx, "/ajustes-cp/"+url.PathEscape(cp), nil, &a)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ajuste cp %s: %w", cp, err)
	}
	return &a, nil
}

// GetTipoPago fetches a payment plan.
func (c *Client) GetTipoPago(ctx context.Context, id int) (*domain.TipoPago, error) {
	var tp domain.TipoPago
	if err := c.get(ctx, "/tipos-pago/"+strconv.Itoa(id), nil, &tp); err != nil {
		return nil, fmt.Errorf("get tipo pago %d: %w", id, err)
	}
	return &tp, nil
}

// get issues a GET and decodes the JSON answer into out. Transport errors
// and 5xx answers are retried; everything else fails at once.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("catalog backend request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(ErrNotFound)
		case resp.StatusCode >= 500:
			return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return backoff.Permanent(&StatusError{StatusCode: resp.StatusCode, Body: string(body)})
		}

		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to parse response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.retries), ctx)
	return backoff.Retry(op, policy)
}
