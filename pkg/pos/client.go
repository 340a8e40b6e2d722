package pos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Abhi-mygenie/Kiosk/pkg/config"
	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
	"github.com/Abhi-mygenie/Kiosk/pkg/metrics"
	"github.com/Abhi-mygenie/Kiosk/pkg/types"
)

const (
	opLogin      = "login"
	opListFoods  = "list_foods"
	opListTables = "list_tables"
	opPlaceOrder = "place_order"

	errorBodyReadLimit int64 = 1024
	responseReadLimit  int64 = 8 << 20
)

var (
	errBaseURLRequired = errors.New("pos base url is required")
	errLoggerRequired  = errors.New("pos logger is required")
)

// Client talks to the remote POS over HTTP and maps every outcome into pkg/errors codes.
type Client struct {
	httpClient *http.Client
	baseURL    string
	paths      paths
	limiter    *rate.Limiter
	logger     *logger.Logger
	metrics    *metrics.POSMetrics
}

type paths struct {
	login  string
	foods  string
	tables string
	order  string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured POS base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithRateLimiter throttles outbound calls; nil disables throttling.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func WithMetrics(m *metrics.POSMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds the POS client from config.
func NewClient(cfg config.POSConfig, logg *logger.Logger, opts ...Option) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSpace(cfg.BaseURL),
		paths: paths{
			login:  defaultPath(cfg.LoginPath, "/auth/login"),
			foods:  defaultPath(cfg.FoodsPath, "/foods"),
			tables: defaultPath(cfg.TablesPath, "/tables"),
			order:  defaultPath(cfg.OrderPath, "/orders/place"),
		},
		logger: logg,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.baseURL == "" {
		return nil, errBaseURLRequired
	}
	return client, nil
}

func defaultPath(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

// Authenticate exchanges staff credentials for a POS session token.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*LoginResult, error) {
	start := time.Now()
	c.log(ctx, "request", opLogin, map[string]any{"email": email})

	status, body, err := c.send(ctx, http.MethodPost, c.paths.login, "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		c.observe(opLogin, metrics.OutcomeUnavailable, start)
		c.log(ctx, "error", opLogin, map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "pos login request failed")
	}

	switch status {
	case http.StatusOK:
		var result LoginResult
		if err := json.Unmarshal(body, &result); err != nil {
			c.observe(opLogin, metrics.OutcomeUnavailable, start)
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode pos login response")
		}
		c.observe(opLogin, metrics.OutcomeSuccess, start)
		c.log(ctx, "response", opLogin, map[string]any{"role_name": result.RoleName})
		return &result, nil
	case http.StatusUnauthorized:
		c.observe(opLogin, metrics.OutcomeRejected, start)
		c.log(ctx, "rejected", opLogin, map[string]any{"status": status})
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, statusError(opLogin, status, body), "invalid email or password")
	default:
		c.observe(opLogin, metrics.OutcomeUnavailable, start)
		c.log(ctx, "error", opLogin, map[string]any{"status": status, "error": snippet(body)})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, statusError(opLogin, status, body), "pos login failed")
	}
}

// ListFoods returns the raw foods listing for the session token.
func (c *Client) ListFoods(ctx context.Context, token string) ([]RawFood, error) {
	var payload struct {
		Foods []RawFood `json:"foods"`
	}
	if err := c.fetch(ctx, opListFoods, c.paths.foods, token, &payload); err != nil {
		return nil, err
	}
	if payload.Foods == nil {
		return []RawFood{}, nil
	}
	return payload.Foods, nil
}

// ListTables returns the raw table/room configuration for the session token.
func (c *Client) ListTables(ctx context.Context, token string) ([]RawTable, error) {
	var payload struct {
		Data struct {
			Tables []RawTable `json:"tables"`
		} `json:"data"`
	}
	if err := c.fetch(ctx, opListTables, c.paths.tables, token, &payload); err != nil {
		return nil, err
	}
	if payload.Data.Tables == nil {
		return []RawTable{}, nil
	}
	return payload.Data.Tables, nil
}

func (c *Client) fetch(ctx context.Context, op, path, token string, out any) error {
	if strings.TrimSpace(token) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "pos token is required")
	}

	start := time.Now()
	c.log(ctx, "request", op, nil)

	status, body, err := c.send(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		c.observe(op, metrics.OutcomeUnavailable, start)
		c.log(ctx, "error", op, map[string]any{"error": err.Error()})
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("pos %s request failed", op))
	}

	switch status {
	case http.StatusOK:
	case http.StatusUnauthorized:
		c.observe(op, metrics.OutcomeRejected, start)
		c.log(ctx, "rejected", op, map[string]any{"status": status})
		return pkgerrors.Wrap(pkgerrors.CodeUnauthenticated, statusError(op, status, body), "pos rejected session token")
	default:
		c.observe(op, metrics.OutcomeUnavailable, start)
		c.log(ctx, "error", op, map[string]any{"status": status, "error": snippet(body)})
		return pkgerrors.Wrap(pkgerrors.CodeDependency, statusError(op, status, body), fmt.Sprintf("pos %s failed", op))
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.observe(op, metrics.OutcomeUnavailable, start)
		c.log(ctx, "error", op, map[string]any{"error": err.Error()})
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("decode pos %s response", op))
	}

	c.observe(op, metrics.OutcomeSuccess, start)
	c.log(ctx, "response", op, map[string]any{"bytes": len(body)})
	return nil
}

// PlaceOrder submits the order and reports the outcome. It never returns a Go error:
// transport failures and upstream rejections both come back as Success=false.
func (c *Client) PlaceOrder(ctx context.Context, token string, payload OrderPayload) PlaceOrderResult {
	start := time.Now()
	c.log(ctx, "request", opPlaceOrder, map[string]any{
		"table_id":     payload.TableID,
		"lines":        len(payload.Cart),
		"order_amount": payload.OrderAmount,
	})

	result := c.placeOrder(ctx, token, payload)

	switch {
	case result.Success:
		c.observe(opPlaceOrder, metrics.OutcomeSuccess, start)
		c.log(ctx, "response", opPlaceOrder, map[string]any{"pos_order_id": result.OrderID})
	case result.StatusCode == 0:
		c.observe(opPlaceOrder, metrics.OutcomeUnavailable, start)
		c.log(ctx, "error", opPlaceOrder, map[string]any{"error": result.Error})
	default:
		c.observe(opPlaceOrder, metrics.OutcomeRejected, start)
		c.log(ctx, "rejected", opPlaceOrder, map[string]any{"status": result.StatusCode, "reason": result.Error})
	}
	return result
}

func (c *Client) placeOrder(ctx context.Context, token string, payload OrderPayload) PlaceOrderResult {
	if strings.TrimSpace(token) == "" {
		return PlaceOrderResult{Error: "pos token is required"}
	}

	status, body, err := c.send(ctx, http.MethodPost, c.paths.order, token, payload)
	if err != nil {
		return PlaceOrderResult{Error: err.Error()}
	}

	if status != http.StatusOK {
		result := PlaceOrderResult{
			StatusCode: status,
			Error:      statusError(opPlaceOrder, status, body).Error(),
		}
		if json.Valid(body) {
			result.Data = body
		}
		return result
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(body, &parsed); err != nil {
		return PlaceOrderResult{StatusCode: status, Error: fmt.Sprintf("decode pos order response: %v", err)}
	}

	rawID, hasID := parsed["order_id"]
	rawMessage, hasMessage := parsed["message"]
	if hasID || hasMessage {
		result := PlaceOrderResult{Success: true, StatusCode: status, Data: body}
		var id, message types.FlexString
		if hasID && json.Unmarshal(rawID, &id) == nil {
			result.OrderID = strings.TrimSpace(id.String())
		}
		if hasMessage && json.Unmarshal(rawMessage, &message) == nil {
			result.Message = message.String()
		}
		return result
	}

	if rawErrors, ok := parsed["errors"]; ok {
		return PlaceOrderResult{StatusCode: status, Data: body, Error: string(rawErrors)}
	}
	return PlaceOrderResult{StatusCode: status, Data: body, Error: "unrecognized pos order response"}
}

func (c *Client) send(ctx context.Context, method, path, token string, payload any) (int, []byte, error) {
	if c == nil {
		return 0, nil, errors.New("pos client not configured")
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, fmt.Errorf("pos rate limiter: %w", err)
		}
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal pos request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), body)
	if err != nil {
		return 0, nil, fmt.Errorf("build pos request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	limit := responseReadLimit
	if resp.StatusCode != http.StatusOK {
		limit = errorBodyReadLimit
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return 0, nil, fmt.Errorf("read pos response: %w", err)
	}
	return resp.StatusCode, data, nil
}

func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s/%s", trimmed, path)
}

func (c *Client) observe(op, outcome string, start time.Time) {
	c.metrics.Observe(op, outcome, time.Since(start))
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = redact(k, v)
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Error(ctx, fmt.Sprintf("pos %s", op), errors.New(fmt.Sprint(fields["error"])))
	case "rejected":
		c.logger.Warn(ctx, fmt.Sprintf("pos %s rejected", op))
	default:
		c.logger.Info(ctx, fmt.Sprintf("pos %s", phase))
	}
}

func redact(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range []string{"token", "password", "secret", "email", "phone", "mobile"} {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}

func statusError(op string, status int, body []byte) *StatusError {
	return &StatusError{Op: op, Status: status, Body: snippet(body)}
}

func snippet(body []byte) string {
	if int64(len(body)) > errorBodyReadLimit {
		body = body[:errorBodyReadLimit]
	}
	return strings.TrimSpace(string(body))
}
