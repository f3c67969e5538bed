package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"

	"golang.org/x/time/rate"
)

const saltEdgeService = "saltedge"

var ErrProviderNotConfigured = apperrors.New(apperrors.ErrExternalService, apperrors.SyncNotConfigured, "bank data provider is not configured")

// SaltEdgeTransport adds the static app credentials to every request.
type SaltEdgeTransport struct {
	appID  string
	secret string
	base   http.RoundTripper
}

func (t *SaltEdgeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("App-id", t.appID)
	req.Header.Set("Secret", t.secret)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return t.base.RoundTrip(req)
}

// SaltEdgeClient talks to the Salt Edge account information API.
type SaltEdgeClient struct {
	config  *config.ProviderConfig
	client  *http.Client
	limiter *rate.Limiter
	breaker *CircuitBreaker
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	now     func() time.Time
}

// NewSaltEdgeClient creates the provider client. Calls are rate limited and
// guarded by a circuit breaker whose transitions are audited.
func NewSaltEdgeClient(
	cfg *config.ProviderConfig,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *SaltEdgeClient {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	transport := &SaltEdgeTransport{
		appID:  cfg.AppID,
		secret: cfg.Secret,
		base:   http.DefaultTransport,
	}

	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		burst = cfg.RequestsPerSecond
	}

	c := &SaltEdgeClient{
		config: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}

	c.breaker = newCircuitBreaker(DefaultCircuitBreakerConfig(), func(from, to models.CircuitBreakerState) {
		metrics.RecordGauge(MetricCircuitBreakerState, float64(to), map[string]string{"service": saltEdgeService})
		if auditLogger != nil {
			auditLogger.LogCircuitBreakerStateChange(context.Background(), saltEdgeService, from.String(), to.String())
		}
	})

	return c
}

func (c *SaltEdgeClient) CreateCustomer(ctx context.Context, identifier string) (string, error) {
	var resp dto.SaltEdgeEnvelope[dto.SaltEdgeCustomer]
	err := c.call(ctx, "create_customer", http.MethodPost, "/customers",
		dto.SaltEdgeEnvelope[dto.SaltEdgeCustomerRequest]{Data: dto.SaltEdgeCustomerRequest{Identifier: identifier}},
		&resp)
	if err != nil {
		return "", err
	}
	if resp.Data.CustomerID == "" {
		return "", &apperrors.ExternalServiceError{Service: saltEdgeService, Operation: "create_customer", Err: errors.New("response has no customer_id")}
	}

	return resp.Data.CustomerID, nil
}

func (c *SaltEdgeClient) CreateConnectSession(ctx context.Context, customerID string) (*dto.SaltEdgeConnectSession, error) {
	request := dto.SaltEdgeConnectRequest{
		CustomerID: customerID,
		Consent: dto.SaltEdgeConsent{
			Scopes:   []string{"accounts", "transactions"},
			FromDate: c.now().UTC().AddDate(0, 0, -c.config.ConsentDays).Format("2006-01-02"),
		},
		Attempt: dto.SaltEdgeAttempt{
			FetchScopes: []string{"accounts", "transactions"},
			ReturnTo:    c.config.ReturnTo,
			NotifyURL:   c.config.NotifyURL,
		},
	}

	var resp dto.SaltEdgeEnvelope[dto.SaltEdgeConnectSession]
	err := c.call(ctx, "connect_session", http.MethodPost, "/connections/connect",
		dto.SaltEdgeEnvelope[dto.SaltEdgeConnectRequest]{Data: request},
		&resp)
	if err != nil {
		return nil, err
	}
	if resp.Data.ConnectURL == "" {
		return nil, &apperrors.ExternalServiceError{Service: saltEdgeService, Operation: "connect_session", Err: errors.New("response has no connect_url")}
	}

	return &resp.Data, nil
}

// ListTransactions returns one page of the connection's feed and the from_id
// of the next page, which is empty once the feed is exhausted.
func (c *SaltEdgeClient) ListTransactions(ctx context.Context, connectionID, fromID string) ([]dto.SaltEdgeTransaction, string, error) {
	query := url.Values{}
	query.Set("connection_id", connectionID)
	if fromID != "" {
		query.Set("from_id", fromID)
	}

	var resp dto.SaltEdgeEnvelope[[]dto.SaltEdgeTransaction]
	if err := c.call(ctx, "list_transactions", http.MethodGet, "/transactions?"+query.Encode(), nil, &resp); err != nil {
		return nil, "", err
	}

	return resp.Data, resp.Meta.NextCursor(), nil
}

func (c *SaltEdgeClient) ListConnections(ctx context.Context, customerID string) ([]dto.SaltEdgeConnection, error) {
	query := url.Values{}
	query.Set("customer_id", customerID)

	var resp dto.SaltEdgeEnvelope[[]dto.SaltEdgeConnection]
	if err := c.call(ctx, "list_connections", http.MethodGet, "/connections?"+query.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (c *SaltEdgeClient) call(ctx context.Context, operation, method, path string, body, out any) error {
	if c.config.AppID == "" || c.config.Secret == "" {
		return ErrProviderNotConfigured
	}
	if c.breaker.IsOpen() {
		c.recordRequest(operation, "circuit_open")
		return &apperrors.ExternalServiceError{Service: saltEdgeService, Operation: operation, Err: ErrCircuitBreakerOpen}
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return &apperrors.ExternalServiceError{Service: saltEdgeService, Operation: operation, Err: err}
	}

	req, err := c.buildRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, respBody, err := c.do(req)
	c.metrics.RecordProcessingTime(MetricProviderDuration, time.Since(start))
	if err != nil {
		c.breaker.RecordFailure()
		c.recordRequest(operation, "transport_error")
		return &apperrors.ExternalServiceError{Service: saltEdgeService, Operation: operation, Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.Unmarshal(respBody, out); err != nil {
			c.breaker.RecordFailure()
			c.recordRequest(operation, "decode_error")
			return &apperrors.ExternalServiceError{
				Service:    saltEdgeService,
				Operation:  operation,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("decode success response: %w", err),
			}
		}
		c.breaker.RecordSuccess()
		c.recordRequest(operation, strconv.Itoa(resp.StatusCode))
		return nil

	default:
		message := string(respBody)
		var errResp dto.SaltEdgeErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			message = errResp.Error.Class + ": " + errResp.Error.Message
		}

		extErr := &apperrors.ExternalServiceError{
			Service:    saltEdgeService,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Err:        errors.New(message),
		}
		if extErr.Retryable() {
			c.breaker.RecordFailure()
		}
		c.recordRequest(operation, strconv.Itoa(resp.StatusCode))

		c.logger.ErrorContext(ctx, "saltedge request failed",
			"operation", operation,
			"status", resp.StatusCode,
			"message", message,
		)
		return extErr
	}
}

func (c *SaltEdgeClient) buildRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *SaltEdgeClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error(
			"saltedge request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func (c *SaltEdgeClient) recordRequest(operation, status string) {
	c.metrics.IncrementCounter(MetricProviderRequest, map[string]string{"operation": operation, "status": status})
}
