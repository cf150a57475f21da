package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookarc/internal/client/metrics"
	"github.com/dmitrijs2005/bookarc/internal/common"
	"github.com/dmitrijs2005/bookarc/internal/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const tracerName = "github.com/dmitrijs2005/bookarc/internal/client/client"

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	http    HTTPDoer
	log     logging.Logger
	metrics *metrics.Metrics
	limiter *rate.Limiter
	timeout time.Duration
	tracer  trace.Tracer
}

type Option func(*HTTPClient)

func WithHTTPDoer(d HTTPDoer) Option {
	return func(c *HTTPClient) { c.http = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

// WithRateLimit throttles outbound calls to rps requests per second. Zero
// or a negative value leaves the client unthrottled.
func WithRateLimit(rps float64) Option {
	return func(c *HTTPClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithTimeout bounds each call. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    http.DefaultClient,
		log:     logging.Nop(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) Do(ctx context.Context, req Request, out any) error {
	token, err := c.idToken(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNotAuthenticated
	}
	return c.send(ctx, req, token, out)
}

func (c *HTTPClient) DoPublic(ctx context.Context, req Request, out any) error {
	token, err := c.idToken(ctx)
	if err != nil {
		c.log.Warn(ctx, "session unreadable, sending anonymous request", "error", err)
		token = ""
	}
	return c.send(ctx, req, token, out)
}

func (c *HTTPClient) idToken(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", nil
	}
	token, err := c.tokens.IDToken(ctx)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return token, nil
}

func (c *HTTPClient) send(ctx context.Context, req Request, token string, out any) (err error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	route := RouteOf(req.Path)

	ctx, span := c.tracer.Start(ctx, "bookarc.client "+method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", route),
			attribute.Bool("bookarc.authenticated", token != ""),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s %s: %w", method, route, err)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := c.newRequest(ctx, method, req, token)
	if err != nil {
		return err
	}
	requestID := httpReq.Header.Get(common.RequestIDHeaderName)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.metrics.ObserveRequest(method, route, 0, time.Since(start))
		c.log.Warn(ctx, "backend request failed", "method", method, "route", route, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, route, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.ObserveRequest(method, route, resp.StatusCode, elapsed)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, route, err)
	}

	c.log.Debug(ctx, "backend request",
		"method", method,
		"route", route,
		"status", resp.StatusCode,
		"duration", elapsed,
		"request_id", requestID,
	)

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		// tokens are never refreshed; an expired one ends up here
		c.log.Warn(ctx, "backend rejected session token", "route", route, "token", common.MaskToken(token))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return NewHTTPError(resp.StatusCode, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, route, err)
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method string, req Request, token string) (*http.Request, error) {
	target := c.baseURL + req.Path
	if !req.Query.Empty() {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, req.Path, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, req.Path, err)
	}

	// caller headers first; the fixed ones below always win
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if token != "" {
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerToken(token))
	} else {
		httpReq.Header.Del(common.AuthorizationHeaderName)
	}
	if httpReq.Header.Get(common.RequestIDHeaderName) == "" {
		httpReq.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	return httpReq, nil
}
