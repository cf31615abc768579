// Package upstream issues authenticated calls to a provider's REST API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/spounge-ai/handicap/pkg/patterns/circuitbreaker"
	"golang.org/x/time/rate"
)

// Request is a fully formed upstream call. An empty Token sends no
// Authorization header.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Token  string
	Header http.Header
}

// Response is the status-tagged result of a call. The body is fully read.
type Response struct {
	Status int
	Body   []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Doer performs a single upstream round trip.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

var _ Doer = (*Client)(nil)

// Client is a thin transport. It holds no state beyond pooled connections and
// never retries.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter
	breaker *circuitbreaker.Breaker[*Response]
}

type clientOptions struct {
	timeout    time.Duration
	cache      bool
	limit      rate.Limit
	burst      int
	httpClient *http.Client
	breaker    *breakerOptions
}

type breakerOptions struct {
	maxFailures  int
	resetTimeout time.Duration
	onChange     func(from, to circuitbreaker.State)
}

type Option func(*clientOptions)

func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithCache layers an in-memory HTTP cache under the client. Responses are
// stored only when upstream cache headers allow it.
func WithCache() Option {
	return func(o *clientOptions) { o.cache = true }
}

// WithRateLimit throttles outbound calls to r per second with the given burst.
func WithRateLimit(r float64, burst int) Option {
	return func(o *clientOptions) {
		o.limit = rate.Limit(r)
		o.burst = burst
	}
}

// WithHTTPClient replaces the underlying http.Client, e.g. an httptest server client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithCircuitBreaker stops calling upstream after maxFailures consecutive
// transport errors or 5xx responses, probing again after resetTimeout.
func WithCircuitBreaker(maxFailures int, resetTimeout time.Duration, onChange func(from, to circuitbreaker.State)) Option {
	return func(o *clientOptions) {
		o.breaker = &breakerOptions{maxFailures: maxFailures, resetTimeout: resetTimeout, onChange: onChange}
	}
}

// NewClient builds a client for baseURL with the following transport stack:
//  1. rate limiter and circuit breaker (optional)
//  2. httpcache (optional, in-memory)
//  3. net/http default transport with connection pooling
func NewClient(baseURL string, opts ...Option) *Client {
	o := clientOptions{timeout: 10 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.httpClient
	if hc == nil {
		var transport http.RoundTripper = http.DefaultTransport
		if o.cache {
			ct := httpcache.NewMemoryCacheTransport()
			ct.Transport = transport
			transport = ct
		}
		hc = &http.Client{Transport: transport, Timeout: o.timeout}
	}

	c := &Client{
		http:    hc,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	if o.limit > 0 {
		c.limiter = rate.NewLimiter(o.limit, max(o.burst, 1))
	}
	if b := o.breaker; b != nil {
		breakerOpts := []circuitbreaker.Option[*Response]{
			circuitbreaker.WithFailurePredicate(func(resp *Response, err error) bool {
				return err != nil || resp.Status >= http.StatusInternalServerError
			}),
		}
		if b.onChange != nil {
			breakerOpts = append(breakerOpts, circuitbreaker.WithStateChange[*Response](b.onChange))
		}
		c.breaker = circuitbreaker.New[*Response](b.maxFailures, b.resetTimeout, breakerOpts...)
	}
	return c
}

func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for upstream rate limiter: %w", err)
		}
	}

	if c.breaker == nil {
		return c.roundTrip(ctx, req)
	}
	resp, err := c.breaker.Execute(ctx, func(ctx context.Context) (*Response, error) {
		return c.roundTrip(ctx, req)
	})
	if errors.Is(err, circuitbreaker.ErrOpen) {
		return nil, fmt.Errorf("%s: %w", req.Path, err)
	}
	return resp, err
}

func (c *Client) roundTrip(ctx context.Context, req *Request) (*Response, error) {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{Status: resp.StatusCode, Body: data}, nil
}
