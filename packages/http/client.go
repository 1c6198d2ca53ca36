package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
)

const (
	// DefaultMaxRedirects is the maximum number of redirects to follow
	DefaultMaxRedirects = 10
	// DefaultIdleConnTimeout is how long idle connections stay in the pool
	DefaultIdleConnTimeout = 90 * time.Second
	// DefaultTLSHandshakeTimeout bounds the TLS handshake only, not the request
	DefaultTLSHandshakeTimeout = 10 * time.Second
)

// TransportError wraps failures that happen after the request left the CLI:
// DNS, connection, TLS, timeouts, cancellation and body read errors.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Client struct {
	httpClient     *http.Client
	timeout        time.Duration
	followRedirect bool
	maxRedirects   int
	validateSSL    bool
	proxyURL       string
	compressed     bool
	defaultHeaders map[string]string
}

type ClientOption func(*Client)

// NewClient builds a client. With no options there is no overall timeout,
// redirects are followed, and certificates are verified.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		followRedirect: true,
		maxRedirects:   DefaultMaxRedirects,
		validateSSL:    true,
		defaultHeaders: make(map[string]string),
	}

	for _, opt := range opts {
		opt(c)
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		ForceAttemptHTTP2:   true,
		IdleConnTimeout:     DefaultIdleConnTimeout,
		TLSHandshakeTimeout: DefaultTLSHandshakeTimeout,
		DisableCompression:  c.compressed,
	}

	if !c.validateSSL {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	if c.proxyURL != "" {
		proxyURL, err := neturl.Parse(c.proxyURL)
		if err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		} else {
			slog.Warn("ignoring invalid proxy URL", "proxy", c.proxyURL, "error", err)
		}
	}

	redirectPolicy := func(req *http.Request, via []*http.Request) error {
		if !c.followRedirect {
			return http.ErrUseLastResponse
		}
		if len(via) >= c.maxRedirects {
			return http.ErrUseLastResponse
		}
		return nil
	}

	c.httpClient = &http.Client{
		Transport:     transport,
		Timeout:       c.timeout,
		CheckRedirect: redirectPolicy,
	}

	return c
}

// WithTimeout bounds the whole exchange. Zero means no timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithFollowRedirects(follow bool) ClientOption {
	return func(c *Client) {
		c.followRedirect = follow
	}
}

func WithMaxRedirects(max int) ClientOption {
	return func(c *Client) {
		c.maxRedirects = max
	}
}

// WithDefaultHeaders sets multiple default headers for all requests
func WithDefaultHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for k, v := range headers {
			c.defaultHeaders[k] = v
		}
	}
}

// WithValidateSSL enables or disables SSL certificate validation
func WithValidateSSL(validate bool) ClientOption {
	return func(c *Client) {
		c.validateSSL = validate
	}
}

// WithProxy sets the proxy URL for all requests
func WithProxy(proxyURL string) ClientOption {
	return func(c *Client) {
		c.proxyURL = proxyURL
	}
}

// WithCompressed advertises gzip, zstd and brotli and decodes the response body.
func WithCompressed(compressed bool) ClientOption {
	return func(c *Client) {
		c.compressed = compressed
	}
}

// Do sends req and reads the whole response body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := ValidateURL(req.URL); err != nil {
		return nil, err
	}

	if req.Auth != nil && req.Auth.Type == AuthDigest {
		return c.doWithDigestAuth(ctx, req)
	}

	return c.doRequest(ctx, req, "")
}

func (c *Client) doRequest(ctx context.Context, req *Request, authHeader string) (*Response, error) {
	var body io.Reader
	if req.Body != "" {
		body = bytes.NewBufferString(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	if c.compressed {
		httpReq.Header.Set("Accept-Encoding", AcceptEncoding)
	}

	for k, v := range c.defaultHeaders {
		httpReq.Header.Set(k, v)
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if req.Auth != nil && req.Auth.Type == AuthBasic {
		httpReq.SetBasicAuth(req.Auth.Username, req.Auth.Password)
	}

	if authHeader != "" {
		httpReq.Header.Set("Authorization", authHeader)
	}

	slog.Debug("sending request", "method", req.Method, "url", req.URL, "body_bytes", len(req.Body))

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}
	duration := time.Since(start)

	if c.compressed {
		if enc := httpResp.Header.Get("Content-Encoding"); enc != "" {
			respBody, err = DecodeBody(enc, respBody)
			if err != nil {
				return nil, &TransportError{Err: err}
			}
		}
	}

	slog.Debug("received response",
		"status", httpResp.StatusCode,
		"proto", httpResp.Proto,
		"body_bytes", len(respBody),
		"duration_ms", duration.Milliseconds(),
	)

	return &Response{
		Proto:      httpResp.Proto,
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       respBody,
		Duration:   duration,
	}, nil
}

func (c *Client) doWithDigestAuth(ctx context.Context, req *Request) (*Response, error) {
	// First request without auth to get the challenge
	resp, err := c.doRequest(ctx, req, "")
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	challenge, ok := parseDigestChallenge(resp.Header("WWW-Authenticate"))
	if !ok {
		slog.Debug("401 without a digest challenge, returning it as-is")
		return resp, nil
	}

	uri := req.URL
	if u, err := neturl.Parse(req.URL); err == nil {
		uri = u.RequestURI()
	}

	var cnonce string
	if challenge.Qop != "" {
		cnonce, err = newCnonce()
		if err != nil {
			return nil, fmt.Errorf("generating digest cnonce: %w", err)
		}
	}

	return c.doRequest(ctx, req, challenge.authorization(req.Auth, req.Method, uri, cnonce))
}

// ValidateURL checks that a URL is well-formed and uses an allowed scheme
func ValidateURL(rawURL string) error {
	_, err := parser.ParseURL(rawURL)
	return err
}

// IsTransportError reports whether err came from the network rather than from input validation.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
