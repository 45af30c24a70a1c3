package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/wolfeidau/orgctl/internal/logger"
	"github.com/wolfeidau/orgctl/internal/telemetry"
	"github.com/wolfeidau/orgctl/internal/xmlcodec"
)

const (
	// ContentTypeXML is sent as Accept on every call and as Content-Type on
	// calls with a body.
	ContentTypeXML = "application/xml"

	// maxErrorBody bounds how much of a failed response is kept.
	maxErrorBody = 4 << 10
)

// Config holds common client configuration
type Config struct {
	// ServerURL is the base of the organizations service.
	ServerURL string
	// ManagerURL is the base of the organization manager service, which
	// handles fire-all and acquire.
	ManagerURL string
	Timeout    time.Duration
	// EntityRoot is the root element of create and update payloads.
	EntityRoot string
	Parser     xmlcodec.ParserConfig
	Debug      bool
}

// DefaultConfig returns a default client configuration
func DefaultConfig() Config {
	return Config{
		ServerURL:  "https://localhost/soa/api/v1",
		ManagerURL: "https://localhost/orgmanager/api/v1",
		Timeout:    30 * time.Second,
		EntityRoot: xmlcodec.DefaultEntityRoot,
		Parser:     xmlcodec.DefaultParserConfig,
		Debug:      false,
	}
}

// Client calls the organizations and organization manager services.
type Client struct {
	serverURL  *url.URL
	managerURL *url.URL
	http       *http.Client
	log        zerolog.Logger
	decoder    *xmlcodec.Decoder
	encoder    xmlcodec.Encoder
	metrics    *telemetry.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client built from the config.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the services in cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	serverURL, err := parseBase(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	managerURL, err := parseBase(cfg.ManagerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid manager URL: %w", err)
	}

	c := &Client{
		serverURL:  serverURL,
		managerURL: managerURL,
		log:        zerolog.Nop(),
		decoder:    xmlcodec.NewDecoder(cfg.Parser),
		encoder:    xmlcodec.Encoder{Root: cfg.EntityRoot},
		metrics:    telemetry.GetMetrics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = NewHTTPClient(cfg, c.log)
	}

	return c, nil
}

// NewHTTPClient builds the HTTP client used by New: request logging, then
// tracing, then transparent gzip over the default transport.
func NewHTTPClient(cfg Config, log zerolog.Logger) *http.Client {
	var rt http.RoundTripper = gzhttp.Transport(http.DefaultTransport)
	rt = otelhttp.NewTransport(rt)
	rt = logger.NewTransport(rt, log)

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: rt,
	}
}

func parseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute URL", raw)
	}
	return u, nil
}

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d %s", e.StatusCode, e.Status)
	if body := strings.TrimSpace(e.Body); body != "" {
		return msg + ": " + body
	}
	return msg
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// IsCanceled reports whether err is the result of the caller canceling the
// request. Such errors carry no result and should not be shown.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

type call struct {
	op     string
	method string
	url    *url.URL
	body   []byte
}

// do issues the call and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, cl call) ([]byte, error) {
	started := time.Now()
	attrs := metric.WithAttributes(attribute.String("operation", cl.op))
	c.metrics.RequestsTotal.Add(ctx, 1, attrs)

	data, err := c.roundTrip(ctx, cl)

	c.metrics.RequestDuration.Record(ctx, float64(time.Since(started).Milliseconds()), attrs)
	switch {
	case err == nil:
	case IsCanceled(err):
		c.metrics.RequestsCanceledTotal.Add(ctx, 1, attrs)
	default:
		c.metrics.RequestErrorsTotal.Add(ctx, 1, attrs)
	}

	return data, err
}

func (c *Client) roundTrip(ctx context.Context, cl call) ([]byte, error) {
	var body io.Reader
	if cl.body != nil {
		body = bytes.NewReader(cl.body)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, cl.url.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", cl.op, err)
	}
	req.Header.Set("Accept", ContentTypeXML)
	if cl.body != nil {
		req.Header.Set("Content-Type", ContentTypeXML)
	}
	if id, err := uuid.NewV7(); err == nil {
		req.Header.Set(logger.RequestIDHeader, id.String())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", cl.op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// the body is best effort; a failed read still reports the status
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Body:       string(excerpt),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", cl.op, err)
	}
	return data, nil
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// decoded records schema violations reported by a decoder.
func (c *Client) decoded(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, xmlcodec.ErrMissingRoot) {
		c.metrics.DecodeErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	}
	return fmt.Errorf("failed to decode %s response: %w", op, err)
}

func endpoint(base *url.URL, query url.Values, elem ...string) *url.URL {
	u := base.JoinPath(elem...)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u
}
