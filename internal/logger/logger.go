package logger

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

func Setup(dev bool) zerolog.Logger {
	var logger zerolog.Logger
	level := zerolog.InfoLevel
	if dev {
		level = zerolog.DebugLevel
	}

	logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Caller().Logger()

	if dev {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, FormatTimestamp: func(i any) string {
			return time.Now().Format(time.RFC3339)
		}}).Level(level).With().Stack().Logger()
	}

	return logger
}

var _ http.RoundTripper = (*Transport)(nil)

// Transport logs each outbound request once it completes.
type Transport struct {
	next   http.RoundTripper
	logger zerolog.Logger
}

// NewTransport wraps next, falling back to http.DefaultTransport when nil.
func NewTransport(next http.RoundTripper, logger zerolog.Logger) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{next: next, logger: logger}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	started := time.Now()

	ctx := t.logger.With().
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Str("request_id", req.Header.Get(RequestIDHeader)).
		Logger().WithContext(req.Context())

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		// canceled requests are routine when a newer fetch replaces them
		level := zerolog.ErrorLevel
		if ctx.Err() != nil {
			level = zerolog.DebugLevel
		}
		zerolog.Ctx(ctx).WithLevel(level).
			Err(err).
			Dur("duration", time.Since(started)).
			Msg("http request")

		return resp, err
	}

	zerolog.Ctx(ctx).Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Msg("http request")

	return resp, nil
}
