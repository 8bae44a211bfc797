package httpvalidate

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/proptypes/pkg/logger"
)

// ErrorHandler writes the response for a rejected request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Option configures the validation middleware.
type Option func(*options)

type options struct {
	log          *slog.Logger
	maxBodySize  int64
	skipDefaults bool
	errorHandler ErrorHandler
}

func defaultOptions() *options {
	return &options{
		log:          logger.Noop(),
		maxBodySize:  1 << 20,
		errorHandler: WriteError,
	}
}

func newOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger supplies a logger for rejected requests. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMaxBodySize limits the size of JSON bodies.
func WithMaxBodySize(n int64) Option {
	if n <= 0 {
		panic("WithMaxBodySize: size must be > 0")
	}
	return func(o *options) { o.maxBodySize = n }
}

// WithErrorHandler replaces WriteError for rejected requests.
func WithErrorHandler(h ErrorHandler) Option {
	if h == nil {
		panic("WithErrorHandler: nil handler")
	}
	return func(o *options) { o.errorHandler = h }
}

// WithoutDefaults stores the props exactly as received.
func WithoutDefaults() Option {
	return func(o *options) { o.skipDefaults = true }
}
