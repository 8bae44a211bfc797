package httpvalidate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/proptypes"
	"github.com/dmitrymomot/proptypes/pkg/logger"
)

// Body returns middleware that validates the JSON object in the request body
// against fields. Valid props are stored in the request context, see
// PropsFromContext; the body itself is consumed.
func Body(fields map[string]proptypes.TypeChecker, opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			props, err := decodeJSON(w, r, o.maxBodySize)
			if err != nil {
				o.log.WarnContext(r.Context(), "failed to decode request body",
					logger.Component("httpvalidate"),
					logger.Error(err),
				)
				o.errorHandler(w, r, err)
				return
			}
			serve(o, fields, props, next, w, r)
		})
	}
}

// URLParams returns middleware that validates chi route parameters against
// fields. Parameter values are always strings.
func URLParams(fields map[string]proptypes.TypeChecker, opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			props := proptypes.Props{}
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				for i, key := range rctx.URLParams.Keys {
					// Wildcard segments are registered under "*".
					if key == "*" || i >= len(rctx.URLParams.Values) {
						continue
					}
					props[key] = rctx.URLParams.Values[i]
				}
			}
			serve(o, fields, props, next, w, r)
		})
	}
}

func serve(o *options, fields map[string]proptypes.TypeChecker, props proptypes.Props, next http.Handler, w http.ResponseWriter, r *http.Request) {
	if err := proptypes.Check(fields, props); err != nil {
		verrs := proptypes.ExtractValidationErrors(err)
		o.log.DebugContext(r.Context(), "request props rejected",
			logger.Component("httpvalidate"),
			logger.InvalidProps(verrs.Fields()),
		)
		for _, e := range verrs {
			o.log.DebugContext(r.Context(), "prop rejected",
				logger.Component("httpvalidate"),
				logger.Group("rejection", logger.Prop(e.Prop), logger.Error(e)),
			)
		}
		o.errorHandler(w, r, err)
		return
	}

	if !o.skipDefaults {
		props = proptypes.ApplyDefaults(fields, props)
	}
	next.ServeHTTP(w, r.WithContext(WithProps(r.Context(), props)))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, maxBodySize int64) (proptypes.Props, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))

	var props proptypes.Props
	if err := decoder.Decode(&props); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
		case errors.Is(err, io.EOF):
			return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}
	if props == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidJSON)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return props, nil
}
