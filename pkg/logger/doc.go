// Package logger builds slog loggers and the attribute helpers used across
// proptypes.
//
// New creates a *slog.Logger from Option values (format, level, output,
// static attributes) and wraps its handler in LogHandlerDecorator, which adds
// attributes extracted from the context of each record. Noop returns a logger
// that drops everything; packages fall back to it when no logger is supplied.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	mw := httpvalidate.Body(fields, httpvalidate.WithLogger(log))
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
