package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Prop records a property name under the key "prop".
func Prop(name string) slog.Attr {
	return slog.String("prop", name)
}

// InvalidProps records the names of rejected properties under the key
// "invalid_props". An empty list returns an empty Attr.
func InvalidProps(names []string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("invalid_props", names)
}
