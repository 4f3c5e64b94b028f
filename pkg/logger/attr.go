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

// Rule records a rule id under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Locale records a locale tag under the key "locale".
func Locale(locale string) slog.Attr {
	return slog.String("locale", locale)
}

// Key records a message key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
