package logger

import (
	"log/slog"

	"github.com/dmitrymomot/uaengine/pkg/renderingengine"
)

// Engine records a rendering engine as a group under the key "engine".
func Engine(e renderingengine.RenderingEngine) slog.Attr {
	attrs := []slog.Attr{
		slog.String("family", e.Family().String()),
		slog.String("vendor", e.Vendor().String()),
		slog.String("version", e.Version()),
	}
	if e.FullVersion() != "" {
		attrs = append(attrs, slog.String("full_version", e.FullVersion()))
	}
	return slog.Attr{Key: "engine", Value: slog.GroupValue(attrs...)}
}

// UserAgent records a raw user agent under the key "user_agent".
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}
