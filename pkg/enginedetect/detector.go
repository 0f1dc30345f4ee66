package enginedetect

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/uaengine/pkg/logger"
	"github.com/dmitrymomot/uaengine/pkg/renderingengine"
)

// Detector maps user agent strings to rendering engines.
// A Detector is safe for concurrent use.
type Detector struct {
	patterns []Pattern
	cache    *engineCache
	logger   *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithCacheSize enables an LRU cache of up to n detection results.
// Values of n <= 0 disable caching.
func WithCacheSize(n int) Option {
	return func(d *Detector) {
		if n <= 0 {
			d.cache = nil
			return
		}
		d.cache = newEngineCache(n)
	}
}

// WithLogger sets the logger used for detection diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithPatterns adds patterns on top of the built-in table.
// They are merged by OrderHint; on equal hints custom patterns win.
func WithPatterns(patterns ...Pattern) Option {
	return func(d *Detector) {
		merged := make([]Pattern, 0, len(patterns)+len(d.patterns))
		merged = append(merged, patterns...)
		merged = append(merged, d.patterns...)
		sortPatterns(merged)
		d.patterns = merged
	}
}

// New creates a Detector. Without options it uses the built-in patterns,
// no cache and a discarding logger.
func New(opts ...Option) *Detector {
	d := &Detector{
		patterns: enginePatterns,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the rendering engine announced by ua.
//
// A usable engine is always returned. ErrEmptyUserAgent comes with
// renderingengine.Unknown() for blank input, ErrUnknownEngine with
// renderingengine.Unknown() when no pattern matched.
func (d *Detector) Detect(ua string) (renderingengine.RenderingEngine, error) {
	if strings.TrimSpace(ua) == "" {
		return renderingengine.Unknown(), ErrEmptyUserAgent
	}

	if d.cache != nil {
		if engine, ok := d.cache.get(ua); ok {
			return engine, nil
		}
	}

	engine, ok := matchEngine(strings.ToLower(ua), d.patterns)
	if !ok {
		d.logger.Debug("rendering engine not detected", logger.UserAgent(ua))
		return engine, ErrUnknownEngine
	}

	if d.cache != nil {
		d.cache.put(ua, engine)
	}
	return engine, nil
}

// CacheLen returns the number of cached results, 0 when caching is disabled.
func (d *Detector) CacheLen() int {
	if d.cache == nil {
		return 0
	}
	return d.cache.len()
}

var defaultDetector = New()

// Detect detects the rendering engine of ua with the built-in patterns and
// no cache.
func Detect(ua string) (renderingengine.RenderingEngine, error) {
	return defaultDetector.Detect(ua)
}
