// Package enginedetect identifies the rendering engine announced by an HTTP
// User-Agent string and returns it as a renderingengine.RenderingEngine.
//
// Detection is a single ordered pass over a table of Pattern values. Each
// pattern lists keywords that must appear in the lower-cased user agent,
// keywords that must not, and an optional regular expression capturing the
// engine version. The first accepted pattern wins, so more specific engines
// (EdgeHTML, Trident, Blink) are listed before the engines they imitate
// (Gecko, WebKit). Text-mode browsers map to renderingengine.Text() and
// bots or HTTP libraries map to renderingengine.None().
//
// # Usage
//
//	engine, err := enginedetect.Detect(r.UserAgent())
//	if errors.Is(err, enginedetect.ErrUnknownEngine) {
//	    // engine is renderingengine.Unknown()
//	}
//	log.Printf("engine=%s", engine)
//
// For hot paths create a Detector with a result cache:
//
//	d := enginedetect.New(
//	    enginedetect.WithCacheSize(4096),
//	    enginedetect.WithLogger(log),
//	)
//	engine, _ := d.Detect(ua)
//
// Cached results are keyed by the 64-bit murmur3 digest of the raw user
// agent; only successful detections are cached.
package enginedetect
