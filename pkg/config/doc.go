// Package config loads the engineinfo settings from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// an optional `.env` file is read first, then the environment is parsed into
// Config using struct tags and the result is validated.
//
//	cfg, err := config.Load()
//	if err != nil {
//		// errors.Is(err, config.ErrParsingConfig) or config.ErrInvalidConfig
//	}
//
// Recognized variables:
//
//	UAENGINE_CACHE_SIZE     detection cache size (default 1024, 0 disables)
//	UAENGINE_LOG_LEVEL      debug, info, warn or error (default info)
//	UAENGINE_LOG_FORMAT     text or json (default text)
//	UAENGINE_REPORT_FORMAT  table or yaml (default table)
//	UAENGINE_FULL_VERSIONS  group reports by full version (default false)
package config
