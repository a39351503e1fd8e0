// Package config loads the application configuration.
//
// # Configuration Sources
//
// Values are layered, later sources overriding earlier ones:
//
//  1. Default() values
//  2. A YAML file (--config, or insights.yaml / configs/insights.yaml)
//  3. Environment variables prefixed INSIGHTS_
//
// Environment variable names follow the struct nesting:
//
//	INSIGHTS_LOGGING_LEVEL=debug
//	INSIGHTS_ANALYSIS_MAX_EXAMPLES=10
//	INSIGHTS_SERVER_ADDR=:9090
//	INSIGHTS_SERVER_RATE_LIMIT_RPS=5
//	INSIGHTS_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Validation
//
// The merged configuration is checked with struct tags
// (github.com/go-playground/validator/v10). Any failure is returned as a
// CONFIG application error.
package config
