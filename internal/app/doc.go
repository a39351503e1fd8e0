// Package app wires the dataset-insights HTTP service: telemetry, the
// analysis and health services, the middleware chain and the routes. It
// also owns the server lifecycle, from listening to graceful shutdown.
package app
