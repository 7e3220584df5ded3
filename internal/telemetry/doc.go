// Package telemetry wires OpenTelemetry tracing and metrics for habitd.
//
// Providers are initialized from config.TelemetryConfig and degrade
// gracefully: exporter failures mark the instance degraded instead of
// failing startup, and a disabled config yields no-op tracers and
// meters. Call Shutdown during process exit to flush pending data.
package telemetry
