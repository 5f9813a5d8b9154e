// Package observe provides pure.Observer implementations: structured logging
// with zap, OpenTelemetry metrics, and a fan-out combinator.
package observe
