// Package logger provides a structured logging facility based on Zap.
//
// The CLI defaults to console encoding so interactive runs stay readable;
// automation can switch to JSON encoding via configuration.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (development) or json (production)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("comparison complete", zap.Int("discrepancies", n))
package logger
