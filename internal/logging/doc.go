// Package logging provides structured logging for florist.
//
// This package wraps a zap logger with convenience functions for the events
// the flower table produces: seed loading, list mutations, edit target
// changes, and rejected submissions.
//
// # Log Levels
//
//   - Debug: Edit target changes, focus moves
//   - Info: Seed loading, appends, updates, deletes
//   - Warn: Rejected submissions, malformed seed files
//   - Error: Startup failures
//
// # Configuration
//
// Logging is silent unless a level is given:
//
//	if err := logging.Initialize("debug", "/tmp/florist.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Empty arguments fall back to FLORIST_LOG_LEVEL and FLORIST_LOG_FILE.
// Interactive sessions must log to a file; writing to the terminal would
// corrupt the Bubble Tea display.
package logging
