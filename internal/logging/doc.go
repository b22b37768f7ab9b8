// Package logging builds the process-wide slog logger: a pretty console
// handler for interactive use, a JSON handler for log files, and the shared
// attribute helpers and field names the rest of the code logs with.
package logging
