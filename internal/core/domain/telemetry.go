package domain

// BuildStatus represents the outcome of a recorded build.
type BuildStatus string

const (
	// BuildStatusCompleted indicates the compiler exited successfully.
	BuildStatusCompleted BuildStatus = "completed"
	// BuildStatusFailed indicates the compiler exited with a non-zero code.
	BuildStatusFailed BuildStatus = "failed"
	// BuildStatusSkipped indicates a dry run: the command was printed but not executed.
	BuildStatusSkipped BuildStatus = "skipped"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
