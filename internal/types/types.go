// Package types defines common type-safe enums used across the codebase.
package types

// Decision represents the classifier's verdict on a command.
type Decision string

const (
	// DecisionAllow permits the command; the hook emits no output for it.
	DecisionAllow Decision = "allow"
	// DecisionBlock rejects the command with a reason.
	DecisionBlock Decision = "block"
)

// Valid returns true if the Decision is a known valid value.
func (d Decision) Valid() bool {
	return d == DecisionAllow || d == DecisionBlock
}

// IsBlock returns true if the command must not be executed.
func (d Decision) IsBlock() bool {
	return d == DecisionBlock
}

// LogLevel represents a logging verbosity level as configured.
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Valid returns true if the LogLevel is a known valid value.
// The empty string is valid and means "use the default".
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, "":
		return true
	}
	return false
}
