package cli

import (
	"errors"
	"fmt"

	"kanjize-hq/kanjize/pkg/config"
)

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// ConfigErrorsFrom flattens a configuration validation failure into one
// ConfigError per field. Other errors are reported against the file itself.
func ConfigErrorsFrom(err error) []*ConfigError {
	if err == nil {
		return nil
	}
	var verr config.ValidationError
	if !errors.As(err, &verr) {
		return []*ConfigError{NewConfigError("file", err.Error())}
	}
	out := make([]*ConfigError, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		out = append(out, NewConfigError(fe.Field, fe.Message))
	}
	return out
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// LineError reports a batch input line that failed to convert.
type LineError struct {
	Line  int
	Input string
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Input, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// NewLineError creates a new LineError.
func NewLineError(line int, input string, err error) *LineError {
	return &LineError{
		Line:  line,
		Input: input,
		Err:   err,
	}
}
