package main

import "fmt"

// Exit codes for the nerdash CLI.
const (
	ExitOK            = 0 // Dashboard written or command succeeded.
	ExitInvalidArgs   = 1 // Missing file, bad path, or invalid flags.
	ExitValidation    = 2 // Strict mode and the input has problems.
	ExitSpliceFailure = 3 // Payload region not found exactly once, or the write failed.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitValidation:
			msg = "nerdash: input failed validation"
		case ExitSpliceFailure:
			msg = "nerdash: dashboard not updated"
		default:
			msg = "nerdash: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
