package main

import "fmt"

// Exit codes for the schemedash CLI.
const (
	ExitOK              = 0 // Every scheme loaded from its source.
	ExitInvalidArgs     = 1 // Invalid arguments, config, or district.
	ExitPartialFallback = 2 // Some schemes fell back to sample data (--strict).
	ExitTotalFallback   = 3 // Every scheme fell back to sample data (--strict).
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
		case ExitPartialFallback:
			msg = "schemedash: some schemes are showing sample data"
		case ExitTotalFallback:
			msg = "schemedash: every scheme is showing sample data"
		default:
			msg = "schemedash: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}

// fallbackExitCode maps a load outcome to the --strict exit code.
func fallbackExitCode(fallbacks, total int) int {
	switch {
	case total == 0 || fallbacks == 0:
		return ExitOK
	case fallbacks >= total:
		return ExitTotalFallback
	default:
		return ExitPartialFallback
	}
}
