package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// ExitCodeKey is the error metadata key carrying a child process exit code.
const ExitCodeKey = "exit_code"

// ExitCode returns the first exit code attached to an error in the chain.
func ExitCode(err error) (int, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		z, ok := e.(*zerr.Error)
		if !ok {
			continue
		}
		if code, ok := z.Metadata()[ExitCodeKey].(int); ok {
			return code, true
		}
	}
	return 0, false
}
