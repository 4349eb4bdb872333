package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/systemstart/stylekit/pkg/capability"
)

var version = "dev"

const (
	_ = iota
	exitUsage
	exitDotenvError
	exitLoggingError
	exitAnswersError
	exitPromptError
	exitProjectDirectoryCheckFailed
	exitPipelineFailed
)

// exitError carries the process exit code for a failed command. reported
// is set when the error was already shown to the user.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

func main() {
	if err := newRootCommand(capability.ExecRunner{}).Execute(); err != nil {
		var ee *exitError
		if !errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(exitUsage)
		}
		if !ee.reported {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(ee.code)
	}
}
