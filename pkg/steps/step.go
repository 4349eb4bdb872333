package steps

import (
	"io/fs"

	"github.com/systemstart/stylekit/pkg/capability"
)

// StepContext provides the runtime context for a step. ProjectDir is the
// explicit project root; steps never rely on the process working directory.
type StepContext struct {
	ProjectDir string
	Assets     fs.FS
	Runner     capability.Runner
}

// Step is the interface all pipeline steps implement.
//
// Skip is evaluated immediately before the step would run, never when the
// pipeline is built. A true result means Run is not called and reason is
// reported instead.
type Step interface {
	Name() string
	Skip(ctx StepContext) (reason string, skip bool)
	Run(ctx StepContext) error
}
