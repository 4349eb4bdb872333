package steps

import (
	"fmt"
	"log/slog"

	"github.com/systemstart/stylekit/pkg/capability"
)

type installStep struct {
	name      string
	stylelint bool
}

// NewInstallStep creates the step that adds the toolchain as dev
// dependencies with yarn or npm.
func NewInstallStep(name string, stylelint bool) Step {
	return &installStep{name: name, stylelint: stylelint}
}

func (s *installStep) Name() string { return s.name }

func (s *installStep) Skip(StepContext) (string, bool) { return "", false }

func (s *installStep) Run(ctx StepContext) error {
	tool, verb, err := capability.SelectInstaller(ctx.ProjectDir)
	if err != nil {
		return fmt.Errorf("selecting package manager: %w", err)
	}

	args := capability.InstallArgs(verb, s.stylelint)

	slog.Info("installing packages", "step", s.name, "tool", tool, "stylelint", s.stylelint)

	if err := ctx.Runner.Run(tool, args, ctx.ProjectDir); err != nil {
		return fmt.Errorf("an error occurred while installing style-dictionary: %w", err)
	}
	return nil
}
