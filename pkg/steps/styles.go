package steps

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/systemstart/stylekit/assets"
	"github.com/systemstart/stylekit/pkg/api"
	"github.com/systemstart/stylekit/pkg/capability"
)

type copyStylesStep struct {
	name            string
	stylesDirectory string
}

// NewCopyStylesStep creates the step that copies the bundled style tree
// into the styles directory, merging with whatever is already there.
func NewCopyStylesStep(name, stylesDirectory string) Step {
	return &copyStylesStep{name: name, stylesDirectory: stylesDirectory}
}

func (s *copyStylesStep) Name() string { return s.name }

func (s *copyStylesStep) Skip(StepContext) (string, bool) { return "", false }

func (s *copyStylesStep) Run(ctx StepContext) error {
	dest := resolve(ctx.ProjectDir, s.stylesDirectory)

	slog.Info("copying styles directory", "step", s.name, "destination", dest)

	if err := capability.CopyTree(ctx.Assets, assets.StylesDir, dest); err != nil {
		return fmt.Errorf("copying styles directory: %w", err)
	}
	return nil
}

func resolve(projectDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectDir, p)
}

func stylesSubstitutions(cfg api.Configuration) capability.Substitutions {
	return capability.Substitutions{api.StylesDirectoryToken: cfg.StylesDirectory}
}
