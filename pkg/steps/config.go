package steps

import (
	"fmt"
	"log/slog"

	"github.com/systemstart/stylekit/pkg/capability"
)

// ConfigFile describes one templated config file written into the
// project root.
type ConfigFile struct {
	Template    string
	Destination string
	Label       string
	Subs        capability.Substitutions
	Enabled     bool
	SkipReason  string
}

type configFileStep struct {
	name string
	cfg  ConfigFile
}

// NewConfigFileStep creates a step that materializes cfg.Template. It
// never overwrites an existing file.
func NewConfigFileStep(name string, cfg ConfigFile) Step {
	return &configFileStep{name: name, cfg: cfg}
}

func (s *configFileStep) Name() string { return s.name }

func (s *configFileStep) Skip(StepContext) (string, bool) {
	if s.cfg.Enabled {
		return "", false
	}
	return s.cfg.SkipReason, true
}

func (s *configFileStep) Run(ctx StepContext) error {
	dest := resolve(ctx.ProjectDir, s.cfg.Destination)

	if err := capability.MaterializeTemplate(ctx.Assets, s.cfg.Template, dest, s.cfg.Subs); err != nil {
		return fmt.Errorf("an error occurred while copying %s: %w", s.cfg.Label, err)
	}

	slog.Info("config file written", "step", s.name, "file", s.cfg.Destination)
	return nil
}
