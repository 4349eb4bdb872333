package steps

import (
	"fmt"

	"github.com/systemstart/stylekit/pkg/api"
	"github.com/systemstart/stylekit/pkg/manifest"
)

type createManifestStep struct {
	name string
}

// NewCreateManifestStep creates the step that runs `npm init -y` when the
// project has no package.json yet.
func NewCreateManifestStep(name string) Step {
	return &createManifestStep{name: name}
}

func (s *createManifestStep) Name() string { return s.name }

func (s *createManifestStep) Skip(ctx StepContext) (string, bool) {
	exists, err := manifest.Exists(ctx.ProjectDir)
	if err != nil || !exists {
		// Run and let npm report whatever is wrong with the path.
		return "", false
	}
	return api.ManifestFilename + " already exists.", true
}

func (s *createManifestStep) Run(ctx StepContext) error {
	if err := manifest.Initialize(ctx.Runner, ctx.ProjectDir); err != nil {
		return fmt.Errorf("an error occurred while creating %s: %w", api.ManifestFilename, err)
	}
	return nil
}

type editManifestStep struct {
	name      string
	stylelint bool
}

// NewEditManifestStep creates the step that adds the css scripts and the
// default browserslist to package.json.
func NewEditManifestStep(name string, stylelint bool) Step {
	return &editManifestStep{name: name, stylelint: stylelint}
}

func (s *editManifestStep) Name() string { return s.name }

func (s *editManifestStep) Skip(StepContext) (string, bool) { return "", false }

func (s *editManifestStep) Run(ctx StepContext) error {
	// The manifest error already names the file.
	return manifest.Edit(ctx.ProjectDir, manifest.Options{Stylelint: s.stylelint})
}
