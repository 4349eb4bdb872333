package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/systemstart/stylekit/assets"
	"github.com/systemstart/stylekit/pkg/api"
	"github.com/systemstart/stylekit/pkg/capability"
	"github.com/systemstart/stylekit/pkg/processing"
	"github.com/systemstart/stylekit/pkg/prompt"
	"github.com/systemstart/stylekit/pkg/report"
	"github.com/systemstart/stylekit/pkg/steps"
)

const (
	flagProjectDir      = "project-dir"
	flagStylesDirectory = "styles-directory"
	flagPostCSS         = "postcss"
	flagStylelint       = "stylelint"
	flagYes             = "yes"
	flagAnswers         = "answers"
)

func newInitCommand(v *viper.Viper, runner capability.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Install style-dictionary, PostCSS and stylelint configs into a project",
		Long: `Copy the bundled styles directory into the project, install the
required packages with yarn or npm, write the config files and add the
css:generate script to package.json.

Steps run in a fixed order and the first failure stops the run. Nothing is
rolled back; config files that already exist are never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, v, runner)
		},
	}

	defaults := api.DefaultConfiguration()
	cmd.Flags().String(flagProjectDir, ".", "project root containing (or receiving) package.json")
	cmd.Flags().String(flagStylesDirectory, defaults.StylesDirectory, "styles directory, relative to the project root")
	cmd.Flags().Bool(flagPostCSS, defaults.InstallPostCSSConfig, "install the default PostCSS config")
	cmd.Flags().Bool(flagStylelint, defaults.InstallStylelint, "install stylelint and its standard config")
	cmd.Flags().BoolP(flagYes, "y", false, "do not ask, use flags, answers file and defaults")
	cmd.Flags().String(flagAnswers, "", "YAML answers file")

	bindFlags(v, cmd)
	return cmd
}

func runInit(cmd *cobra.Command, v *viper.Viper, runner capability.Runner) error {
	projectDir, err := checkProjectDirectory(v.GetString(flagProjectDir))
	if err != nil {
		return withCode(exitProjectDirectoryCheckFailed, err)
	}

	cfg, err := initialConfiguration(v)
	if err != nil {
		return withCode(exitAnswersError, err)
	}

	if !v.GetBool(flagYes) {
		cfg, err = prompt.Resolve(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		if err != nil {
			return withCode(exitPromptError, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return withCode(exitAnswersError, err)
	}

	slog.Info("configuration resolved",
		"projectDir", projectDir,
		"stylesDirectory", cfg.StylesDirectory,
		"postcss", cfg.InstallPostCSSConfig,
		"stylelint", cfg.InstallStylelint)

	out := cmd.OutOrStdout()
	sctx := steps.StepContext{
		ProjectDir: projectDir,
		Assets:     assets.FS,
		Runner:     runner,
	}

	result := processing.Run(steps.NewSteps(cfg), sctx, func(_ int, state processing.TaskState) {
		fmt.Fprintln(out, report.Line(state))
	})

	if err := report.Render(out, cfg, result); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if result.Aborted() {
		return &exitError{code: exitPipelineFailed, err: result.Err, reported: true}
	}
	return nil
}

// initialConfiguration layers defaults, the answers file and explicitly
// set flags or environment variables, in that order.
func initialConfiguration(v *viper.Viper) (api.Configuration, error) {
	cfg := api.DefaultConfiguration()

	if answers := v.GetString(flagAnswers); answers != "" {
		loaded, err := api.LoadAnswers(answers)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if v.IsSet(flagStylesDirectory) {
		cfg.StylesDirectory = v.GetString(flagStylesDirectory)
	}
	if v.IsSet(flagPostCSS) {
		cfg.InstallPostCSSConfig = v.GetBool(flagPostCSS)
	}
	if v.IsSet(flagStylelint) {
		cfg.InstallStylelint = v.GetBool(flagStylelint)
	}

	return cfg, nil
}

func checkProjectDirectory(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %s: %w", dir, err)
	}

	st, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to check project directory: %w", err)
	}
	if !st.IsDir() {
		return "", fmt.Errorf("project directory %s is not a directory", abs)
	}
	return abs, nil
}
