package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/systemstart/stylekit/pkg/capability"
	"github.com/systemstart/stylekit/pkg/logging"
)

const envPrefix = "STYLEKIT"

const (
	flagLoggingType = "logging-type"
	flagLogLevel    = "log-level"
)

func newRootCommand(runner capability.Runner) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "stylekit",
		Short:         "Set up a design-token styling toolchain in a project",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := includeEnv(); err != nil {
				return withCode(exitDotenvError, err)
			}
			if err := logging.Initialize(cmd.ErrOrStderr(), v.GetString(flagLoggingType), v.GetString(flagLogLevel)); err != nil {
				return withCode(exitLoggingError, err)
			}
			return nil
		},
	}

	root.PersistentFlags().String(flagLoggingType, logging.Tint, "logging type: json, text or tint")
	root.PersistentFlags().String(flagLogLevel, "warn", "logging level: debug, info, warn, error")

	bindFlags(v, root)
	root.AddCommand(newInitCommand(v, runner))

	return root
}

// bindFlags makes every flag of cmd settable as STYLEKIT_<FLAG_NAME>.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.PersistentFlags())
	_ = v.BindPFlags(cmd.Flags())
}

// includeEnv loads .env from the working directory into the process
// environment, where viper picks it up.
func includeEnv() error {
	err := godotenv.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	slog.Debug("using .env file")
	return nil
}
