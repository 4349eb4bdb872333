package capability

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/systemstart/stylekit/pkg/api"
)

// Runner executes an external command in dir. Only the exit status is
// significant.
type Runner interface {
	Run(tool string, args []string, dir string) error
}

// ExecRunner runs commands with os/exec. There is no timeout.
type ExecRunner struct{}

func (ExecRunner) Run(tool string, args []string, dir string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return NewError(KindExternalCommand, fmt.Sprintf("%s binary not found in PATH", tool), err)
	}

	slog.Info("running external command", "tool", tool, "args", args, "dir", dir)

	cmd := exec.Command(tool, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := fmt.Sprintf("%s %s failed", tool, strings.Join(args, " "))
		if s := strings.TrimSpace(stderr.String()); s != "" {
			msg += "\nstderr: " + s
		}
		return NewError(KindExternalCommand, msg, err)
	}

	slog.Debug("external command finished", "tool", tool, "stdout", stdout.Len())

	return nil
}

var (
	basePackages      = []string{"style-dictionary", "postcss-import", "postcss-preset-env"}
	stylelintPackages = []string{"stylelint", "stylelint-config-standard"}
)

// SelectInstaller picks yarn when the project has a yarn.lock and npm
// otherwise, together with the verb that adds a dependency.
func SelectInstaller(projectDir string) (tool, verb string, err error) {
	exists, err := FileExists(filepath.Join(projectDir, api.YarnLockFilename))
	if err != nil {
		return "", "", NewError(KindIO, "checking for "+api.YarnLockFilename, err)
	}
	if exists {
		return "yarn", "add", nil
	}
	return "npm", "install", nil
}

// InstallArgs builds the dev-dependency install arguments for verb.
func InstallArgs(verb string, stylelint bool) []string {
	args := append([]string{verb}, basePackages...)
	if stylelint {
		args = append(args, stylelintPackages...)
	}
	return append(args, "-D")
}
