package capability

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not in PATH")
	}
}

func TestExecRunner_Success(t *testing.T) {
	skipWithoutShell(t)

	dir := t.TempDir()
	if err := (ExecRunner{}).Run("sh", []string{"-c", "echo ok > out.txt"}, dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := readTestFile(t, dir+"/out.txt"); got != "ok\n" {
		t.Errorf("command did not run in dir, got %q", got)
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	skipWithoutShell(t)

	err := (ExecRunner{}).Run("sh", []string{"-c", "echo boom >&2; exit 3"}, t.TempDir())
	if !errors.Is(err, ErrExternalCommand) {
		t.Fatalf("expected ErrExternalCommand, got %v", err)
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected underlying *exec.ExitError, got %T", errors.Unwrap(err))
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("expected exit code 3, got %d", exitErr.ExitCode())
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	err := (ExecRunner{}).Run("stylekit-no-such-tool", nil, t.TempDir())
	if !errors.Is(err, ErrExternalCommand) {
		t.Fatalf("expected KindExternalCommand, got %v", err)
	}
}

func TestSelectInstaller(t *testing.T) {
	t.Run("npm without yarn.lock", func(t *testing.T) {
		tool, verb, err := SelectInstaller(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tool != "npm" || verb != "install" {
			t.Errorf("expected npm install, got %s %s", tool, verb)
		}
	})

	t.Run("yarn with yarn.lock", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "yarn.lock", "")

		tool, verb, err := SelectInstaller(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tool != "yarn" || verb != "add" {
			t.Errorf("expected yarn add, got %s %s", tool, verb)
		}
	})
}

func TestInstallArgs(t *testing.T) {
	tests := []struct {
		name      string
		verb      string
		stylelint bool
		want      []string
	}{
		{
			"without stylelint", "install", false,
			[]string{"install", "style-dictionary", "postcss-import", "postcss-preset-env", "-D"},
		},
		{
			"with stylelint", "add", true,
			[]string{"add", "style-dictionary", "postcss-import", "postcss-preset-env", "stylelint", "stylelint-config-standard", "-D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InstallArgs(tt.verb, tt.stylelint); !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestInstallArgs_DoesNotShareBackingArray(t *testing.T) {
	a := InstallArgs("install", false)
	_ = InstallArgs("add", true)
	if a[0] != "install" || a[len(a)-1] != "-D" {
		t.Errorf("earlier result was modified: %v", a)
	}
}
