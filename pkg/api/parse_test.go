package api

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(f, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLoadAnswers(t *testing.T) {
	f := writeAnswers(t, `
stylesDirectory: src/css
postcss: false
stylelint: true
`)

	cfg, err := LoadAnswers(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Configuration{StylesDirectory: "src/css", InstallPostCSSConfig: false, InstallStylelint: true}
	if cfg != want {
		t.Errorf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadAnswers_PartialKeepsDefaults(t *testing.T) {
	f := writeAnswers(t, "stylelint: false\n")

	cfg, err := LoadAnswers(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.StylesDirectory != DefaultStylesDirectory {
		t.Errorf("expected default styles directory, got %q", cfg.StylesDirectory)
	}
	if !cfg.InstallPostCSSConfig {
		t.Error("expected postcss default to be kept")
	}
	if cfg.InstallStylelint {
		t.Error("expected stylelint to be disabled")
	}
}

func TestLoadAnswers_Empty(t *testing.T) {
	f := writeAnswers(t, "")

	cfg, err := LoadAnswers(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfiguration() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadAnswers_EmptyStylesDirectory(t *testing.T) {
	f := writeAnswers(t, "stylesDirectory: \"\"\n")

	_, err := LoadAnswers(f)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "stylesDirectory is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadAnswers_InvalidYAML(t *testing.T) {
	f := writeAnswers(t, "stylelint: [unterminated\n")

	if _, err := LoadAnswers(f); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadAnswers_NotFound(t *testing.T) {
	if _, err := LoadAnswers("/nonexistent/answers.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
