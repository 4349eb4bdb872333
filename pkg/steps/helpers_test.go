package steps

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// writeTestFile writes content to a file in dir, failing the test on error.
func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

type call struct {
	tool string
	args []string
	dir  string
}

// fakeRunner records commands. When tool is "npm" and args start with
// "init" it writes a minimal package.json, like the real command would.
type fakeRunner struct {
	calls []call
	fail  map[string]error
}

func (f *fakeRunner) Run(tool string, args []string, dir string) error {
	f.calls = append(f.calls, call{tool: tool, args: slices.Clone(args), dir: dir})
	if len(args) > 0 {
		if err, ok := f.fail[args[0]]; ok {
			return err
		}
	}
	if tool == "npm" && len(args) > 0 && args[0] == "init" {
		return os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name": "app", "scripts": {}}`), 0o600)
	}
	return nil
}
