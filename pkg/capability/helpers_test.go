package capability

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
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

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"templates/config.template.json": {Data: []byte(`{"src": "%dir%/tokens", "out": "%dir%/"}`)},
		"templates/plain.template.json":  {Data: []byte(`{"extends": "standard"}`)},
		"styles/main.css":                {Data: []byte("@import './variables.css';\n")},
		"styles/tokens/color.json":       {Data: []byte(`{"color": {}}`)},
		"styles/tokens/nested/size.json": {Data: []byte(`{"size": {}}`)},
	}
}
