// Package manifest creates and edits the project's package.json.
//
// Edits are written with JSON path updates on the raw document so keys
// the editor does not touch keep their value and their position. The
// result is then re-indented with two spaces, which re-lays out the whole
// file: short arrays are joined onto one line. Values are written without
// HTML escaping, as npm writes them. There is no locking and no check that
// the file is unchanged between the read and the write; concurrent edits
// by another process are not detected.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/systemstart/stylekit/pkg/api"
	"github.com/systemstart/stylekit/pkg/capability"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	BaseGenerateScript = "style-dictionary build --config ./" + api.StyleDictionaryConfig
	LintSuffix         = " && npm run " + api.LintScriptName
	LintScript         = "stylelint --fix ./**/*.css"

	browserslistKey = "browserslist"
	scriptsKey      = "scripts"
)

// DefaultBrowserslist is added when the manifest declares no browser
// support target.
var DefaultBrowserslist = []string{"> 3%", "last 2 versions", "not IE 11"}

var prettyOptions = &pretty.Options{Width: 80, Indent: "  "}

// Options selects the optional parts of the edit.
type Options struct {
	Stylelint bool
}

// Path returns the manifest location inside projectDir.
func Path(projectDir string) string {
	return filepath.Join(projectDir, api.ManifestFilename)
}

// Exists checks for the manifest on every call.
func Exists(projectDir string) (bool, error) {
	return capability.FileExists(Path(projectDir))
}

// Initialize creates a default manifest with `npm init -y`.
func Initialize(runner capability.Runner, projectDir string) error {
	if err := runner.Run("npm", []string{"init", "-y"}, projectDir); err != nil {
		return fmt.Errorf("initializing %s: %w", api.ManifestFilename, err)
	}
	slog.Info("manifest created", "path", Path(projectDir))
	return nil
}

// GenerateScript returns the css:generate command line.
func GenerateScript(stylelint bool) string {
	if stylelint {
		return BaseGenerateScript + LintSuffix
	}
	return BaseGenerateScript
}

// Edit adds the style scripts and, if absent, the browserslist to the
// manifest in projectDir. A failed write may leave the file partially
// written.
func Edit(projectDir string, opts Options) error {
	p := Path(projectDir)

	info, err := os.Stat(p)
	if err != nil {
		return editError(err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return editError(err)
	}

	out, err := Apply(data, opts)
	if err != nil {
		return editError(err)
	}

	if err := os.WriteFile(p, out, info.Mode().Perm()); err != nil {
		return editError(err)
	}

	slog.Info("manifest edited", "path", p, "stylelint", opts.Stylelint)
	return nil
}

// Apply returns data with the edit applied. It does not touch the
// filesystem.
func Apply(data []byte, opts Options) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing %s: invalid JSON", api.ManifestFilename)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("parsing %s: top level value is not an object", api.ManifestFilename)
	}
	if scripts := root.Get(scriptsKey); scripts.Exists() && !scripts.IsObject() {
		return nil, fmt.Errorf("parsing %s: %q is not an object", api.ManifestFilename, scriptsKey)
	}

	out := data
	var err error

	if opts.Stylelint {
		out, err = setValue(out, scriptPath(api.LintScriptName), LintScript)
		if err != nil {
			return nil, fmt.Errorf("setting %s script: %w", api.LintScriptName, err)
		}
	}

	out, err = setValue(out, scriptPath(api.GenerateScriptName), GenerateScript(opts.Stylelint))
	if err != nil {
		return nil, fmt.Errorf("setting %s script: %w", api.GenerateScriptName, err)
	}

	if !root.Get(browserslistKey).Exists() {
		out, err = setValue(out, browserslistKey, DefaultBrowserslist)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", browserslistKey, err)
		}
	}

	return pretty.PrettyOptions(out, prettyOptions), nil
}

// setValue encodes v without HTML escaping so "> 3%" and "&&" reach the
// file unchanged.
func setValue(data []byte, path string, v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", path, err)
	}
	return sjson.SetRawBytes(data, path, bytes.TrimRight(buf.Bytes(), "\n"))
}

func scriptPath(name string) string {
	return scriptsKey + "." + escapePath(name)
}

// escapePath escapes every character the JSON path syntax could treat
// specially.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func editError(err error) error {
	return capability.NewError(capability.KindManifestEdit, "an error occurred while editing "+api.ManifestFilename, err)
}
