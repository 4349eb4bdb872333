package capability

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"
)

const templatesDir = "templates"

// Substitutions maps a literal placeholder token to its replacement.
type Substitutions map[string]string

// Apply replaces every occurrence of every token in text. Tokens are plain
// strings; nothing is evaluated.
func (s Substitutions) Apply(text string) string {
	if len(s) == 0 {
		return text
	}

	tokens := make([]string, 0, len(s))
	for token := range s {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	// Longer tokens first so a token that prefixes another never wins.
	slices.SortFunc(tokens, func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	if len(tokens) == 0 {
		return text
	}

	pairs := make([]string, 0, 2*len(tokens))
	for _, token := range tokens {
		pairs = append(pairs, token, s[token])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// MaterializeTemplate writes templates/<templateName> from assets to
// destination with subs applied. It never overwrites: an existing
// destination fails with KindAlreadyExists.
func MaterializeTemplate(assets fs.FS, templateName, destination string, subs Substitutions) error {
	exists, err := FileExists(destination)
	if err != nil {
		return NewError(KindIO, fmt.Sprintf("checking %s", destination), err)
	}
	if exists {
		return NewError(KindAlreadyExists, fmt.Sprintf("%s already exists", destination), nil)
	}

	content, err := fs.ReadFile(assets, path.Join(templatesDir, templateName))
	if err != nil {
		return NewError(KindIO, fmt.Sprintf("reading template %s", templateName), err)
	}

	out := subs.Apply(string(content))

	f, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return NewError(KindAlreadyExists, fmt.Sprintf("%s already exists", destination), nil)
		}
		return NewError(KindIO, fmt.Sprintf("creating %s", destination), err)
	}

	_, writeErr := f.WriteString(out)

	if closeErr := f.Close(); closeErr != nil {
		if writeErr != nil {
			return NewError(KindIO, fmt.Sprintf("writing %s", destination), writeErr)
		}
		return NewError(KindIO, fmt.Sprintf("closing %s", destination), closeErr)
	}
	if writeErr != nil {
		return NewError(KindIO, fmt.Sprintf("writing %s", destination), writeErr)
	}

	slog.Debug("template materialized", "template", templateName, "destination", destination)
	return nil
}

// FileExists reports whether p exists. Errors other than "not found" are
// returned.
func FileExists(p string) (bool, error) {
	_, err := os.Stat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
