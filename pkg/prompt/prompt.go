// Package prompt asks the scaffolding questions on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/systemstart/stylekit/pkg/api"
)

const (
	questionStylesDirectory = "Where is your styles directory located?"
	questionPostCSS         = "Do you want to install the default PostCSS config?"
	questionStylelint       = "Do you want to install stylelint and its standard config?"
)

// Resolve asks the three questions on w and reads the answers from r.
// An empty answer keeps the value from defaults. It never touches the
// filesystem.
func Resolve(r io.Reader, w io.Writer, defaults api.Configuration) (api.Configuration, error) {
	reader := bufio.NewReader(r)
	cfg := defaults

	dir, err := askText(reader, w, questionStylesDirectory, defaults.StylesDirectory)
	if err != nil {
		return cfg, err
	}
	cfg.StylesDirectory = dir

	if cfg.InstallPostCSSConfig, err = askToggle(reader, w, questionPostCSS, defaults.InstallPostCSSConfig); err != nil {
		return cfg, err
	}

	if cfg.InstallStylelint, err = askToggle(reader, w, questionStylelint, defaults.InstallStylelint); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func askText(reader *bufio.Reader, w io.Writer, question, initial string) (string, error) {
	fmt.Fprintf(w, "? %s (%s) ", question, initial)
	answer, err := readLine(reader)
	if err != nil {
		return "", fmt.Errorf("reading answer to %q: %w", question, err)
	}
	if answer == "" {
		return initial, nil
	}
	return answer, nil
}

func askToggle(reader *bufio.Reader, w io.Writer, question string, initial bool) (bool, error) {
	hint := "y/N"
	if initial {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(w, "? %s (%s) ", question, hint)
		answer, err := readLine(reader)
		if err != nil {
			return false, fmt.Errorf("reading answer to %q: %w", question, err)
		}

		switch strings.ToLower(answer) {
		case "":
			return initial, nil
		case "y", "yes", "true":
			return true, nil
		case "n", "no", "false":
			return false, nil
		}
		fmt.Fprintln(w, "Please answer yes or no.")
	}
}

// readLine returns the trimmed line. A last line without newline is
// accepted; EOF before any input is an error.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
