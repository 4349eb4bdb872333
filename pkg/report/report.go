// Package report renders the outcome of a scaffolding run for the terminal.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/charmbracelet/lipgloss"
	"github.com/systemstart/stylekit/pkg/api"
	"github.com/systemstart/stylekit/pkg/processing"
)

const successTemplate = `You can now edit your variables in the json files under {{ printf "%s/tokens" .StylesDirectory | quote }}!

You can then run {{ printf "npm run %s" .Script | quote | bold }} or {{ printf "yarn %s" .Script | quote | bold }} to regenerate your variables.css.

Don't forget to add {{ .StylesDirectory }}/main.css as a global stylesheet.`

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2ECC71")).
			MarginBottom(1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2ECC71")).
			Padding(1).
			Margin(1, 2)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
	boldStyle = lipgloss.NewStyle().Bold(true)
)

// Render writes the success box when result completed. Otherwise it
// writes the captured error followed by every task's final status, so the
// tasks that never ran are visible.
func Render(w io.Writer, cfg api.Configuration, result *processing.Result) error {
	if result.Aborted() {
		_, err := fmt.Fprintf(w, "\n%s\n\n%s", errorStyle.Render(result.Err.Error()), Summary(result))
		return err
	}

	msg, err := SuccessMessage(cfg)
	if err != nil {
		return err
	}

	box := boxStyle.Render(titleStyle.Render("Success!") + "\n" + msg)
	_, err = fmt.Fprintln(w, box)
	return err
}

// SuccessMessage returns the unboxed success text.
func SuccessMessage(cfg api.Configuration) (string, error) {
	funcs := sprig.TxtFuncMap()
	funcs["bold"] = func(s string) string { return boldStyle.Render(s) }

	tmpl, err := template.New("success").Funcs(funcs).Parse(successTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	data := map[string]any{
		"StylesDirectory": cfg.StylesDirectory,
		"Script":          api.GenerateScriptName,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

var statusMarks = map[processing.Status]string{
	processing.StatusPending:   " ",
	processing.StatusSkipped:   "↓",
	processing.StatusSucceeded: "✔",
	processing.StatusFailed:    "✖",
}

// Line formats one task with its status mark.
func Line(t processing.TaskState) string {
	line := statusMarks[t.Status] + " " + t.Title
	switch t.Status {
	case processing.StatusSkipped:
		if t.SkipReason != "" {
			line += " [skipped: " + t.SkipReason + "]"
		}
	case processing.StatusPending:
		line += " [not run]"
	}
	return line
}

// Summary lists every task with its final status, one per line.
func Summary(result *processing.Result) string {
	var b strings.Builder
	for _, t := range result.Tasks {
		b.WriteString(Line(t))
		b.WriteByte('\n')
	}
	return b.String()
}
