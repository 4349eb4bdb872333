// Package assets bundles the config templates and the style tree copied
// into target projects.
package assets

import "embed"

const (
	TemplatesDir = "templates"
	StylesDir    = "styles"
)

//go:embed all:templates styles
var FS embed.FS
