package steps

import (
	"github.com/systemstart/stylekit/pkg/api"
)

const (
	TitleCopyStyles          = "Copying styles directory"
	TitleCreateManifest      = "Creating package.json"
	TitleInstallPackages     = "Installing required packages"
	TitleCopyPostCSS         = "Copying PostCSS config"
	TitleCopyStyleDictionary = "Copying style-dictionary config"
	TitleCopyStylelint       = "Copying Stylelint config"
	TitleEditManifest        = "Adding script and browserslist to package.json"
)

// NewSteps returns the scaffolding steps in the order they must run.
// Optional steps are always included; cfg only decides whether they skip.
func NewSteps(cfg api.Configuration) []Step {
	subs := stylesSubstitutions(cfg)

	return []Step{
		NewCopyStylesStep(TitleCopyStyles, cfg.StylesDirectory),
		NewCreateManifestStep(TitleCreateManifest),
		NewInstallStep(TitleInstallPackages, cfg.InstallStylelint),
		NewConfigFileStep(TitleCopyPostCSS, ConfigFile{
			Template:    api.PostCSSTemplate,
			Destination: api.PostCSSConfig,
			Label:       "postcss config",
			Subs:        subs,
			Enabled:     cfg.InstallPostCSSConfig,
			SkipReason:  "PostCSS config not needed.",
		}),
		NewConfigFileStep(TitleCopyStyleDictionary, ConfigFile{
			Template:    api.StyleDictionaryTemplate,
			Destination: api.StyleDictionaryConfig,
			Label:       "style-dictionary config",
			Subs:        subs,
			Enabled:     true,
		}),
		NewConfigFileStep(TitleCopyStylelint, ConfigFile{
			Template:    api.StylelintTemplate,
			Destination: api.StylelintConfig,
			Label:       "stylelint config",
			Enabled:     cfg.InstallStylelint,
			SkipReason:  "Stylelint not needed.",
		}),
		NewEditManifestStep(TitleEditManifest, cfg.InstallStylelint),
	}
}
