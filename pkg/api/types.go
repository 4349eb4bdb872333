package api

const (
	DefaultStylesDirectory = "assets/styles"

	ManifestFilename = "package.json"
	YarnLockFilename = "yarn.lock"

	PostCSSTemplate         = "postcss.config.template.js"
	PostCSSConfig           = "postcss.config.js"
	StyleDictionaryTemplate = "style-dictionary.config.template.json"
	StyleDictionaryConfig   = "style-dictionary.config.json"
	StylelintTemplate       = ".stylelintrc.template.json"
	StylelintConfig         = ".stylelintrc.json"

	StylesDirectoryToken = "%stylesDirectory%"

	GenerateScriptName = "css:generate"
	LintScriptName     = "css:lint"
)

// Configuration is the resolved set of answers every pipeline step reads.
// It is passed by value and never modified after resolution.
type Configuration struct {
	StylesDirectory      string `yaml:"stylesDirectory"`
	InstallPostCSSConfig bool   `yaml:"postcss"`
	InstallStylelint     bool   `yaml:"stylelint"`
}

// DefaultConfiguration returns the answers used when the user accepts
// every default.
func DefaultConfiguration() Configuration {
	return Configuration{
		StylesDirectory:      DefaultStylesDirectory,
		InstallPostCSSConfig: true,
		InstallStylelint:     true,
	}
}
