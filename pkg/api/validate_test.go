package api

import "testing"

func TestConfiguration_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{"default", DefaultStylesDirectory, false},
		{"absolute", "/tmp/styles", false},
		{"does not need to exist", "no/such/dir", false},
		{"empty", "", true},
		{"blank", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Configuration{StylesDirectory: tt.dir}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()
	if cfg.StylesDirectory != "assets/styles" {
		t.Errorf("unexpected styles directory %q", cfg.StylesDirectory)
	}
	if !cfg.InstallPostCSSConfig || !cfg.InstallStylelint {
		t.Errorf("expected both toggles enabled by default, got %+v", cfg)
	}
}
