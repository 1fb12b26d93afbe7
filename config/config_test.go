package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/speclint/engine"
	"github.com/c360studio/speclint/language"
	"github.com/c360studio/speclint/parser"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "ja", cfg.Language)
	assert.False(t, cfg.DevMode)
	assert.Empty(t, cfg.Styles)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid custom style",
			mutate: func(c *Config) { c.Styles = []Style{validStyle()} },
		},
		{
			name:    "bad language",
			mutate:  func(c *Config) { c.Language = "fr" },
			wantErr: "language must be",
		},
		{
			name: "missing style name",
			mutate: func(c *Config) {
				s := validStyle()
				s.Name = ""
				c.Styles = []Style{s}
			},
			wantErr: "style name is required",
		},
		{
			name: "duplicate style name",
			mutate: func(c *Config) {
				c.Styles = []Style{validStyle(), validStyle()}
			},
			wantErr: "duplicate style name",
		},
		{
			name: "unknown section",
			mutate: func(c *Config) {
				s := validStyle()
				s.Sections = []string{"wishlist"}
				c.Styles = []Style{s}
			},
			wantErr: "unknown section type: wishlist",
		},
		{
			name: "unknown rule",
			mutate: func(c *Config) {
				s := validStyle()
				s.Rules = []string{"psychic-validation"}
				c.Styles = []Style{s}
			},
			wantErr: "unknown rule: psychic-validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func validStyle() Style {
	return Style{
		Name:        "traceability-only",
		Description: "Cross-reference checks without structure rules",
		Sections:    []string{"overview", "functional_requirements"},
		Rules:       []string{"requirement-id-format", "duplicate-requirement-id"},
	}
}

func TestConfig_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigFile)

	cfg := DefaultConfig()
	cfg.Language = "en"
	cfg.DevMode = true
	cfg.Styles = []Style{validStyle()}
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "en", loaded.Language)
	assert.True(t, loaded.DevMode)
	require.Len(t, loaded.Styles, 1)
	assert.Equal(t, "traceability-only", loaded.Styles[0].Name)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestConfig_Merge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{Language: "en", DevMode: true})

	assert.Equal(t, "en", base.Language)
	assert.True(t, base.DevMode)

	base.Merge(&Config{})
	assert.Equal(t, "en", base.Language)

	base.Merge(nil)
	assert.Equal(t, "en", base.Language)
}

func TestBuildStyle(t *testing.T) {
	style, err := BuildStyle(validStyle())

	require.NoError(t, err)
	assert.Equal(t, "traceability-only", style.Name)
	assert.Len(t, style.RequiredSections, 2)
	require.Len(t, style.Rules, 2)
	assert.Equal(t, "FORMAT-REQ-001", style.Rules[0].ID())
}

func TestBuildStyle_UnknownRule(t *testing.T) {
	s := validStyle()
	s.Rules = append(s.Rules, "psychic-validation")

	_, err := BuildStyle(s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule")
}

func TestRegisterStyles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Styles = []Style{validStyle()}

	e := engine.New(language.English)
	require.NoError(t, RegisterStyles(e, cfg))

	doc := parser.New(language.English).Parse("## Functional Requirements\n\n- REQ-01: Works\n")
	results, err := e.ValidateWithStyle(doc, "traceability-only")

	require.NoError(t, err)
	assert.Len(t, results, 2)
}
