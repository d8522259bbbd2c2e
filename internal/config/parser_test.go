package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
logging:
  level: debug
webview:
  sanitize: true
  signature:
    selector: "#consent"
    css_class: signed-block
`

	invalidYAML := `version: "1.0"
logging:
  level: [debug]
`

	badVersion := `version: "beta"
`

	badClass := `version: "1.0"
webview:
  signature:
    css_class: "1bad class"
`

	blankSelector := `version: "1.0"
webview:
  signature:
    selector: "   "
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "file values override defaults",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Logging.Level)
				require.True(t, cfg.Logging.HumanReadable)
				require.True(t, cfg.WebView.Sanitize)
				require.Equal(t, "#consent", cfg.WebView.Signature.Selector)
				require.Equal(t, "signed-block", cfg.WebView.Signature.CSSClass)
				require.Equal(t, "Signature", cfg.WebView.Signature.ImageAlt)
				require.Equal(t, "2006-01-02", cfg.WebView.Signature.DateFormat)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *stepkiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "schema version must follow major.minor",
			contents: badVersion,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *stepkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.version", validationErr.Field)
			},
		},
		{
			name:     "css class is checked",
			contents: badClass,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *stepkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.webview.signature.cssclass", validationErr.Field)
				require.Contains(t, validationErr.Message, "css_class")
			},
		},
		{
			name:     "blank selector is rejected",
			contents: blankSelector,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *stepkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.webview.signature.selector", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := Load(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, ValidateConfig(cfg))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(path)

	var parseErr *stepkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, path, parseErr.Path)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "stepkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
