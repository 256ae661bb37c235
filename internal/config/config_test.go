package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, "Sheet1", cfg.SheetName)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.Equal(t, "auto", cfg.Theme.Mode)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFrom_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
output_dir = "/tmp/fixtures"
sheet_name = "Data"

[theme]
name = "nord"
mode = "dark"
`)

	cfg, err := LoadFrom(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fixtures", cfg.OutputDir)
	assert.Equal(t, "Data", cfg.SheetName)
	assert.Equal(t, ThemeConfig{Name: "nord", Mode: "dark"}, cfg.Theme)
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `sheet_name = "Data"`)

	cfg, err := LoadFrom(path, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, "Data", cfg.SheetName)
	assert.Equal(t, "auto", cfg.Theme.Mode)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `output_dir = "from-file"`)
	environ := map[string]string{
		"DOCBATCH_OUTPUT_DIR": "from-env",
		"DOCBATCH_SHEET_NAME": "EnvSheet",
		"DOCBATCH_THEME":      "dracula",
		"OUTPUT_DIR":          "unprefixed-is-ignored",
	}

	cfg, err := LoadFrom(path, environ)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OutputDir)
	assert.Equal(t, "EnvSheet", cfg.SheetName)
	assert.Equal(t, "dracula", cfg.Theme.Name)
}

func TestLoadFrom_ExpandsHome(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	path := writeConfig(t, `output_dir = "~/fixtures"`)
	cfg, err := LoadFrom(path, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "fixtures"), cfg.OutputDir)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad toml", `output_dir = `, "failed to parse config file"},
		{"bad theme", "[theme]\nname = \"solarized\"", "invalid theme.name"},
		{"bad mode", "[theme]\nmode = \"dim\"", "invalid theme.mode"},
		{"sheet name too long", `sheet_name = "abcdefghijklmnopqrstuvwxyz0123456"`, "1 to 31 characters"},
		{"sheet name illegal char", `sheet_name = "a/b"`, "must not contain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := LoadFrom(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Equal(t, Default(), cfg, "invalid config falls back to defaults")
		})
	}
}

func TestValidateSheetName(t *testing.T) {
	t.Parallel()

	valid := []string{"Sheet1", "Data 2024", "ä", "abcdefghijklmnopqrstuvwxyz01234"}
	for _, name := range valid {
		assert.NoError(t, ValidateSheetName(name), name)
	}

	invalid := []string{"", "a:b", "a[1]", "'quoted'", "abcdefghijklmnopqrstuvwxyz012345"}
	for _, name := range invalid {
		assert.Error(t, ValidateSheetName(name), name)
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"a"`, formatOptions([]string{"a"}))
	assert.Equal(t, `"a" or "b"`, formatOptions([]string{"a", "b"}))
	assert.Equal(t, `"a", "b", or "c"`, formatOptions([]string{"a", "b", "c"}))
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docbatch", "config.toml")

	require.NoError(t, Init(path, false))

	err := Init(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, Init(path, true))

	cfg, err := LoadFrom(path, nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultConfigFile_Parses(t *testing.T) {
	t.Parallel()

	var cfg Config
	_, err := toml.Decode(DefaultConfigFile, &cfg)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))
	assert.Contains(t, buf.String(), `output_dir = "Created-Files"`)
	assert.Contains(t, buf.String(), "[theme]")
}

func TestPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "docbatch", "config.toml"), path)
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.OutputDir = "elsewhere"
	ctx := WithConfig(context.Background(), &cfg)
	assert.Same(t, &cfg, FromContext(ctx))

	assert.Equal(t, DefaultOutputDir, FromContext(context.Background()).OutputDir)
}
