package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_NoFile_ReturnsDefaults(t *testing.T) {
	// When
	cfg, err := LoadConfig(NewViper(), "")

	// Then
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *cfg)
}

func TestLoadConfig_ValidYAML_OverridesDefaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "report.yaml")
	content := `input: "data/analytics.json"
output: "out/report.docx"
charts_dir: "out"
seed: 42
chart_dpi: 150`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	cfg, err := LoadConfig(NewViper(), path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "data/analytics.json", cfg.InputPath)
	assert.Equal(t, "out/report.docx", cfg.OutputPath)
	assert.Equal(t, "out", cfg.ChartsDir)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 150, cfg.ChartDPI)
	assert.Equal(t, 5.0, cfg.PictureWidth)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("REPORT_OUTPUT", "env.docx")

	cfg, err := LoadConfig(NewViper(), "")

	require.NoError(t, err)
	assert.Equal(t, "env.docx", cfg.OutputPath)
}

func TestLoadConfig_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: a: b: c"), 0o644))

	// When
	_, err := LoadConfig(NewViper(), path)

	// Then
	assert.Error(t, err)
}

func TestLoadConfig_NonPositiveDPI_ReturnsError(t *testing.T) {
	v := NewViper()
	v.Set("chart_dpi", 0)

	_, err := LoadConfig(v, "")

	assert.Error(t, err)
}

func TestLoadEnvFile_MissingFile_IsIgnored(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadEnvFile_SetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REPORT_TEST_ENV_FILE=loaded\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("REPORT_TEST_ENV_FILE") })

	require.NoError(t, LoadEnvFile(path))

	assert.Equal(t, "loaded", os.Getenv("REPORT_TEST_ENV_FILE"))
}
