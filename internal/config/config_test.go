package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir for toolchains older than go1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Error(err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eclabconvert.yaml")
	content := "logging:\n  level: debug\n  format: text\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("ECLAB_CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eclabconvert.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))
	t.Setenv("ECLAB_CONFIG_FILE", path)
	t.Setenv("ECLAB_LOGGING_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
	}{
		{name: "bad level", env: map[string]string{"ECLAB_LOGGING_LEVEL": "verbose"}},
		{name: "bad format", env: map[string]string{"ECLAB_LOGGING_FORMAT": "xml"}},
		{name: "bad output", env: map[string]string{"ECLAB_LOGGING_OUTPUT": "syslog"}},
		{name: "file output without path", env: map[string]string{
			"ECLAB_LOGGING_OUTPUT":    "file",
			"ECLAB_LOGGING_FILE_PATH": "",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
