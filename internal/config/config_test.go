package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/turing/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
log_level: debug
program: busy-beaver-3
max_steps: "500"
color: false
port: 9090
trace: steps.jsonl
`)
	cfg, err := config.Parse(data, config.Default())
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		LogLevel: "debug",
		Program:  "busy-beaver-3",
		MaxSteps: 500,
		Color:    false,
		Banner:   true,
		Port:     9090,
		Trace:    "steps.jsonl",
	}, cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Bad YAML", "log_level: [unclosed"},
		{"Unknown Key", "speed: 3"},
		{"Bad Level", "log_level: loud"},
		{"Negative Steps", "max_steps: -1"},
		{"Port Range", "port: 70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.data), config.Default())
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Equal(t, config.Default(), cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing Optional", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(dir, "absent.yaml"), true)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("Missing Required", func(t *testing.T) {
		_, err := config.Load(filepath.Join(dir, "absent.yaml"), false)
		assert.Error(t, err)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(dir, config.DefaultPath)
		require.NoError(t, os.WriteFile(path, []byte("program: increment\n"), 0o644))

		cfg, err := config.Load(path, false)
		require.NoError(t, err)
		assert.Equal(t, "increment", cfg.Program)
		assert.Equal(t, config.Default().MaxSteps, cfg.MaxSteps)
	})
}
