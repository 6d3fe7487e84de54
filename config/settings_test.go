package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-rhyme-engine/model"
)

func TestRhymerSettings_ApplyDefaults(t *testing.T) {
	settings := RhymerSettings{CacheSize: -5}
	settings.ApplyDefaults()

	assert.Equal(t, model.DefaultStrictness(), settings.Strictness)
	assert.Equal(t, DefaultMaxAttempts, settings.MaxAttempts)
	assert.Len(t, settings.StressPhonemes, 12)
	assert.Equal(t, 0, settings.CacheSize)
	assert.Empty(t, settings.Validate())
}

func TestRhymerSettings_ApplyDefaultsKeepsValues(t *testing.T) {
	custom := []model.Strictness{{MinMatches: model.Pair{Left: 2, Right: 2}}}
	settings := RhymerSettings{
		Strictness:     custom,
		MaxAttempts:    3,
		StressPhonemes: []string{"a"},
		CacheSize:      100,
	}
	settings.ApplyDefaults()

	assert.Equal(t, custom, settings.Strictness)
	assert.Equal(t, 3, settings.MaxAttempts)
	assert.Equal(t, []string{"a"}, settings.StressPhonemes)
	assert.Equal(t, 100, settings.CacheSize)
}

func TestRhymerSettings_Validate(t *testing.T) {
	tests := []struct {
		name           string
		settings       RhymerSettings
		expectedErrors int
	}{
		{
			name:           "defaults are valid",
			settings:       DefaultRhymerSettings(),
			expectedErrors: 0,
		},
		{
			name: "empty strictness list",
			settings: RhymerSettings{
				MaxAttempts:    1,
				StressPhonemes: []string{"a"},
			},
			expectedErrors: 1,
		},
		{
			name: "zero matches and negative skips",
			settings: RhymerSettings{
				Strictness: []model.Strictness{
					{MinMatches: model.Pair{Left: 0, Right: 2}, MaxSkips: model.Pair{Left: -1, Right: 0}},
				},
				MaxAttempts:    1,
				StressPhonemes: []string{"a"},
			},
			expectedErrors: 2,
		},
		{
			name: "duplicate and blank stress phonemes",
			settings: RhymerSettings{
				Strictness:     model.DefaultStrictness(),
				MaxAttempts:    1,
				StressPhonemes: []string{"a", "a", " "},
			},
			expectedErrors: 2,
		},
		{
			name: "zero attempts",
			settings: RhymerSettings{
				Strictness:     model.DefaultStrictness(),
				StressPhonemes: []string{"a"},
			},
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.settings.Validate()
			assert.Len(t, problems, tt.expectedErrors, "problems: %v", problems)
		})
	}
}

func TestLoadApp_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
data:
  dir: ` + dir + `
log:
  level: debug
  format: json
rhymer:
  max_attempts: 5
  cache_size: 64
  strictness:
    - min_matches: {left: 3, right: 3}
      max_skips: {left: 0, right: 0}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadApp(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, dir, cfg.Data.Dir)
	assert.Equal(t, "rhymer.gob", cfg.Data.IndexFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Rhymer.MaxAttempts)
	assert.Equal(t, 64, cfg.Rhymer.CacheSize)
	require.Len(t, cfg.Rhymer.Strictness, 1)
	assert.Equal(t, model.Pair{Left: 3, Right: 3}, cfg.Rhymer.Strictness[0].MinMatches)
	assert.Len(t, cfg.Rhymer.StressPhonemes, 12)
}

func TestLoadApp_MissingExplicitFile(t *testing.T) {
	_, err := LoadApp(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAppConfig_Validate(t *testing.T) {
	cfg := AppConfig{
		Server: ServerConfig{Port: 0},
		Data:   DataConfig{Dir: "", IndexFile: "rhymer.gob"},
		Log:    LogConfig{Level: "verbose", Format: "text"},
		Jobs:   JobsConfig{MaxWorkers: 1},
		Rhymer: DefaultRhymerSettings(),
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "data.dir")
	assert.Contains(t, err.Error(), "log.level")
}
