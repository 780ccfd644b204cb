package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging:   LoggingConfig{Level: "info", Format: "json"},
		Content:   ContentConfig{CreaturesDir: "content/creatures"},
		Encounter: EncounterConfig{Player: "hero", Monster: "goblin"},
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
content:
  creatures_dir: /srv/creatures
encounter:
  player: knight
  monster: troll
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/srv/creatures", cfg.Content.CreaturesDir)
	assert.Equal(t, "knight", cfg.Encounter.Player)
	assert.Equal(t, "troll", cfg.Encounter.Monster)
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "logging:\n  level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "content/creatures", cfg.Content.CreaturesDir)
	assert.Equal(t, "hero", cfg.Encounter.Player)
	assert.Equal(t, "goblin", cfg.Encounter.Monster)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CLASH_ENCOUNTER_MONSTER", "ogre")
	cfg, err := Load(writeConfig(t, "encounter:\n  monster: goblin\n"))
	require.NoError(t, err)
	assert.Equal(t, "ogre", cfg.Encounter.Monster)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "logging:\n  level: trace\n"))
	assert.ErrorContains(t, err, "logging.level")
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("logging.level", "error")
	v.Set("logging.format", "console")
	v.Set("content.creatures_dir", "x")
	v.Set("encounter.player", "p")
	v.Set("encounter.monster", "m")
	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)

	_, err = LoadFromViper(viper.New())
	assert.Error(t, err)
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := Config{}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"logging.level", "content.creatures_dir", "encounter.player", "encounter.monster"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateLoggingFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestProperty_ValidateLoggingLevel(t *testing.T) {
	valid := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.SampledFrom([]string{"debug", "info", "warn", "error", "trace", "fatal", ""}).Draw(rt, "level")
		cfg := validConfig()
		cfg.Logging.Level = level
		if valid[level] {
			assert.NoError(rt, cfg.Validate())
		} else {
			assert.Error(rt, cfg.Validate())
		}
	})
}
