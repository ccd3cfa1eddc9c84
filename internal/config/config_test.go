package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Empty(t, cfg.QuestionsPath)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Reveal.ShowComputedScore)
	assert.Equal(t, 62, cfg.QuizConfig().DisplayedScore)
}

func TestLoad_File(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: production
questions_path: /tmp/bank.yaml
log:
  file: /tmp/pawquiz.log
  level: debug
reveal:
  show_computed_score: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/tmp/bank.yaml", cfg.QuestionsPath)
	assert.Equal(t, "/tmp/pawquiz.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.QuizConfig().ShowComputedScore)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PAWQUIZ_QUESTIONS_PATH", "/srv/bank.json")
	t.Setenv("PAWQUIZ_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/bank.json", cfg.QuestionsPath)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
