package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const llmYAML = `
base_url: https://openrouter.example/api/v1
api_key: ${MISSION_TEST_KEY}
default_model: openai/gpt-4o-mini
timeout: 30s
`

func writeConfig(t *testing.T, main string) string {
	t.Helper()
	t.Setenv("NO_DOTENV", "1")
	for _, k := range []string{"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "OPENROUTER_MODEL", "OPENROUTER_TIMEOUT", PortEnv} {
		t.Setenv(k, "")
	}
	t.Setenv("MISSION_TEST_KEY", "test-key")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm.yaml"), []byte(llmYAML), 0o600))
	path := filepath.Join(dir, "mission.yaml")
	require.NoError(t, os.WriteFile(path, []byte(main), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
Name: mission-api
Host: 127.0.0.1
Port: 3100
Timeout: 0
Env: test
Cors:
  Origins:
    - https://app.example.com
LLM:
  File: llm.yaml
Prompt:
  System: Reply with JSON only.
  Template: prompts/mission.tmpl
  Model: mini
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mission-api", cfg.Name)
	assert.Equal(t, 3100, cfg.Port)
	assert.EqualValues(t, 0, cfg.Timeout)
	assert.Equal(t, "test", cfg.Env)
	assert.True(t, cfg.CorsEnabled())
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Cors.Origins)

	dir := filepath.Dir(path)
	assert.Equal(t, path, cfg.MainPath())
	assert.Equal(t, dir, cfg.BaseDir())
	assert.Equal(t, filepath.Join(dir, "llm.yaml"), cfg.LLM.File)
	require.True(t, cfg.LLM.Loaded())
	assert.Equal(t, "test-key", cfg.LLM.Value.APIKey)

	assert.Equal(t, "Reply with JSON only.", cfg.Prompt.System)
	assert.Equal(t, filepath.Join(dir, "prompts", "mission.tmpl"), cfg.Prompt.Template)
	assert.Equal(t, "mini", cfg.Prompt.Model)
}

func TestLoad_PortEnvOverride(t *testing.T) {
	path := writeConfig(t, `
Name: mission-api
Port: 3000
LLM:
  File: llm.yaml
`)
	t.Setenv(PortEnv, "8088")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8088, cfg.Port)
	assert.False(t, cfg.CorsEnabled())
	assert.Equal(t, "dev", cfg.Env)
}

func TestLoad_InvalidPortEnv(t *testing.T) {
	path := writeConfig(t, `
Name: mission-api
Port: 3000
LLM:
  File: llm.yaml
`)
	t.Setenv(PortEnv, "not-a-port")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("missing llm section", func(t *testing.T) {
		path := writeConfig(t, "Name: mission-api\nPort: 3000\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LLM.File is required")
	})

	t.Run("llm file not found", func(t *testing.T) {
		path := writeConfig(t, "Name: mission-api\nPort: 3000\nLLM:\n  File: other.yaml\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load llm config")
	})

	t.Run("bad env", func(t *testing.T) {
		path := writeConfig(t, "Name: mission-api\nPort: 3000\nEnv: staging\nLLM:\n  File: llm.yaml\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "env must be one of")
	})
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.LLM.File = "llm.yaml"

	cfg.Port = 0
	require.Error(t, cfg.Validate())

	cfg.Port = 3000
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "dev", cfg.Env)
}

func TestApplyPortDefault(t *testing.T) {
	t.Setenv(PortEnv, "")
	cfg := &Config{}
	require.NoError(t, cfg.applyPort())
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestCorsEnabled(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.CorsEnabled())
	cfg.Cors.Origins = []string{" "}
	assert.False(t, cfg.CorsEnabled())
	cfg.Cors.Origins = []string{"*"}
	assert.True(t, cfg.CorsEnabled())
}
