package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 0, cfg.MaxRetries)
	require.Contains(t, cfg.Tasks, TaskClassify)
	require.Contains(t, cfg.Tasks, TaskChat)
	assert.Equal(t, 0.1, cfg.Tasks[TaskClassify].Temperature)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JARVIS_LLM_ENABLED", "true")
	t.Setenv("JARVIS_LLM_ENDPOINT", "http://llm.example:11434")
	t.Setenv("JARVIS_LLM_MODEL", "mistral")
	t.Setenv("JARVIS_LLM_TIMEOUT_MS", "5000")
	t.Setenv("JARVIS_LLM_MAX_RETRIES", "2")
	t.Setenv("JARVIS_LLM_CLASSIFY_TIMEOUT_MS", "3000")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://llm.example:11434", cfg.Endpoint)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 3000, cfg.Tasks[TaskClassify].TimeoutMs)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("JARVIS_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("JARVIS_LLM_MAX_RETRIES", "-3")
	t.Setenv("JARVIS_LLM_CHAT_TIMEOUT_MS", "0")

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, DefaultConfig().Tasks[TaskChat].TimeoutMs, cfg.Tasks[TaskChat].TimeoutMs)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 9000

	assert.Equal(t, cfg.Tasks[TaskChat].TimeoutMs, cfg.TaskTimeout(TaskChat))

	tc := cfg.Tasks[TaskChat]
	tc.TimeoutMs = 0
	cfg.Tasks[TaskChat] = tc
	assert.Equal(t, 9000, cfg.TaskTimeout(TaskChat))

	assert.Equal(t, 9000, cfg.TaskTimeout(TaskType("unknown")))
}
