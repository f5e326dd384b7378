package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 0.35, cfg.Pipeline.TechniqueThreshold)
	assert.Equal(t, 5, cfg.Pipeline.TechniqueCount)
	assert.Equal(t, 768, cfg.Ai.EmbeddingDimensions)
	assert.Equal(t, "gemini-embedding-001", cfg.Ai.EmbeddingModel)
	assert.Equal(t, 30*time.Second, cfg.Pipeline.GenerateTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Pipeline.CrisisCacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TECHNIQUE_THRESHOLD", "0.5")
	t.Setenv("TECHNIQUE_COUNT", "3")
	t.Setenv("CLASSIFY_TIMEOUT", "1500ms")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.Equal(t, 0.5, cfg.Pipeline.TechniqueThreshold)
	assert.Equal(t, 3, cfg.Pipeline.TechniqueCount)
	assert.Equal(t, 1500*time.Millisecond, cfg.Pipeline.ClassifyTimeout)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.IsProduction())
}

func TestEnvHelpersFallback(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T)
	}{
		{
			name:  "invalid int",
			key:   "TEST_INT",
			value: "abc",
			check: func(t *testing.T) { assert.Equal(t, 7, getEnvAsInt("TEST_INT", 7)) },
		},
		{
			name:  "invalid float",
			key:   "TEST_FLOAT",
			value: "x.y",
			check: func(t *testing.T) { assert.Equal(t, 1.5, getEnvAsFloat("TEST_FLOAT", 1.5)) },
		},
		{
			name:  "negative duration",
			key:   "TEST_DURATION",
			value: "-3s",
			check: func(t *testing.T) {
				assert.Equal(t, time.Second, getEnvAsDuration("TEST_DURATION", time.Second))
			},
		},
		{
			name:  "invalid bool",
			key:   "TEST_BOOL",
			value: "maybe",
			check: func(t *testing.T) { assert.True(t, getEnvAsBool("TEST_BOOL", true)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			tt.check(t)
		})
	}
}
