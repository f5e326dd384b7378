package gemini

import (
	"testing"

	"mind-nest-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig(t *testing.T) {
	options := llm.Apply(llm.WithTemperature(0.2), llm.WithMaxTokens(64), llm.WithJSONResponse())
	config := buildConfig(options, []string{"be kind", "be brief"})

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "be kind\n\nbe brief", config.SystemInstruction.Parts[0].Text)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, *config.Temperature, 1e-6)
	assert.Equal(t, int32(64), config.MaxOutputTokens)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
}

func TestBuildConfigDefaults(t *testing.T) {
	config := buildConfig(llm.Apply(), nil)

	assert.Nil(t, config.SystemInstruction)
	assert.Nil(t, config.Temperature)
	assert.Zero(t, config.MaxOutputTokens)
	assert.Empty(t, config.ResponseMIMEType)
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(t.Context(), "", "gemini-2.5-flash")
	assert.Error(t, err)
}
