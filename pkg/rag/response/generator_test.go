package response

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mind-nest-be/internal/constant"
	"mind-nest-be/internal/entity"
	"mind-nest-be/pkg/llm"
	"mind-nest-be/pkg/rag/language"
	"mind-nest-be/pkg/rag/severity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	reply   string
	err     error
	prompt  string
	options *llm.Options
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.prompt = prompt
	s.options = llm.Apply(opts...)
	return s.reply, s.err
}

type stubFallback struct {
	calls int
}

func (s *stubFallback) Select(message string, lang language.Code) string {
	s.calls++
	return "fallback:" + lang.String()
}

func technique(title string) *entity.ScoredTechnique {
	return &entity.ScoredTechnique{
		Technique: &entity.Technique{
			Title:        title,
			Content:      "Slow breathing calms the body.",
			Instructions: "Inhale 4, hold 4, exhale 4.",
		},
		Similarity: 0.8,
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: `{"text":"hi"}`, want: `{"text":"hi"}`},
		{name: "json fence", raw: "```json\n{\"text\":\"hi\"}\n```", want: `{"text":"hi"}`},
		{name: "bare fence", raw: "```\n{\"text\":\"hi\"}\n```", want: `{"text":"hi"}`},
		{name: "whitespace", raw: "  \n```json {\"text\":\"hi\"}```  ", want: `{"text":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.raw))
		})
	}
}

func TestGenerateParsesModelOutput(t *testing.T) {
	provider := &stubLLM{reply: "```json\n{\"text\": \"This is a test response.\", \"quotes\": [\"a\", \" \", \"b\", \"c\", \"d\"]}\n```"}
	fb := &stubFallback{}
	g := NewGenerator(provider, fb, nil)

	res := g.Generate(context.Background(), Input{
		Message:    "I feel stressed",
		Severity:   severity.Low,
		Language:   language.English,
		Techniques: []*entity.ScoredTechnique{technique("Box Breathing")},
	})

	assert.Equal(t, "This is a test response.", res.Text)
	assert.Equal(t, []string{"a", "b", "c"}, res.Quotes)
	assert.Equal(t, SourceModel, res.Source)
	assert.Zero(t, fb.calls)

	require.NotNil(t, provider.options)
	assert.Equal(t, constant.WellnessSystemPromptV1, provider.options.SystemPrompt)
	assert.True(t, provider.options.JSONResponse)
}

func TestGenerateFallback(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		err        error
		severity   severity.Level
		lang       language.Code
		wantQuotes []string
	}{
		{name: "call error low", err: errors.New("429"), severity: severity.Low, lang: language.English, wantQuotes: []string{}},
		{name: "bad json moderate", reply: "sorry, I can't", severity: severity.Moderate, lang: language.English, wantQuotes: []string{}},
		{name: "empty text high", reply: `{"text":"  ","quotes":[]}`, severity: severity.High, lang: language.English, wantQuotes: constant.FallbackQuotesEnglish},
		{name: "call error crisis thai", err: errors.New("timeout"), severity: severity.Crisis, lang: language.Thai, wantQuotes: constant.FallbackQuotesThai},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &stubFallback{}
			g := NewGenerator(&stubLLM{reply: tt.reply, err: tt.err}, fb, nil)

			res := g.Generate(context.Background(), Input{Message: "help", Severity: tt.severity, Language: tt.lang})

			assert.Equal(t, "fallback:"+tt.lang.String(), res.Text)
			assert.Equal(t, tt.wantQuotes, res.Quotes)
			assert.Equal(t, SourceFallback, res.Source)
			assert.Equal(t, 1, fb.calls)
		})
	}
}

func TestGenerateNilQuotesBecomeEmpty(t *testing.T) {
	g := NewGenerator(&stubLLM{reply: `{"text":"ok"}`}, &stubFallback{}, nil)
	res := g.Generate(context.Background(), Input{Message: "hi", Severity: severity.Low, Language: language.English})

	assert.NotNil(t, res.Quotes)
	assert.Empty(t, res.Quotes)
}

func TestBuildPrompt(t *testing.T) {
	base := Input{
		Message:    "I want to hurt myself",
		Language:   language.Thai,
		Techniques: []*entity.ScoredTechnique{technique("Grounding")},
	}

	tests := []struct {
		name     string
		severity severity.Level
		contains []string
		excludes []string
	}{
		{
			name:     "low",
			severity: severity.Low,
			excludes: []string{constant.PromptModerateNote, constant.PromptElevatedNote, constant.PromptCrisisQuotes},
		},
		{
			name:     "moderate",
			severity: severity.Moderate,
			contains: []string{constant.PromptModerateNote},
			excludes: []string{constant.PromptElevatedNote},
		},
		{
			name:     "high",
			severity: severity.High,
			contains: []string{constant.PromptElevatedNote},
			excludes: []string{constant.PromptCrisisQuotes},
		},
		{
			name:     "crisis",
			severity: severity.Crisis,
			contains: []string{constant.PromptElevatedNote, constant.PromptCrisisQuotes},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			in.Severity = tt.severity
			prompt := buildPrompt(in)

			assert.True(t, strings.HasPrefix(prompt, "User Message: I want to hurt myself\n\n"))
			assert.Contains(t, prompt, "Detected Severity: "+tt.severity.String())
			assert.Contains(t, prompt, "Technique: Grounding\nDescription: Slow breathing calms the body.\nInstructions: Inhale 4, hold 4, exhale 4.")
			assert.Contains(t, prompt, constant.PromptLanguageThai)
			assert.Contains(t, prompt, constant.PromptJSONFormat)
			assert.Contains(t, prompt, constant.PromptTechniqueLimit)
			for _, s := range tt.contains {
				assert.Contains(t, prompt, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, prompt, s)
			}
		})
	}
}

func TestBuildTechniqueContextEmpty(t *testing.T) {
	assert.Empty(t, BuildTechniqueContext(nil))
	assert.Contains(t, buildPrompt(Input{Message: "x", Severity: severity.Low, Language: language.English}), constant.PromptLanguageEnglish)
}
