package response

import (
	"context"

	"mind-nest-be/internal/constant"
	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/pkg/logger"
	"mind-nest-be/pkg/llm"
	"mind-nest-be/pkg/rag/language"
	"mind-nest-be/pkg/rag/severity"
)

const MaxQuotes = 3

// Source tells whether a reply came from the model or the keyword fallback.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

type Input struct {
	Message         string
	Severity        severity.Level
	Language        language.Code
	Techniques      []*entity.ScoredTechnique
	CrisisResources []*entity.CrisisResource
}

// Result always carries text and at most MaxQuotes quotes, never nil.
type Result struct {
	Text   string
	Quotes []string
	Source Source
}

// FallbackSelector supplies a canned reply when generation fails.
type FallbackSelector interface {
	Select(message string, lang language.Code) string
}

type Generator struct {
	llmProvider llm.LLMProvider
	fallback    FallbackSelector
	logger      logger.ILogger
}

func NewGenerator(llmProvider llm.LLMProvider, fallback FallbackSelector, log logger.ILogger) *Generator {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Generator{
		llmProvider: llmProvider,
		fallback:    fallback,
		logger:      log,
	}
}

// Generate never fails. Unusable model output yields a fallback Result.
func (g *Generator) Generate(ctx context.Context, in Input) Result {
	prompt := buildPrompt(in)

	raw, err := g.llmProvider.Generate(ctx, prompt,
		llm.WithSystemPrompt(constant.WellnessSystemPromptV1),
		llm.WithJSONResponse(),
	)
	if err != nil {
		g.logger.Warn("GENERATION", "Generation call failed, using fallback", map[string]interface{}{
			"error":    err.Error(),
			"severity": in.Severity.String(),
		})
		return g.fallbackResult(in)
	}

	payload, err := parsePayload(raw)
	if err != nil {
		g.logger.Warn("GENERATION", "Unusable generation output, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return g.fallbackResult(in)
	}

	g.logger.Debug("GENERATION", "Response generated", map[string]interface{}{
		"quotes":     len(payload.Quotes),
		"techniques": len(in.Techniques),
	})
	return Result{
		Text:   payload.Text,
		Quotes: payload.Quotes,
		Source: SourceModel,
	}
}

func (g *Generator) fallbackResult(in Input) Result {
	quotes := []string{}
	if in.Severity.IsElevated() {
		quotes = fallbackQuotes(in.Language)
	}

	g.logger.Info("FALLBACK", "Serving keyword fallback reply", map[string]interface{}{
		"language": in.Language.String(),
	})
	return Result{
		Text:   g.fallback.Select(in.Message, in.Language),
		Quotes: quotes,
		Source: SourceFallback,
	}
}

func fallbackQuotes(lang language.Code) []string {
	src := constant.FallbackQuotesEnglish
	if lang == language.Thai {
		src = constant.FallbackQuotesThai
	}
	return append([]string(nil), src...)
}
