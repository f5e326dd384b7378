package severity

import (
	"context"
	"fmt"

	"mind-nest-be/internal/constant"
	"mind-nest-be/internal/pkg/logger"
	"mind-nest-be/pkg/llm"
)

const logModule = "SEVERITY"

// Classifier asks a hosted model for the severity of a message.
// Any failure degrades to Moderate, never higher and never lower.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewClassifier(llmProvider llm.LLMProvider, log logger.ILogger) *Classifier {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Classifier{
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Classify never fails. The caller bounds it through ctx.
func (c *Classifier) Classify(ctx context.Context, message string) Level {
	prompt := fmt.Sprintf(constant.SeverityClassifierPromptV1, message)
	raw, err := c.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0))
	if err != nil {
		c.logger.Warn(logModule, "Classification call failed, using MODERATE", map[string]interface{}{
			"error": err.Error(),
		})
		return Moderate
	}

	level, err := Parse(raw)
	if err != nil {
		c.logger.Warn(logModule, "Unusable classification, using MODERATE", map[string]interface{}{
			"raw":   raw,
			"error": err.Error(),
		})
		return Moderate
	}

	c.logger.Debug(logModule, "Message classified", map[string]interface{}{
		"severity": level.String(),
	})
	return level
}
