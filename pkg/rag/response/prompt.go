package response

import (
	"fmt"
	"strings"

	"mind-nest-be/internal/constant"
	"mind-nest-be/internal/entity"
	"mind-nest-be/pkg/rag/language"
	"mind-nest-be/pkg/rag/severity"
)

// BuildTechniqueContext renders retrieved techniques for the prompt.
func BuildTechniqueContext(techniques []*entity.ScoredTechnique) string {
	var sb strings.Builder
	for _, t := range techniques {
		if t == nil || t.Technique == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf(constant.PromptTechniqueTemplate, t.Technique.Title, t.Technique.Content, t.Technique.Instructions))
	}
	return sb.String()
}

func buildPrompt(in Input) string {
	parts := []string{
		fmt.Sprintf(constant.PromptUserMessage, in.Message),
		fmt.Sprintf(constant.PromptDetectedSeverity, in.Severity),
		fmt.Sprintf(constant.PromptTechniqueContext, BuildTechniqueContext(in.Techniques)),
		languageInstruction(in.Language),
		constant.PromptJSONFormat,
		constant.PromptTechniqueLimit,
	}

	switch in.Severity {
	case severity.Moderate:
		parts = append(parts, constant.PromptModerateNote)
	case severity.High:
		parts = append(parts, constant.PromptElevatedNote)
	case severity.Crisis:
		parts = append(parts, constant.PromptElevatedNote, constant.PromptCrisisQuotes)
	}

	return strings.Join(parts, "\n\n")
}

func languageInstruction(lang language.Code) string {
	if lang == language.Thai {
		return constant.PromptLanguageThai
	}
	return constant.PromptLanguageEnglish
}
