package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// ChatHistoryLimit is how many turns the history endpoint returns.
	ChatHistoryLimit = 50

	// MaxChatMessageRunes bounds a single user message.
	MaxChatMessageRunes = 4000

	WellnessSystemPromptV1 = `You are Mind-Nest, a warm, empathetic, and supportive mental wellness companion.
Your goal is to provide actionable, non-medical mental health advice based on the provided context.

Guidelines:
- Be empathetic and validating. Acknowledge the user's feelings first.
- Use the provided context (techniques) to offer specific advice.
- If you recommend a technique from the context, simply introduce it and explain WHY it is helpful.
- CRITICAL: DO NOT write out the step-by-step instructions in your response. The instructions will be shown to the user in a separate card automatically. Just mention the technique name clearly.
- If the context is empty, offer general supportive advice but mention you are still learning.
- NEVER diagnose conditions or prescribe medication.
- NEVER give medical advice.
- Keep responses concise and easy to read.`

	SeverityClassifierPromptV1 = `Classify this message's mental health severity. Respond with ONLY one word.

LOW: Mild stress, general questions, curiosity
MODERATE: Anxiety, sadness, work stress, relationship issues
HIGH: Severe distress, panic attacks, hopelessness, can't function
CRISIS: Self-harm thoughts, suicidal ideation, immediate danger

Message: "%s"

Classification:`

	// Response prompt parts, joined with a blank line.
	PromptUserMessage       = "User Message: %s"
	PromptDetectedSeverity  = "Detected Severity: %s"
	PromptTechniqueContext  = "Relevant Techniques Context:\n%s"
	PromptTechniqueTemplate = "Technique: %s\nDescription: %s\nInstructions: %s\n\n"

	PromptLanguageThai    = "IMPORTANT: Please respond in Thai language (ภาษาไทย)."
	PromptLanguageEnglish = "Please respond in English."

	PromptJSONFormat = `IMPORTANT: You must return your response in valid JSON format: {"text": "Your response text...", "quotes": ["Quote 1", "Quote 2", "Quote 3"]}. If no quotes are needed, return an empty list for quotes.`

	PromptTechniqueLimit = "IMPORTANT: In your 'text' response, mention at most 2 techniques from the context. Briefly explain why they help, but do NOT list steps. Refer the user to the cards below for more details."

	PromptModerateNote = "IMPORTANT: The user is feeling moderate distress. Suggest the provided techniques as helpful tools. Be empathetic and supportive."

	PromptElevatedNote = "CRITICAL: The user is in distress. Be extremely gentle, validating, and prioritize safety. Your response should be purely empathetic and supportive. IMPORTANT: Do NOT list any phone numbers or resource names in your text. The user will see them in the cards below. Just gently urge them to use the resources provided below."

	PromptCrisisQuotes = "ALSO: Generate 3 short, uplifting, and appropriate quotes for this situation to help the user feel a bit better. Include them in the 'quotes' array of the JSON response."
)

// Reassurance quotes shown with a degraded reply on an elevated turn.
var (
	FallbackQuotesEnglish = []string{
		"You are stronger than you know.",
		"This too shall pass.",
		"You are not alone.",
	}
	FallbackQuotesThai = []string{
		"คุณเข้มแข็งกว่าที่คิด",
		"เรื่องนี้จะผ่านไป",
		"คุณไม่ได้อยู่คนเดียว",
	}
)
