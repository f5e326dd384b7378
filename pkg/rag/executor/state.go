package executor

// State is a step of one chat turn.
type State string

const (
	StateStart                    State = "START"
	StateLanguageDetected         State = "LANGUAGE_DETECTED"
	StateSeverityClassified       State = "SEVERITY_CLASSIFIED"
	StateEmbedded                 State = "EMBEDDED"
	StateTechniquesRetrieved      State = "TECHNIQUES_RETRIEVED"
	StateCrisisResourcesRetrieved State = "CRISIS_RESOURCES_RETRIEVED"
	StateResponseGenerated        State = "RESPONSE_GENERATED"
	StatePersisted                State = "PERSISTED"
	StateDone                     State = "DONE"
	StateFailed                   State = "FAILED"
)
