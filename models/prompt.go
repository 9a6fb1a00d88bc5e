package models

// PromptProfile is the fixed system prompt, model and output format
// associated with one RequestType.
type PromptProfile struct {
	SystemPrompt string
	Model        string
	// ExpectsJSON enables the json_object response format hint and the
	// fence-stripping post-processing.
	ExpectsJSON bool
}
