package model

// AssistantResponse is the engine's answer to a single query.
type AssistantResponse struct {
	Content            string        `json:"content"`
	Disclaimer         string        `json:"disclaimer,omitempty"`
	Category           QueryCategory `json:"category,omitempty"`
	NeedsClarification bool          `json:"needsClarification"`
}

// HasDisclaimer reports whether a disclaimer is attached.
func (r AssistantResponse) HasDisclaimer() bool {
	return r.Disclaimer != ""
}
