package models

// RefineRequest is the payload for the refine endpoint.
type RefineRequest struct {
	Thought string `json:"thought"`
	Tone    string `json:"tone"`
}

// RefineResponse always carries a populated RefinedThought, even on failure,
// so the client only ever branches on Success.
type RefineResponse struct {
	Error           string `json:"error,omitempty"`
	RefinedThought  string `json:"refinedThought"`
	OriginalThought string `json:"originalThought"`
	Tone            string `json:"tone"`
	Success         bool   `json:"success"`
}
