package assistant

import "codeberg.org/doctor/server/internal/assistant"

// request payload for the three generation actions
type GenerateRequest struct {
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
	Depth     string `json:"depth"` // empty selects "Detailed"
	Code      string `json:"code"`
}

// response payload for generation actions and documentation downloads
type GenerateResponse struct {
	SessionID string               `json:"session_id"`
	Skipped   bool                 `json:"skipped"`
	Result    *assistant.Output    `json:"result,omitempty"`
	Downloads []assistant.Download `json:"downloads,omitempty"`
	Model     string               `json:"model,omitempty"`
}

// selectable values for the input controls
type OptionsResponse struct {
	Languages    []string `json:"languages"`
	Depths       []string `json:"depths"`
	DefaultDepth string   `json:"default_depth"`
	Instructions string   `json:"instructions"`
}
