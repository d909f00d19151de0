package types

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// LabelsResponse carries the canonical label assignment after an
// orchestrated operation: transcript uuid -> current respondent label.
type LabelsResponse struct {
	Labels map[string]string `json:"labels"`
}
