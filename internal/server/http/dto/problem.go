package dto

// Problem is an RFC 7807 style error body.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ValidationProblem lists field-keyed validation messages.
type ValidationProblem struct {
	Problem
	Errors map[string][]string `json:"errors"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}
