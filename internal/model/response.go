package model

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
