package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports liveness and the networks the service prices.
type HealthResponse struct {
	Status   string   `json:"status"`
	Networks []string `json:"networks,omitempty"`
}

// ReserveSupportResponse answers a single reserve support lookup.
type ReserveSupportResponse struct {
	Network   string `json:"network"`
	Address   string `json:"address"`
	Supported bool   `json:"supported"`
}
