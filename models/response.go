package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// RelayResponse is the wire shape of POST /api/order: {message} on success,
// {error} otherwise.
type RelayResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
