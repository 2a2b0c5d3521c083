package dto

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse enumerates per-field constraint violations.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}
