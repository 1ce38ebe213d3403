package dto

// MutationResponse is the resolver-style envelope returned by the payment
// mutation endpoints. Business-rule failures come back as success=false with
// the message shown verbatim to the user; only unexpected errors surface as
// transport-level failures.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(message string, data any) MutationResponse {
	return MutationResponse{Success: true, Message: message, Data: data}
}

// Fail wraps a business-rule failure message.
func Fail(message string) MutationResponse {
	return MutationResponse{Success: false, Message: message}
}
