package dto

// APIResponse is the standard envelope returned by every endpoint: exactly one
// of Data or Error is set.
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse wraps a payload in the standard success envelope
func SuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{Data: data}
}

// MessageResponse represents a plain success message payload
type MessageResponse struct {
	Message string `json:"message"`
}
