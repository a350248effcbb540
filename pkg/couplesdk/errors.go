package couplesdk

import "fmt"

// ErrorResponse is the error envelope: success=false and a localized
// user-facing message. Internal error detail never appears here.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Fail builds an error envelope with the given user-facing message.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// APIError is the client-side representation of an error response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}
