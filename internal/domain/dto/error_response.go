package dto

import "time"

// ErrorResponse is the JSON body returned by every failing API call.
type ErrorResponse struct {
	Message      string    `json:"message" example:"All values must be positive and non-zero."`
	ErrorDetails string    `json:"error_details,omitempty" example:"loan_amount: range error"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// err is optional; when present its text is exposed as ErrorDetails.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
