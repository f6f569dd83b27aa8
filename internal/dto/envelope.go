package dto

// ResponseStatus is the outcome recorded in every envelope
type ResponseStatus string

const (
	StatusSuccess ResponseStatus = "Success"
	StatusFailure ResponseStatus = "Failure"
)

// GenericResponse is the single envelope written by every endpoint.
// Data is only set on success; Code, Details and TraceID only on failure.
type GenericResponse struct {
	Status  ResponseStatus `json:"status"`
	Message string         `json:"message"`
	Data    interface{}    `json:"data,omitempty" swaggertype:"object"`
	Code    string         `json:"code,omitempty"`
	Details []string       `json:"details,omitempty"`
	TraceID string         `json:"traceId,omitempty"`
}

// Success builds a success envelope around data
func Success(message string, data interface{}) *GenericResponse {
	return &GenericResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// Failure builds a failure envelope; it never carries data
func Failure(code, message, traceID string, details ...string) *GenericResponse {
	return &GenericResponse{
		Status:  StatusFailure,
		Message: message,
		Code:    code,
		Details: details,
		TraceID: traceID,
	}
}
