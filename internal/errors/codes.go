package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Payload error codes (PAYLOAD_*)
const (
	MalformedPayload  ErrorCode = "PAYLOAD_001"
	InvalidPage       ErrorCode = "PAYLOAD_002"
	PayloadUnreadable ErrorCode = "PAYLOAD_003"
)

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidToken       ErrorCode = "AUTH_004"
	AuthAccountLocked      ErrorCode = "AUTH_005"
	AuthForbidden          ErrorCode = "AUTH_006"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound ErrorCode = "CUSTOMER_001"
)

// Storage error codes (STORAGE_*)
const (
	FileWriteFailure ErrorCode = "STORAGE_001"
)

// Request routing error codes (REQUEST_*)
const (
	RouteNotFound    ErrorCode = "REQUEST_001"
	MethodNotAllowed ErrorCode = "REQUEST_002"
	PayloadTooLarge  ErrorCode = "REQUEST_003"
)

// System error codes (SYSTEM_*)
const (
	UnhandledFault           ErrorCode = "SYSTEM_001"
	CollaboratorFailure      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	MalformedPayload:  "Invalid request format",
	InvalidPage:       "Page number must be a positive integer",
	PayloadUnreadable: "Request body could not be read",

	AuthInvalidCredentials: "Invalid username or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidToken:       "Invalid authorization token",
	AuthAccountLocked:      "Account is locked after too many failed attempts",
	AuthForbidden:          "Access to this resource is forbidden",

	CustomerNotFound: "Customer not found",

	FileWriteFailure: "Logo image could not be saved",

	RouteNotFound:    "Resource not found",
	MethodNotAllowed: "Method not allowed",
	PayloadTooLarge:  "Request body is too large",

	UnhandledFault:           "An unexpected error occurred",
	CollaboratorFailure:      "The operation could not be completed",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - payload could not become a typed request model
	case MalformedPayload, InvalidPage, PayloadUnreadable:
		return http.StatusBadRequest

	case AuthInvalidCredentials, AuthMissingToken, AuthExpiredToken, AuthInvalidToken:
		return http.StatusUnauthorized

	case AuthAccountLocked, AuthForbidden:
		return http.StatusForbidden

	case CustomerNotFound, RouteNotFound:
		return http.StatusNotFound

	case MethodNotAllowed:
		return http.StatusMethodNotAllowed

	case PayloadTooLarge:
		return http.StatusRequestEntityTooLarge

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	case UnhandledFault, CollaboratorFailure, FileWriteFailure:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// CodeForHTTPStatus maps a transport-level status (from echo.HTTPError) to an error code
func CodeForHTTPStatus(status int) ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusUnsupportedMediaType:
		return MalformedPayload
	case http.StatusUnauthorized:
		return AuthMissingToken
	case http.StatusForbidden:
		return AuthForbidden
	case http.StatusNotFound:
		return RouteNotFound
	case http.StatusMethodNotAllowed:
		return MethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return PayloadTooLarge
	case http.StatusTooManyRequests:
		return SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return SystemServiceUnavailable
	default:
		return UnhandledFault
	}
}
