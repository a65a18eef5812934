package serverutils

import "github.com/gofiber/fiber/v2"

// ApiError is a client-facing failure. Services return these; the error
// handler middleware turns anything else into a generic 500.
type ApiError struct {
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func BadRequest(message string) *ApiError {
	return &ApiError{Code: fiber.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *ApiError {
	return &ApiError{Code: fiber.StatusUnauthorized, Message: message}
}

func NotFound(message string) *ApiError {
	return &ApiError{Code: fiber.StatusNotFound, Message: message}
}

func Conflict(message string) *ApiError {
	return &ApiError{Code: fiber.StatusConflict, Message: message}
}
