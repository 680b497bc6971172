package apperr

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Error is an API error carrying the HTTP status it maps to.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"-"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

// Unauthorized signals missing or invalid credentials or token.
func Unauthorized() *Error {
	return &Error{Status: fiber.StatusUnauthorized, Code: "UNAUTHORIZED", Message: "Unauthorized"}
}

// BadRequest signals a validation failure in the request.
func BadRequest(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Code: "VALIDATION_ERROR", Message: message}
}

// NotFound signals a missing record or blob.
func NotFound() *Error {
	return &Error{Status: fiber.StatusNotFound, Code: "NOT_FOUND", Message: "Not found"}
}

// Forbidden signals a read of a private file by a non-owner.
func Forbidden() *Error {
	return &Error{Status: fiber.StatusForbidden, Code: "FORBIDDEN", Message: "Not found"}
}

// Internal signals a storage or other unexpected failure.
func Internal(message string) *Error {
	return &Error{Status: fiber.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: message}
}

// ErrorHandler maps errors returned by handlers to JSON responses.
// Unknown errors are logged and surface as a plain 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(appErr)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
