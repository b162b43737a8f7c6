package handler

import (
	"errors"
	"log"

	"go-inventory-api/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func statusLabel(code int) string {
	switch code {
	case fiber.StatusBadRequest:
		return "Bad Request"
	case fiber.StatusNotFound:
		return "Not Found"
	case fiber.StatusMethodNotAllowed:
		return "Method not Allowed"
	case fiber.StatusConflict:
		return "Conflict"
	case fiber.StatusUnsupportedMediaType:
		return "Unsupported media type"
	default:
		return "Internal Server Error"
	}
}

// ErrorHandler maps errors to JSON responses in one place. Handlers and
// services return *apperr.Error values; anything else becomes a 500.
// The error is logged before the response is written.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := err.Error()
	label := statusLabel(status)

	var appErr *apperr.Error
	var fiberErr *fiber.Error
	if errors.As(err, &appErr) {
		status = appErr.Status
		label = appErr.Label
		message = appErr.Message
	} else if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		label = statusLabel(fiberErr.Code)
		message = fiberErr.Message
	}

	log.Printf("%s %s -> %d: %s", c.Method(), c.Path(), status, message)

	return c.Status(status).JSON(errorBody{
		Status:  status,
		Error:   label,
		Message: message,
	})
}
