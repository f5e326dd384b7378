package serverutils

import (
	"errors"

	"mind-nest-be/internal/service"
	"mind-nest-be/pkg/rag/executor"
	"mind-nest-be/pkg/rag/language"

	"github.com/gofiber/fiber/v2"
)

const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeUnsupportedLanguage  = "UNSUPPORTED_LANGUAGE"
	ErrCodeEmbeddingUnavailable = "EMBEDDING_UNAVAILABLE"
	ErrCodeBadRequest           = "BAD_REQUEST"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON error envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		status, body := MapError(err)
		return ctx.Status(status).JSON(body)
	}
}

func MapError(err error) (int, *ErrorResponse) {
	body := &ErrorResponse{Success: false, Message: err.Error()}

	var validationErr *ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		body.ErrorCode = ErrCodeValidation
		body.Message = "Invalid request"
		body.Errors = validationErr.Fields
		return fiber.StatusBadRequest, body
	case errors.Is(err, service.ErrUnauthorized):
		body.ErrorCode = ErrCodeUnauthorized
		body.Message = "Unauthorized"
		return fiber.StatusUnauthorized, body
	case errors.Is(err, service.ErrUserNotFound):
		body.ErrorCode = ErrCodeNotFound
		body.Message = "User not found"
		return fiber.StatusNotFound, body
	case errors.Is(err, language.ErrUnsupported):
		body.ErrorCode = ErrCodeUnsupportedLanguage
		return fiber.StatusBadRequest, body
	case errors.Is(err, executor.ErrEmbeddingUnavailable):
		body.ErrorCode = ErrCodeEmbeddingUnavailable
		body.Message = "Failed to generate embedding"
		return fiber.StatusInternalServerError, body
	case errors.As(err, &fiberErr):
		body.Message = fiberErr.Message
		body.ErrorCode = ErrCodeBadRequest
		if fiberErr.Code >= fiber.StatusInternalServerError {
			body.ErrorCode = ErrCodeInternal
		}
		return fiberErr.Code, body
	default:
		body.ErrorCode = ErrCodeInternal
		body.Message = "Internal server error"
		return fiber.StatusInternalServerError, body
	}
}
