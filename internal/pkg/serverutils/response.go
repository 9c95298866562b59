package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ErrorHandler renders any error returned by a handler in the standard
// envelope. Validation errors map to 400, fiber errors keep their status.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var validationErr *ValidationError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &validationErr):
		code = fiber.StatusBadRequest
		return ctx.Status(code).JSON(BaseResponse[map[string]string]{
			Success: false,
			Code:    code,
			Message: validationErr.Error(),
			Data:    validationErr.Fields,
		})
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return ctx.Status(code).JSON(ErrorResponse(code, message))
}
