package util

import (
	"github.com/fadilmartias/job-wingman/internal/config"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
}

type errorBody struct {
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
}

// ErrorResponse sends the standard {message} error body. Error detail is
// attached outside production only; client-visible messages never carry
// credential or provider detail.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	body := errorBody{Message: params.Message}

	if config.LoadAppConfig().Env != "production" {
		if len(errs) > 0 && errs[0] != nil {
			body.DevMessage = errs[0].Error()
		}
		if params.DevMessage != "" {
			body.DevMessage = params.DevMessage
		}
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(body)
}
