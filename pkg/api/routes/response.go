package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response wrapper used by every endpoint
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

var validate = validator.New()

func successResponse(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{
		Success: true,
		Data:    data,
	})
}
