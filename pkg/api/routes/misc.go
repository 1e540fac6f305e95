package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startTime = time.Now()

func MiscRouter(router fiber.Router) {
	router.Get("/", apiIndex)
	router.Get("/health", healthCheck)
}

func apiIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "TransitFlow Backend API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"health":  "/health",
			"transit": "/api/transit",
			"routing": "/api/routes",
			"ai":      "/api/ai",
		},
	})
}

func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).Seconds(),
	})
}
