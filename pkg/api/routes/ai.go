package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/transitflow/transitflow/pkg/ai"
	"github.com/transitflow/transitflow/pkg/apierror"
)

func AIRouter(router fiber.Router, aiService *ai.Service) {
	router.Post("/predict-delay", predictDelay(aiService))
	router.Post("/query", runQuery(aiService))
	router.Get("/crowd-density", getCrowdDensity(aiService))
}

type predictDelayRequest struct {
	RouteID string `json:"routeId" validate:"required"`
	StopID  string `json:"stopId"`
}

type queryRequest struct {
	Query string `json:"query" validate:"required"`
}

func predictDelay(aiService *ai.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request predictDelayRequest
		if err := c.BodyParser(&request); err != nil {
			return apierror.NewValidation("Request body must be valid JSON")
		}

		if err := validate.Struct(&request); err != nil {
			return apierror.NewValidation("Route ID is required")
		}

		prediction, err := aiService.PredictDelay(c.UserContext(), request.RouteID, request.StopID)
		if err != nil {
			return err
		}

		return successResponse(c, prediction)
	}
}

func runQuery(aiService *ai.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request queryRequest
		if err := c.BodyParser(&request); err != nil {
			return apierror.NewValidation("Request body must be valid JSON")
		}

		if err := validate.Struct(&request); err != nil {
			return apierror.NewValidation("Query is required")
		}

		result, err := aiService.ProcessQuery(c.UserContext(), request.Query)
		if err != nil {
			return err
		}

		return successResponse(c, result)
	}
}

func getCrowdDensity(aiService *ai.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		routeID := c.Query("routeId")
		if routeID == "" {
			return apierror.NewValidation("Route ID is required")
		}

		at := time.Now()
		if timeParameter := c.Query("time"); timeParameter != "" {
			var err error
			at, err = time.Parse(time.RFC3339, timeParameter)
			if err != nil {
				return apierror.NewValidation("Parameter time should be an RFC3339 datetime")
			}
		}

		crowdDensity, err := aiService.CrowdDensity(c.UserContext(), routeID, at)
		if err != nil {
			return err
		}

		return successResponse(c, crowdDensity)
	}
}
