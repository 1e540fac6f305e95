package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/transitflow/transitflow/pkg/apierror"
	"github.com/transitflow/transitflow/pkg/planner"
	"github.com/transitflow/transitflow/pkg/tdf"
)

func RoutingRouter(router fiber.Router, plannerService *planner.Service) {
	router.Post("/plan", planRoute(plannerService))
	router.Get("/alternatives", getAlternatives(plannerService))
	router.Post("/optimize", optimizeRoute(plannerService))
}

// responseGroups selects the serialisation groups for an itinerary response.
// Leg level detail is only included when detailed=true
func responseGroups(c *fiber.Ctx) []string {
	groups := []string{"basic"}
	if c.QueryBool("detailed", false) {
		groups = append(groups, "detailed")
	}

	return groups
}

type planRequest struct {
	Origin        string   `json:"origin" validate:"required"`
	Destination   string   `json:"destination" validate:"required"`
	DepartureTime string   `json:"departureTime"`
	Preferences   []string `json:"preferences"`
}

type optimizeRequest struct {
	Route       *tdf.Itinerary `json:"route" validate:"required"`
	Preferences []string       `json:"preferences"`
}

func planRoute(plannerService *planner.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request planRequest
		if err := c.BodyParser(&request); err != nil {
			return apierror.NewValidation("Request body must be valid JSON")
		}

		if err := validate.Struct(&request); err != nil {
			return apierror.NewValidation("Origin and destination are required")
		}

		itinerary, err := plannerService.PlanRoute(c.UserContext(), request.Origin, request.Destination, request.DepartureTime, request.Preferences)
		if err != nil {
			return err
		}

		itineraryReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: responseGroups(c),
		}, itinerary)
		if err != nil {
			return err
		}

		return successResponse(c, itineraryReduced)
	}
}

func getAlternatives(plannerService *planner.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Query("origin")
		destination := c.Query("destination")

		if origin == "" || destination == "" {
			return apierror.NewValidation("Origin and destination are required")
		}

		alternatives, err := plannerService.Alternatives(c.UserContext(), origin, destination)
		if err != nil {
			return err
		}

		return successResponse(c, alternatives)
	}
}

func optimizeRoute(plannerService *planner.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request optimizeRequest
		if err := c.BodyParser(&request); err != nil {
			return apierror.NewValidation("Request body must be valid JSON")
		}

		if err := validate.Struct(&request); err != nil {
			return apierror.NewValidation("Route data is required")
		}

		optimized, err := plannerService.Optimize(c.UserContext(), *request.Route, request.Preferences)
		if err != nil {
			return err
		}

		optimizedReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: responseGroups(c),
		}, optimized)
		if err != nil {
			return err
		}

		return successResponse(c, optimizedReduced)
	}
}
