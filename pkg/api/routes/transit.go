package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/transitflow/transitflow/pkg/apierror"
	"github.com/transitflow/transitflow/pkg/transit"
)

func TransitRouter(router fiber.Router, transitService *transit.Service) {
	router.Get("/routes", listRoutes(transitService))
	router.Get("/stops", listStops(transitService))
	router.Get("/arrivals/:stopId", getArrivals(transitService))
	router.Get("/vehicles", listVehicles(transitService))
	router.Get("/bus-lines/:routeNo", getBusLines(transitService))
	router.Get("/network", getNetwork(transitService))
}

func listRoutes(transitService *transit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transitRoutes, err := transitService.ListRoutes(c.UserContext())
		if err != nil {
			return err
		}

		return successResponse(c, transitRoutes)
	}
}

func listStops(transitService *transit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stops, err := transitService.ListStops(c.UserContext())
		if err != nil {
			return err
		}

		return successResponse(c, stops)
	}
}

func getArrivals(transitService *transit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stopID, err := strconv.Atoi(c.Params("stopId"))
		if err != nil {
			return apierror.NewValidation("Parameter stopId should be an integer")
		}

		arrivalBoard, err := transitService.GetArrivals(c.UserContext(), stopID)
		if err != nil {
			return err
		}

		return successResponse(c, arrivalBoard)
	}
}

func listVehicles(transitService *transit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vehicles, err := transitService.ListVehicles(c.UserContext())
		if err != nil {
			return err
		}

		return successResponse(c, vehicles)
	}
}

func getBusLines(transitService *transit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		busLines := transitService.GetBusLines(c.UserContext(), c.Params("routeNo"))

		return successResponse(c, busLines)
	}
}

func getNetwork(transitService *transit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		network, err := transitService.GetNetwork(c.UserContext())
		if err != nil {
			return err
		}

		return successResponse(c, network)
	}
}
