package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/transitflow/transitflow/pkg/ai"
	"github.com/transitflow/transitflow/pkg/api/routes"
	"github.com/transitflow/transitflow/pkg/apierror"
	"github.com/transitflow/transitflow/pkg/config"
	"github.com/transitflow/transitflow/pkg/dataset"
	"github.com/transitflow/transitflow/pkg/planner"
	"github.com/transitflow/transitflow/pkg/transit"
	"github.com/transitflow/transitflow/pkg/translink"
)

type Server struct {
	App *fiber.App
}

func NewServer(cfg config.Config, ds *dataset.Dataset) *Server {
	transitService := transit.NewService(ds, ds.Latency.Transit(), translink.NewClient(cfg.TransLink))
	plannerService := planner.NewService(ds, ds.Latency.Planner())
	aiService := ai.NewService(ds, ds.Latency.AI())

	webApp := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	webApp.Use(NewLogger())
	webApp.Use(NewRecover(cfg.IsDevelopment()))
	webApp.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
	}))

	routes.MiscRouter(webApp)

	apiGroup := webApp.Group("/api")

	routes.TransitRouter(apiGroup.Group("/transit"), transitService)
	routes.RoutingRouter(apiGroup.Group("/routes"), plannerService)
	routes.AIRouter(apiGroup.Group("/ai"), aiService)

	webApp.Use(func(c *fiber.Ctx) error {
		return apierror.NewNotFound("The requested endpoint does not exist")
	})

	return &Server{App: webApp}
}

func (s *Server) Listen(listen string) error {
	return s.App.Listen(listen)
}

// errorHandler turns any error escaping a handler into the uniform response
// envelope
func errorHandler(c *fiber.Ctx, err error) error {
	c.Status(apierror.StatusCode(err))

	return c.JSON(routes.Envelope{
		Success: false,
		Error:   err.Error(),
	})
}
