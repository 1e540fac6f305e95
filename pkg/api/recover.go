package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/transitflow/transitflow/pkg/apierror"
)

// NewRecover converts handler panics into internal errors. Outside of
// development mode the panic message is replaced with a generic one so
// nothing internal leaks to clients.
func NewRecover(isDevelopment bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error().
					Interface("panic", recovered).
					Str("method", c.Method()).
					Str("path", c.Path()).
					Msg("Recovered from panic in handler")

				message := "Something went wrong"
				if isDevelopment {
					message = fmt.Sprintf("%v", recovered)
				}

				err = apierror.NewInternal(message)
			}
		}()

		return c.Next()
	}
}
