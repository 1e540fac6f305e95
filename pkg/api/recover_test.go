package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panicApp(isDevelopment bool) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(NewRecover(isDevelopment))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("database exploded")
	})

	return app
}

func TestRecoverHidesPanicDetailInProduction(t *testing.T) {
	app := panicApp(false)

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)

	var wrapped testEnvelope
	require.NoError(t, json.NewDecoder(response.Body).Decode(&wrapped))
	assert.False(t, wrapped.Success)
	assert.Equal(t, "Something went wrong", wrapped.Error)
}

func TestRecoverSurfacesPanicDetailInDevelopment(t *testing.T) {
	app := panicApp(true)

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)

	var wrapped testEnvelope
	require.NoError(t, json.NewDecoder(response.Body).Decode(&wrapped))
	assert.Equal(t, "database exploded", wrapped.Error)
}
