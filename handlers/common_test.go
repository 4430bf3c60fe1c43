package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/Juantrevi/Backend-Learning-Management-System/services"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRespondErrorMapping(t *testing.T) {
	require.Equal(t, http.StatusNotFound, statusFor(t, services.ErrOrderNotFound))
	require.Equal(t, http.StatusNotFound, statusFor(t, services.ErrCourseNotFound))
	require.Equal(t, http.StatusBadRequest, statusFor(t, services.ErrEmailTaken))
	require.Equal(t, http.StatusBadRequest, statusFor(t, services.ErrPaymentFailed))
	require.Equal(t, http.StatusBadGateway, statusFor(t, services.ErrProviderError))
	require.Equal(t, http.StatusUnauthorized, statusFor(t, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")))
}
