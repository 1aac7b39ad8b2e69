package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/job-wingman/internal/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", BearerAuth(testSecret), func(c *fiber.Ctx) error {
		userID := c.Locals(UserIDKey).(uuid.UUID)
		return c.JSON(fiber.Map{"userId": userID.String()})
	})
	return app
}

func TestMissingTokenUnauthorized(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGarbageTokenForbidden(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestExpiredTokenForbidden(t *testing.T) {
	app := newTestApp()
	token, err := auth.GenerateToken(testSecret, uuid.New(), -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestValidTokenPasses(t *testing.T) {
	app := newTestApp()
	token, err := auth.GenerateToken(testSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
