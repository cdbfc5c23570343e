package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/agency-cockpit/configs"
	"github.com/maheshrc27/agency-cockpit/internal/transfer"
	"github.com/maheshrc27/agency-cockpit/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg config.Config) *fiber.App {
	app := fiber.New()
	app.Use(NewSessionMiddleware(cfg).RequireSession())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("account_id").(string))
	})
	return app
}

func TestRequireSession(t *testing.T) {
	cfg := config.Config{SecretKey: "secret", CookieName: "agency_session"}
	app := newApp(cfg)

	session, err := utils.GenerateToken(cfg.SecretKey, "4", transfer.TokenKindSession, time.Hour)
	require.NoError(t, err)
	state, err := utils.GenerateToken(cfg.SecretKey, "4", transfer.TokenKindState, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie string
		want   int
	}{
		{"no cookie", "", http.StatusUnauthorized},
		{"garbage", "not-a-token", http.StatusUnauthorized},
		{"state token", state, http.StatusUnauthorized},
		{"session", session, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: tt.cookie})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
