package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/agency-cockpit/configs"
	"github.com/maheshrc27/agency-cockpit/internal/transfer"
	"github.com/maheshrc27/agency-cockpit/pkg/utils"
)

type SessionMiddleware struct {
	cfg config.Config
}

func NewSessionMiddleware(cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{cfg: cfg}
}

// RequireSession resolves the session cookie into the "account_id" local.
// Requests without a valid session never reach the client views.
func (m *SessionMiddleware) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not logged in",
			})
		}

		claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString, transfer.TokenKindSession)
		if err != nil {
			c.Cookie(&fiber.Cookie{
				Name:   m.cfg.CookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1,
			})

			slog.Info("session validation failed", "error", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired session",
			})
		}

		c.Locals("account_id", claims.AccountID)
		return c.Next()
	}
}
