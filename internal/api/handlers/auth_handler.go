package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/agency-cockpit/configs"
	"github.com/maheshrc27/agency-cockpit/internal/service"
	"github.com/maheshrc27/agency-cockpit/internal/transfer"
	"github.com/maheshrc27/agency-cockpit/pkg/utils"
)

const sessionDuration = 24 * time.Hour

type AuthHandler struct {
	s   service.AccountService
	cfg config.Config
}

func NewAuthHandler(cfg config.Config, service service.AccountService) *AuthHandler {
	return &AuthHandler{s: service, cfg: cfg}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in transfer.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	account, err := h.s.Authenticate(c.Context(), in.Username, in.Password)
	if err != nil {
		return sendError(c, err)
	}

	token, err := utils.GenerateToken(h.cfg.SecretKey, strconv.FormatInt(account.ID, 10), transfer.TokenKindSession, sessionDuration)
	if err != nil {
		return sendError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Now().Add(sessionDuration),
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":           account.ID,
		"company_name": account.CompanyName,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		HTTPOnly: true,
		Path:     "/",
		MaxAge:   -1,
	})
	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	overview, err := h.s.Overview(c.Context(), GetAccountID(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(overview)
}
