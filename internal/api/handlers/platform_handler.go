package handlers

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/agency-cockpit/configs"
	"github.com/maheshrc27/agency-cockpit/internal/models"
	"github.com/maheshrc27/agency-cockpit/internal/service"
	"github.com/maheshrc27/agency-cockpit/internal/transfer"
)

type PlatformHandler struct {
	ps  service.PlatformService
	as  service.AccountService
	cfg config.Config
}

func NewPlatformHandler(ps service.PlatformService, as service.AccountService, cfg config.Config) *PlatformHandler {
	return &PlatformHandler{
		ps:  ps,
		as:  as,
		cfg: cfg,
	}
}

func (h *PlatformHandler) ConnectFacebook(c *fiber.Ctx) error {
	authURL, err := h.ps.GetAuthURL(c.Context(), GetAccountID(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.Redirect(authURL)
}

func (h *PlatformHandler) FacebookCallback(c *fiber.Ctx) error {
	if reason := c.Query("error_description", c.Query("error")); reason != "" {
		slog.Info("facebook login cancelled", "reason", reason)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": reason,
		})
	}

	accountID, err := h.ps.Callback(c.Context(), c.Query("code"), c.Query("state"))
	if err != nil {
		return sendError(c, err)
	}

	slog.Info("facebook connected", "account_id", accountID)
	redirectURL := fmt.Sprintf("%s/client?connected=facebook", h.cfg.FrontendURL)
	return c.Redirect(redirectURL, fiber.StatusTemporaryRedirect)
}

// SetToken stores a token typed in by the client.
func (h *PlatformHandler) SetToken(c *fiber.Ctx) error {
	var in transfer.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}
	if strings.TrimSpace(in.Token) == "" {
		return sendError(c, service.ErrMissingFields)
	}

	err := h.as.UpdateToken(c.Context(), GetAccountID(c), models.Platform(c.Params("platform")), in.Token)
	if err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *PlatformHandler) Disconnect(c *fiber.Ctx) error {
	err := h.as.Disconnect(c.Context(), GetAccountID(c), models.Platform(c.Params("platform")))
	if err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
