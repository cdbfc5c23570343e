package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/agency-cockpit/internal/service"
	"github.com/maheshrc27/agency-cockpit/internal/transfer"
)

type AccountHandler struct {
	s  service.AccountService
	ps service.PostService
}

func NewAccountHandler(s service.AccountService, ps service.PostService) *AccountHandler {
	return &AccountHandler{s: s, ps: ps}
}

func (h *AccountHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.ps.Dashboard(c.Context())
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dashboard)
}

func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	accounts, err := h.s.List(c.Context())
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(accounts)
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var in transfer.AccountCreation
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	account, err := h.s.Create(c.Context(), &in)
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(transfer.AccountListing{
		ID:          account.ID,
		CompanyName: account.CompanyName,
		Username:    account.Username,
	})
}
