package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/agency-cockpit/internal/repository"
	"github.com/maheshrc27/agency-cockpit/internal/service"
)

func GetAccountID(c *fiber.Ctx) int64 {
	accountID, _ := strconv.ParseInt(c.Locals("account_id").(string), 10, 64)
	return accountID
}

// errorStatus maps service and repository errors to a status and a message
// safe to show.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return fiber.StatusBadRequest, "Please fill in all fields"
	case errors.Is(err, service.ErrUnknownPlatform):
		return fiber.StatusBadRequest, "Unknown platform"
	case errors.Is(err, service.ErrInvalidState):
		return fiber.StatusBadRequest, "Invalid or expired state"
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid username or password"
	case errors.Is(err, repository.ErrAccountNotFound):
		return fiber.StatusNotFound, "Account not found"
	case errors.Is(err, repository.ErrDuplicateUsername):
		return fiber.StatusConflict, "Username already taken"
	case errors.Is(err, service.ErrCodeAlreadyUsed):
		return fiber.StatusConflict, "Authorization code was already used"
	case errors.Is(err, service.ErrUnsupportedMedia):
		return fiber.StatusUnsupportedMediaType, "Only png, jpg and mp4 files are supported"
	case errors.Is(err, service.ErrTokenExchange):
		return fiber.StatusBadGateway, "Unable to connect Facebook, please try again"
	default:
		return fiber.StatusInternalServerError, "Something went wrong"
	}
}

func sendError(c *fiber.Ctx, err error) error {
	status, message := errorStatus(err)
	if status == fiber.StatusInternalServerError || status == fiber.StatusBadGateway {
		slog.Error(err.Error(), "path", c.Path())
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
