package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postloom/postloom/internal/apperr"
	"github.com/postloom/postloom/internal/service"
	"github.com/postloom/postloom/internal/transfer"
)

type SettingsHandler struct {
	s service.QueueSettingsService
}

func NewSettingsHandler(service service.QueueSettingsService) *SettingsHandler {
	return &SettingsHandler{s: service}
}

func (h *SettingsHandler) GetQueueSettings(c *fiber.Ctx) error {
	userID := GetUserID(c)
	accountID := int64(c.QueryInt("accountId", 0))

	settings, err := h.s.Get(c.Context(), userID, accountID)
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}

func (h *SettingsHandler) UpdateQueueSettings(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var upd transfer.QueueSettingsUpdate
	if err := c.BodyParser(&upd); err != nil {
		return HandleError(c, apperr.Validation("unable to parse json"))
	}

	settings, err := h.s.Update(c.Context(), userID, &upd)
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}
