package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	config "github.com/postloom/postloom/configs"
	"github.com/postloom/postloom/internal/service"
	"github.com/postloom/postloom/pkg/utils"
)

type IntegrationHandler struct {
	s   service.IntegrationService
	cfg config.Config
}

func NewIntegrationHandler(cfg config.Config, service service.IntegrationService) *IntegrationHandler {
	return &IntegrationHandler{s: service, cfg: cfg}
}

// AddIntegration starts the connect flow. The caller's session token rides
// along as OAuth state so the callback can attribute the new account.
func (h *IntegrationHandler) AddIntegration(c *fiber.Ctx) error {
	platform := c.Params("platform")
	tokenString := c.Cookies(h.cfg.CookieName)

	authURL, err := h.s.GetAuthURL(platform, tokenString)
	if err != nil {
		return HandleError(c, err)
	}

	return c.Redirect(authURL)
}

func (h *IntegrationHandler) CallbackHandler(c *fiber.Ctx) error {
	platform := c.Params("platform")
	code := c.Query("code")
	state := c.Query("state")

	claims, err := utils.ValidateToken(h.cfg.SecretKey, state)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "invalid state token",
		})
	}

	c.Locals("user_id", claims.UserID)
	userID := GetUserID(c)

	if err := h.s.Callback(c.Context(), userID, platform, code); err != nil {
		return HandleError(c, err)
	}

	return c.Redirect(fmt.Sprintf("%s/accounts", h.cfg.FrontendURL), fiber.StatusTemporaryRedirect)
}

func (h *IntegrationHandler) ListIntegrations(c *fiber.Ctx) error {
	userID := GetUserID(c)

	integrations, err := h.s.List(c.Context(), userID)
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(integrations)
}

func (h *IntegrationHandler) DeleteIntegration(c *fiber.Ctx) error {
	userID := GetUserID(c)
	integrationID := c.QueryInt("id", 0)

	if err := h.s.Remove(c.Context(), userID, int64(integrationID)); err != nil {
		return HandleError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
