package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/postloom/postloom/internal/apperr"
	"github.com/postloom/postloom/internal/transfer"
)

func GetUserID(c *fiber.Ctx) int64 {
	userID, _ := strconv.Atoi(c.Locals("user_id").(string))
	return int64(userID)
}

// HandleError translates service errors into the HTTP taxonomy. Anything
// unrecognized is a 500 with a generic message; internals stay in the logs.
func HandleError(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "resource not found",
			"code":    "not_found",
		})
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": ve.Reason,
			"code":    "validation_error",
		})
	case errors.Is(err, apperr.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "authentication required",
			"code":    "unauthenticated",
		})
	default:
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "something went wrong",
		})
	}
}

// parseListFilter reads the listing query parameters. Dates accept RFC 3339
// or plain YYYY-MM-DD.
func parseListFilter(c *fiber.Ctx) (*transfer.PostListFilter, error) {
	f := transfer.PostListFilter{
		Status:        c.Query("status"),
		Platform:      c.Query("platform"),
		IntegrationID: int64(c.QueryInt("integrationId", 0)),
		SearchTerm:    c.Query("searchTerm"),
		Page:          c.QueryInt("page", 1),
		Limit:         c.QueryInt("limit", 10),
	}

	if raw := c.Query("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return nil, apperr.Validation("invalid startDate %q", raw)
		}
		f.StartDate = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return nil, apperr.Validation("invalid endDate %q", raw)
		}
		f.EndDate = &t
	}

	return &f, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
