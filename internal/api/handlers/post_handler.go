package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postloom/postloom/internal/apperr"
	"github.com/postloom/postloom/internal/models"
	"github.com/postloom/postloom/internal/service"
	"github.com/postloom/postloom/internal/transfer"
)

type PostHandler struct {
	s service.PostService
	l service.ListingService
}

func NewPostHandler(postService service.PostService, listingService service.ListingService) *PostHandler {
	return &PostHandler{s: postService, l: listingService}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		return HandleError(c, apperr.Validation("unable to parse json"))
	}

	postID, err := h.s.Create(c.Context(), userID, &pc)
	if err != nil {
		return HandleError(c, err)
	}

	post, err := h.s.Get(c.Context(), userID, postID)
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID, err := c.ParamsInt("id")
	if err != nil {
		return HandleError(c, apperr.Validation("invalid post id"))
	}

	post, err := h.s.Get(c.Context(), userID, int64(postID))
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) GetPostHistory(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID, err := c.ParamsInt("id")
	if err != nil {
		return HandleError(c, apperr.Validation("invalid post id"))
	}

	history, err := h.s.History(c.Context(), userID, int64(postID))
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(history)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID, err := c.ParamsInt("id")
	if err != nil {
		return HandleError(c, apperr.Validation("invalid post id"))
	}

	var pu transfer.PostUpdate
	if err := c.BodyParser(&pu); err != nil {
		return HandleError(c, apperr.Validation("unable to parse json"))
	}

	post, err := h.s.Update(c.Context(), userID, int64(postID), &pu)
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID, err := c.ParamsInt("id")
	if err != nil {
		return HandleError(c, apperr.Validation("invalid post id"))
	}

	if err := h.s.Remove(c.Context(), userID, int64(postID)); err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "post removed",
	})
}

func (h *PostHandler) SchedulePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID, err := c.ParamsInt("id")
	if err != nil {
		return HandleError(c, apperr.Validation("invalid post id"))
	}

	var req transfer.PostSchedule
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, apperr.Validation("unable to parse json"))
	}
	if req.ScheduledAt == "" {
		return HandleError(c, apperr.Validation("scheduledAt is required"))
	}

	if err := h.s.Schedule(c.Context(), userID, int64(postID), req.ScheduledAt); err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "post scheduled",
	})
}

func (h *PostHandler) ApprovePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID, err := c.ParamsInt("id")
	if err != nil {
		return HandleError(c, apperr.Validation("invalid post id"))
	}

	post, err := h.s.Approve(c.Context(), userID, int64(postID))
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) RejectPost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID, err := c.ParamsInt("id")
	if err != nil {
		return HandleError(c, apperr.Validation("invalid post id"))
	}

	post, err := h.s.Reject(c.Context(), userID, int64(postID))
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) DuplicatePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID, err := c.ParamsInt("id")
	if err != nil {
		return HandleError(c, apperr.Validation("invalid post id"))
	}

	newID, err := h.s.Duplicate(c.Context(), userID, int64(postID))
	if err != nil {
		return HandleError(c, err)
	}

	post, err := h.s.Get(c.Context(), userID, newID)
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	return h.list(c, "")
}

func (h *PostHandler) ListDelivered(c *fiber.Ctx) error {
	return h.list(c, models.PostStatusPublished)
}

func (h *PostHandler) ListQueued(c *fiber.Ctx) error {
	return h.list(c, models.PostStatusScheduled)
}

func (h *PostHandler) ListDrafts(c *fiber.Ctx) error {
	return h.list(c, models.PostStatusDraft)
}

func (h *PostHandler) ListPendingApproval(c *fiber.Ctx) error {
	return h.list(c, models.PostStatusPendingApproval)
}

func (h *PostHandler) list(c *fiber.Ctx, status string) error {
	userID := GetUserID(c)

	filter, err := parseListFilter(c)
	if err != nil {
		return HandleError(c, err)
	}
	if status != "" {
		filter.Status = status
	}

	result, err := h.l.List(c.Context(), userID, filter)
	if err != nil {
		return HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
