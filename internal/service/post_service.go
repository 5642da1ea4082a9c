package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/postloom/postloom/internal/apperr"
	"github.com/postloom/postloom/internal/models"
	"github.com/postloom/postloom/internal/repository"
	"github.com/postloom/postloom/internal/transfer"
)

var validate = validator.New()

type PostService interface {
	Create(ctx context.Context, userID int64, pc *transfer.PostCreation) (int64, error)
	Get(ctx context.Context, userID, postID int64) (*transfer.PostWithIntegration, error)
	Update(ctx context.Context, userID, postID int64, pu *transfer.PostUpdate) (*models.Post, error)
	Schedule(ctx context.Context, userID, postID int64, scheduledAt string) error
	Approve(ctx context.Context, userID, postID int64) (*models.Post, error)
	Reject(ctx context.Context, userID, postID int64) (*models.Post, error)
	Duplicate(ctx context.Context, userID, postID int64) (int64, error)
	Remove(ctx context.Context, userID, postID int64) error
	History(ctx context.Context, userID, postID int64) ([]*models.PostHistory, error)
}

type postService struct {
	db *sql.DB
	pr repository.PostRepository
	ph repository.PostHistoryRepository
	ir repository.IntegrationRepository
}

func NewPostService(
	db *sql.DB,
	pr repository.PostRepository,
	ph repository.PostHistoryRepository,
	ir repository.IntegrationRepository) PostService {
	return &postService{
		db: db,
		pr: pr,
		ph: ph,
		ir: ir,
	}
}

func (s *postService) Create(ctx context.Context, userID int64, pc *transfer.PostCreation) (int64, error) {
	if pc == nil {
		return 0, apperr.Validation("post data is required")
	}
	if err := validate.Struct(pc); err != nil {
		slog.Info(err.Error())
		return 0, apperr.Validation(err.Error())
	}

	if pc.IntegrationID != nil {
		exists, err := s.ir.CheckByUserID(ctx, *pc.IntegrationID, userID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, apperr.Validation("integration %d does not exist", *pc.IntegrationID)
		}
	}

	if pc.ExternalPostID != "" && pc.IntegrationID != nil {
		taken, err := s.pr.CheckExternalPostID(ctx, *pc.IntegrationID, pc.ExternalPostID, 0)
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, apperr.Validation("external post id %s already exists for integration %d", pc.ExternalPostID, *pc.IntegrationID)
		}
	}

	status := pc.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	postType := pc.Type
	if postType == "" {
		postType = models.PostTypeText
	}

	post := models.Post{
		UserID:         userID,
		IntegrationID:  pc.IntegrationID,
		Platform:       pc.Platform,
		Content:        pc.Content,
		MediaURLs:      pc.MediaURLs,
		Type:           postType,
		Status:         status,
		ApprovalStatus: models.ApprovalStatusPending,
		ScheduledAt:    pc.ScheduledAt,
		PlatformData:   pc.PlatformData,
		Tags:           pc.Tags,
		Location:       pc.Location,
		Link:           pc.Link,
		ExternalPostID: pc.ExternalPostID,
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	postID, err := s.pr.Create(ctx, tx, &post)
	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", err)
	}

	// Every post starts with a version 1 snapshot.
	entry := models.PostHistory{
		PostID:    postID,
		Version:   1,
		Content:   post.Content,
		MediaURLs: post.MediaURLs,
		UpdatedAt: time.Now(),
		UpdatedBy: userID,
	}
	if _, err = s.ph.Create(ctx, tx, &entry); err != nil {
		return 0, fmt.Errorf("error creating post history: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return postID, nil
}

func (s *postService) Get(ctx context.Context, userID, postID int64) (*transfer.PostWithIntegration, error) {
	post, err := s.pr.GetWithIntegration(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrNotFound
	}
	return post, nil
}

// Update applies every supplied field last-write-wins and appends a history
// entry only when the content itself changed. Media-only or metadata-only
// edits never version.
func (s *postService) Update(ctx context.Context, userID, postID int64, pu *transfer.PostUpdate) (*models.Post, error) {
	if pu == nil {
		return nil, apperr.Validation("update data is required")
	}
	if err := validate.Struct(pu); err != nil {
		slog.Info(err.Error())
		return nil, apperr.Validation(err.Error())
	}

	post, err := s.pr.GetByOwner(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrNotFound
	}

	contentChanged := pu.Content != nil && *pu.Content != post.Content
	applyUpdate(post, pu)

	if (pu.ExternalPostID != nil || pu.IntegrationID != nil) && post.ExternalPostID != "" && post.IntegrationID != nil {
		taken, terr := s.pr.CheckExternalPostID(ctx, *post.IntegrationID, post.ExternalPostID, post.ID)
		if terr != nil {
			return nil, terr
		}
		if taken {
			return nil, apperr.Validation("external post id %s already exists for integration %d", post.ExternalPostID, *post.IntegrationID)
		}
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	if err = s.pr.Update(ctx, tx, post); err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	if contentChanged {
		version, verr := s.ph.MaxVersion(ctx, tx, postID)
		if verr != nil {
			err = verr
			return nil, fmt.Errorf("error reading post history: %w", err)
		}

		entry := models.PostHistory{
			PostID:    postID,
			Version:   version + 1,
			Content:   post.Content,
			MediaURLs: post.MediaURLs,
			UpdatedAt: time.Now(),
			UpdatedBy: userID,
		}
		if _, err = s.ph.Create(ctx, tx, &entry); err != nil {
			return nil, fmt.Errorf("error appending post history: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return post, nil
}

func applyUpdate(post *models.Post, pu *transfer.PostUpdate) {
	if pu.IntegrationID != nil {
		post.IntegrationID = pu.IntegrationID
	}
	if pu.Platform != nil {
		post.Platform = *pu.Platform
	}
	if pu.Content != nil {
		post.Content = *pu.Content
	}
	if pu.MediaURLs != nil {
		post.MediaURLs = *pu.MediaURLs
	}
	if pu.Type != nil {
		post.Type = *pu.Type
	}
	if pu.Status != nil {
		post.Status = *pu.Status
	}
	if pu.ApprovalStatus != nil {
		post.ApprovalStatus = *pu.ApprovalStatus
	}
	if pu.ScheduledAt != nil {
		post.ScheduledAt = pu.ScheduledAt
	}
	if pu.PublishedAt != nil {
		post.PublishedAt = pu.PublishedAt
	}
	if pu.PlatformData != nil {
		post.PlatformData = pu.PlatformData
	}
	if pu.Tags != nil {
		post.Tags = *pu.Tags
	}
	if pu.Location != nil {
		post.Location = pu.Location
	}
	if pu.Link != nil {
		post.Link = *pu.Link
	}
	if pu.ExternalPostID != nil {
		post.ExternalPostID = *pu.ExternalPostID
	}
}

// Schedule records scheduling intent. The timestamp is not checked against
// the account's queue slots and may be in the past.
func (s *postService) Schedule(ctx context.Context, userID, postID int64, scheduledAt string) error {
	when, err := time.Parse(time.RFC3339, scheduledAt)
	if err != nil {
		slog.Info(err.Error())
		return apperr.Validation("scheduledAt must be an RFC 3339 timestamp")
	}

	found, err := s.pr.SetSchedule(ctx, postID, userID, when)
	if err != nil {
		return fmt.Errorf("error scheduling post: %w", err)
	}
	if !found {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *postService) Approve(ctx context.Context, userID, postID int64) (*models.Post, error) {
	post, err := s.pr.GetByOwner(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrNotFound
	}

	// Approval only moves status off pending-approval; any other status
	// keeps its value and just gains the approval fields.
	status := post.Status
	if post.Status == models.PostStatusPendingApproval {
		if post.ScheduledAt != nil {
			status = models.PostStatusScheduled
		} else {
			status = models.PostStatusDraft
		}
	}

	now := time.Now()
	if err := s.pr.SetApproval(ctx, postID, models.ApprovalStatusApproved, &userID, &now, status); err != nil {
		return nil, fmt.Errorf("error approving post: %w", err)
	}

	post.ApprovalStatus = models.ApprovalStatusApproved
	post.ApprovedBy = &userID
	post.ApprovedAt = &now
	post.Status = status
	return post, nil
}

func (s *postService) Reject(ctx context.Context, userID, postID int64) (*models.Post, error) {
	post, err := s.pr.GetByOwner(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrNotFound
	}

	// A rejection always sends the post back to draft.
	if err := s.pr.SetApproval(ctx, postID, models.ApprovalStatusRejected, nil, nil, models.PostStatusDraft); err != nil {
		return nil, fmt.Errorf("error rejecting post: %w", err)
	}

	post.ApprovalStatus = models.ApprovalStatusRejected
	post.Status = models.PostStatusDraft
	return post, nil
}

// Duplicate clones the source's content fields into a fresh draft with its
// own single-entry history. Scheduling, metrics and prior history are not
// carried over.
func (s *postService) Duplicate(ctx context.Context, userID, postID int64) (int64, error) {
	source, err := s.pr.GetByOwner(ctx, postID, userID)
	if err != nil {
		return 0, err
	}
	if source == nil {
		return 0, apperr.ErrNotFound
	}

	clone := models.Post{
		UserID:         userID,
		Platform:       source.Platform,
		Content:        source.Content,
		MediaURLs:      source.MediaURLs,
		Type:           source.Type,
		Tags:           source.Tags,
		Location:       source.Location,
		Status:         models.PostStatusDraft,
		ApprovalStatus: models.ApprovalStatusPending,
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	newID, err := s.pr.Create(ctx, tx, &clone)
	if err != nil {
		return 0, fmt.Errorf("error duplicating post: %w", err)
	}

	entry := models.PostHistory{
		PostID:    newID,
		Version:   1,
		Content:   clone.Content,
		MediaURLs: clone.MediaURLs,
		UpdatedAt: time.Now(),
		UpdatedBy: userID,
	}
	if _, err = s.ph.Create(ctx, tx, &entry); err != nil {
		return 0, fmt.Errorf("error creating post history: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return newID, nil
}

func (s *postService) Remove(ctx context.Context, userID, postID int64) error {
	found, err := s.pr.Remove(ctx, postID, userID)
	if err != nil {
		return fmt.Errorf("error removing post: %w", err)
	}
	if !found {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *postService) History(ctx context.Context, userID, postID int64) ([]*models.PostHistory, error) {
	post, err := s.pr.GetByOwner(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrNotFound
	}
	return s.ph.ListByPostID(ctx, postID)
}
