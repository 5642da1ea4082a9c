package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/postloom/postloom/internal/apperr"
	"github.com/postloom/postloom/internal/models"
	"github.com/postloom/postloom/internal/transfer"
)

// MockPostRepository is a mock implementation of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error) {
	args := m.Called(ctx, tx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByOwner(ctx context.Context, postID, userID int64) (*models.Post, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetWithIntegration(ctx context.Context, postID, userID int64) (*transfer.PostWithIntegration, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.PostWithIntegration), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, tx *sql.Tx, post *models.Post) error {
	args := m.Called(ctx, tx, post)
	return args.Error(0)
}

func (m *MockPostRepository) SetSchedule(ctx context.Context, postID, userID int64, scheduledAt time.Time) (bool, error) {
	args := m.Called(ctx, postID, userID, scheduledAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) SetApproval(ctx context.Context, postID int64, approvalStatus string, approvedBy *int64, approvedAt *time.Time, status string) error {
	args := m.Called(ctx, postID, approvalStatus, approvedBy, approvedAt, status)
	return args.Error(0)
}

func (m *MockPostRepository) Remove(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) CheckExternalPostID(ctx context.Context, integrationID int64, externalPostID string, excludeID int64) (bool, error) {
	args := m.Called(ctx, integrationID, externalPostID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, userID int64, f *transfer.PostListFilter) ([]*transfer.PostWithIntegration, int, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*transfer.PostWithIntegration), args.Int(1), args.Error(2)
}

func (m *MockPostRepository) ListIDsByStatus(ctx context.Context, status string) ([]int64, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockPostRepository) UpdateMetrics(ctx context.Context, postID int64, metrics models.PostMetrics) error {
	args := m.Called(ctx, postID, metrics)
	return args.Error(0)
}

// MockPostHistoryRepository is a mock implementation of the PostHistoryRepository interface
type MockPostHistoryRepository struct {
	mock.Mock
}

func (m *MockPostHistoryRepository) Create(ctx context.Context, tx *sql.Tx, entry *models.PostHistory) (int64, error) {
	args := m.Called(ctx, tx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostHistoryRepository) ListByPostID(ctx context.Context, postID int64) ([]*models.PostHistory, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PostHistory), args.Error(1)
}

func (m *MockPostHistoryRepository) MaxVersion(ctx context.Context, tx *sql.Tx, postID int64) (int, error) {
	args := m.Called(ctx, tx, postID)
	return args.Int(0), args.Error(1)
}

// MockIntegrationRepository is a mock implementation of the IntegrationRepository interface
type MockIntegrationRepository struct {
	mock.Mock
}

func (m *MockIntegrationRepository) Create(ctx context.Context, tx *sql.Tx, in *models.Integration) (int64, error) {
	args := m.Called(ctx, tx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIntegrationRepository) GetByID(ctx context.Context, id int64) (*models.Integration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Integration), args.Error(1)
}

func (m *MockIntegrationRepository) GetByPlatformUserID(ctx context.Context, userID int64, platform, platformUserID string) (*models.Integration, error) {
	args := m.Called(ctx, userID, platform, platformUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Integration), args.Error(1)
}

func (m *MockIntegrationRepository) ListInfoByUserID(ctx context.Context, userID int64) ([]*models.Integration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Integration), args.Error(1)
}

func (m *MockIntegrationRepository) CheckByUserID(ctx context.Context, integrationID, userID int64) (bool, error) {
	args := m.Called(ctx, integrationID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockIntegrationRepository) SetToken(ctx context.Context, id int64, accessToken, refreshToken string, expiry *time.Time) error {
	args := m.Called(ctx, id, accessToken, refreshToken, expiry)
	return args.Error(0)
}

func (m *MockIntegrationRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newPostServiceForTest(t *testing.T) (PostService, sqlmock.Sqlmock, *MockPostRepository, *MockPostHistoryRepository, *MockIntegrationRepository) {
	t.Helper()

	db, dbmock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	pr := new(MockPostRepository)
	ph := new(MockPostHistoryRepository)
	ir := new(MockIntegrationRepository)
	return NewPostService(db, pr, ph, ir), dbmock, pr, ph, ir
}

func TestPostService_Create_WritesInitialHistory(t *testing.T) {
	s, dbmock, pr, ph, _ := newPostServiceForTest(t)
	ctx := context.Background()

	dbmock.ExpectBegin()
	dbmock.ExpectCommit()

	pr.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Post")).Return(int64(42), nil)
	ph.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*models.PostHistory")).Return(int64(1), nil)

	pc := &transfer.PostCreation{
		Platform: models.PlatformTwitter,
		Content:  "hello world",
	}

	postID, err := s.Create(ctx, 7, pc)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), postID)

	created := pr.Calls[0].Arguments.Get(2).(*models.Post)
	assert.Equal(t, models.PostStatusDraft, created.Status)
	assert.Equal(t, models.PostTypeText, created.Type)
	assert.Equal(t, models.ApprovalStatusPending, created.ApprovalStatus)

	entry := ph.Calls[0].Arguments.Get(2).(*models.PostHistory)
	assert.Equal(t, int64(42), entry.PostID)
	assert.Equal(t, 1, entry.Version)
	assert.Equal(t, "hello world", entry.Content)
	assert.Equal(t, int64(7), entry.UpdatedBy)

	assert.NoError(t, dbmock.ExpectationsWereMet())
	pr.AssertExpectations(t)
	ph.AssertExpectations(t)
}

func TestPostService_Create_UnknownIntegration(t *testing.T) {
	s, _, _, _, ir := newPostServiceForTest(t)
	ctx := context.Background()

	integrationID := int64(99)
	ir.On("CheckByUserID", mock.Anything, integrationID, int64(7)).Return(false, nil)

	pc := &transfer.PostCreation{
		IntegrationID: &integrationID,
		Platform:      models.PlatformTwitter,
		Content:       "hello",
	}

	_, err := s.Create(ctx, 7, pc)

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	ir.AssertExpectations(t)
}

func TestPostService_Create_DuplicateExternalPostID(t *testing.T) {
	s, _, pr, _, ir := newPostServiceForTest(t)
	ctx := context.Background()

	integrationID := int64(3)
	ir.On("CheckByUserID", mock.Anything, integrationID, int64(7)).Return(true, nil)
	pr.On("CheckExternalPostID", mock.Anything, integrationID, "ext-1", int64(0)).Return(true, nil)

	pc := &transfer.PostCreation{
		IntegrationID:  &integrationID,
		Platform:       models.PlatformTwitter,
		Content:        "hello",
		ExternalPostID: "ext-1",
	}

	_, err := s.Create(ctx, 7, pc)

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	pr.AssertNotCalled(t, "Create")
}

func TestPostService_Create_UnusedExternalPostID(t *testing.T) {
	s, dbmock, pr, ph, ir := newPostServiceForTest(t)
	ctx := context.Background()

	integrationID := int64(3)
	ir.On("CheckByUserID", mock.Anything, integrationID, int64(7)).Return(true, nil)
	pr.On("CheckExternalPostID", mock.Anything, integrationID, "ext-1", int64(0)).Return(false, nil)
	pr.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Post")).Return(int64(42), nil)
	ph.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*models.PostHistory")).Return(int64(1), nil)

	dbmock.ExpectBegin()
	dbmock.ExpectCommit()

	pc := &transfer.PostCreation{
		IntegrationID:  &integrationID,
		Platform:       models.PlatformTwitter,
		Content:        "hello",
		ExternalPostID: "ext-1",
	}

	postID, err := s.Create(ctx, 7, pc)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), postID)
	assert.NoError(t, dbmock.ExpectationsWereMet())
	pr.AssertExpectations(t)
}

func TestPostService_Create_InvalidPlatform(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	pc := &transfer.PostCreation{
		Platform: "myspace",
		Content:  "hello",
	}

	_, err := s.Create(ctx, 7, pc)

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	pr.AssertNotCalled(t, "Create")
}

func TestPostService_Update_ContentChangeAppendsHistory(t *testing.T) {
	s, dbmock, pr, ph, _ := newPostServiceForTest(t)
	ctx := context.Background()

	existing := &models.Post{ID: 42, UserID: 7, Content: "old text", Status: models.PostStatusDraft}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(existing, nil)
	pr.On("Update", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Post")).Return(nil)
	ph.On("MaxVersion", mock.Anything, mock.Anything, int64(42)).Return(3, nil)
	ph.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*models.PostHistory")).Return(int64(4), nil)

	dbmock.ExpectBegin()
	dbmock.ExpectCommit()

	content := "new text"
	updated, err := s.Update(ctx, 7, 42, &transfer.PostUpdate{Content: &content})

	assert.NoError(t, err)
	assert.Equal(t, "new text", updated.Content)

	entry := ph.Calls[1].Arguments.Get(2).(*models.PostHistory)
	assert.Equal(t, 4, entry.Version)
	assert.Equal(t, "new text", entry.Content)

	assert.NoError(t, dbmock.ExpectationsWereMet())
	ph.AssertExpectations(t)
}

func TestPostService_Update_MediaOnlyChangeSkipsHistory(t *testing.T) {
	s, dbmock, pr, ph, _ := newPostServiceForTest(t)
	ctx := context.Background()

	existing := &models.Post{ID: 42, UserID: 7, Content: "same text", Status: models.PostStatusDraft}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(existing, nil)
	pr.On("Update", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Post")).Return(nil)

	dbmock.ExpectBegin()
	dbmock.ExpectCommit()

	media := []string{"https://cdn.example.com/a.png"}
	updated, err := s.Update(ctx, 7, 42, &transfer.PostUpdate{MediaURLs: &media})

	assert.NoError(t, err)
	assert.Equal(t, media, updated.MediaURLs)
	ph.AssertNotCalled(t, "Create")
	ph.AssertNotCalled(t, "MaxVersion")
	assert.NoError(t, dbmock.ExpectationsWereMet())
}

func TestPostService_Update_SameContentSkipsHistory(t *testing.T) {
	s, dbmock, pr, ph, _ := newPostServiceForTest(t)
	ctx := context.Background()

	existing := &models.Post{ID: 42, UserID: 7, Content: "same text", Status: models.PostStatusDraft}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(existing, nil)
	pr.On("Update", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Post")).Return(nil)

	dbmock.ExpectBegin()
	dbmock.ExpectCommit()

	content := "same text"
	_, err := s.Update(ctx, 7, 42, &transfer.PostUpdate{Content: &content})

	assert.NoError(t, err)
	ph.AssertNotCalled(t, "Create")
}

func TestPostService_Update_DuplicateExternalPostID(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	integrationID := int64(3)
	existing := &models.Post{ID: 42, UserID: 7, IntegrationID: &integrationID, Content: "text", Status: models.PostStatusDraft}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(existing, nil)
	pr.On("CheckExternalPostID", mock.Anything, integrationID, "ext-1", int64(42)).Return(true, nil)

	externalID := "ext-1"
	_, err := s.Update(ctx, 7, 42, &transfer.PostUpdate{ExternalPostID: &externalID})

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	pr.AssertNotCalled(t, "Update")
}

func TestPostService_Update_KeepingExternalPostIDSucceeds(t *testing.T) {
	s, dbmock, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	integrationID := int64(3)
	existing := &models.Post{
		ID:             42,
		UserID:         7,
		IntegrationID:  &integrationID,
		Content:        "text",
		Status:         models.PostStatusDraft,
		ExternalPostID: "ext-1",
	}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(existing, nil)
	pr.On("Update", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Post")).Return(nil)

	dbmock.ExpectBegin()
	dbmock.ExpectCommit()

	link := "https://example.com"
	_, err := s.Update(ctx, 7, 42, &transfer.PostUpdate{Link: &link})

	assert.NoError(t, err)
	pr.AssertNotCalled(t, "CheckExternalPostID")
}

func TestPostService_Update_NotOwned(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(nil, nil)

	content := "new text"
	_, err := s.Update(ctx, 7, 42, &transfer.PostUpdate{Content: &content})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPostService_Schedule_RejectsBadTimestamp(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	err := s.Schedule(ctx, 7, 42, "tomorrow at noon")

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	pr.AssertNotCalled(t, "SetSchedule")
}

func TestPostService_Schedule_AcceptsPastTimestamp(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	past := time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)
	pr.On("SetSchedule", mock.Anything, int64(42), int64(7), past).Return(true, nil)

	err := s.Schedule(ctx, 7, 42, past.Format(time.RFC3339))

	assert.NoError(t, err)
	pr.AssertExpectations(t)
}

func TestPostService_Schedule_NotFound(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	pr.On("SetSchedule", mock.Anything, int64(42), int64(7), mock.AnythingOfType("time.Time")).Return(false, nil)

	err := s.Schedule(ctx, 7, 42, "2026-10-01T09:00:00Z")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPostService_Approve_PendingWithScheduleBecomesScheduled(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	when := time.Now().Add(24 * time.Hour)
	existing := &models.Post{
		ID:             42,
		UserID:         7,
		Status:         models.PostStatusPendingApproval,
		ApprovalStatus: models.ApprovalStatusPending,
		ScheduledAt:    &when,
	}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(existing, nil)
	pr.On("SetApproval", mock.Anything, int64(42), models.ApprovalStatusApproved,
		mock.AnythingOfType("*int64"), mock.AnythingOfType("*time.Time"), models.PostStatusScheduled).Return(nil)

	post, err := s.Approve(ctx, 7, 42)

	assert.NoError(t, err)
	assert.Equal(t, models.PostStatusScheduled, post.Status)
	assert.Equal(t, models.ApprovalStatusApproved, post.ApprovalStatus)
	assert.NotNil(t, post.ApprovedBy)
	assert.Equal(t, int64(7), *post.ApprovedBy)
	assert.NotNil(t, post.ApprovedAt)
	pr.AssertExpectations(t)
}

func TestPostService_Approve_PendingWithoutScheduleBecomesDraft(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	existing := &models.Post{
		ID:             42,
		UserID:         7,
		Status:         models.PostStatusPendingApproval,
		ApprovalStatus: models.ApprovalStatusPending,
	}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(existing, nil)
	pr.On("SetApproval", mock.Anything, int64(42), models.ApprovalStatusApproved,
		mock.AnythingOfType("*int64"), mock.AnythingOfType("*time.Time"), models.PostStatusDraft).Return(nil)

	post, err := s.Approve(ctx, 7, 42)

	assert.NoError(t, err)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	pr.AssertExpectations(t)
}

func TestPostService_Approve_PublishedKeepsStatus(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	existing := &models.Post{
		ID:             42,
		UserID:         7,
		Status:         models.PostStatusPublished,
		ApprovalStatus: models.ApprovalStatusPending,
	}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(existing, nil)
	pr.On("SetApproval", mock.Anything, int64(42), models.ApprovalStatusApproved,
		mock.AnythingOfType("*int64"), mock.AnythingOfType("*time.Time"), models.PostStatusPublished).Return(nil)

	post, err := s.Approve(ctx, 7, 42)

	assert.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, post.Status)
}

func TestPostService_Reject_AlwaysReturnsToDraft(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	when := time.Now().Add(24 * time.Hour)
	existing := &models.Post{
		ID:             42,
		UserID:         7,
		Status:         models.PostStatusScheduled,
		ApprovalStatus: models.ApprovalStatusPending,
		ScheduledAt:    &when,
	}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(existing, nil)
	pr.On("SetApproval", mock.Anything, int64(42), models.ApprovalStatusRejected,
		(*int64)(nil), (*time.Time)(nil), models.PostStatusDraft).Return(nil)

	post, err := s.Reject(ctx, 7, 42)

	assert.NoError(t, err)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Equal(t, models.ApprovalStatusRejected, post.ApprovalStatus)
	assert.Nil(t, post.ApprovedBy)
	pr.AssertExpectations(t)
}

func TestPostService_Duplicate_ClonesContentOnly(t *testing.T) {
	s, dbmock, pr, ph, _ := newPostServiceForTest(t)
	ctx := context.Background()

	when := time.Now().Add(24 * time.Hour)
	published := time.Now().Add(-24 * time.Hour)
	integrationID := int64(3)
	source := &models.Post{
		ID:             42,
		UserID:         7,
		IntegrationID:  &integrationID,
		Platform:       models.PlatformLinkedin,
		Content:        "reusable copy",
		MediaURLs:      []string{"https://cdn.example.com/a.png"},
		Type:           models.PostTypeImage,
		Status:         models.PostStatusPublished,
		ApprovalStatus: models.ApprovalStatusApproved,
		ScheduledAt:    &when,
		PublishedAt:    &published,
		Tags:           []string{"launch"},
		Link:           "https://example.com",
		ExternalPostID: "ext-1",
	}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(source, nil)
	pr.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Post")).Return(int64(43), nil)
	ph.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*models.PostHistory")).Return(int64(1), nil)

	dbmock.ExpectBegin()
	dbmock.ExpectCommit()

	newID, err := s.Duplicate(ctx, 7, 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(43), newID)

	clone := pr.Calls[1].Arguments.Get(2).(*models.Post)
	assert.Equal(t, models.PostStatusDraft, clone.Status)
	assert.Equal(t, models.ApprovalStatusPending, clone.ApprovalStatus)
	assert.Equal(t, "reusable copy", clone.Content)
	assert.Equal(t, source.MediaURLs, clone.MediaURLs)
	assert.Equal(t, source.Tags, clone.Tags)
	assert.Nil(t, clone.IntegrationID)
	assert.Nil(t, clone.ScheduledAt)
	assert.Nil(t, clone.PublishedAt)
	assert.Empty(t, clone.Link)
	assert.Empty(t, clone.ExternalPostID)

	entry := ph.Calls[0].Arguments.Get(2).(*models.PostHistory)
	assert.Equal(t, int64(43), entry.PostID)
	assert.Equal(t, 1, entry.Version)

	assert.NoError(t, dbmock.ExpectationsWereMet())
}

func TestPostService_Duplicate_NotFound(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(nil, nil)

	_, err := s.Duplicate(ctx, 7, 42)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPostService_Remove_NotFound(t *testing.T) {
	s, _, pr, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	pr.On("Remove", mock.Anything, int64(42), int64(7)).Return(false, nil)

	err := s.Remove(ctx, 7, 42)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPostService_History_RequiresOwnership(t *testing.T) {
	s, _, pr, ph, _ := newPostServiceForTest(t)
	ctx := context.Background()

	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(nil, nil)

	_, err := s.History(ctx, 7, 42)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	ph.AssertNotCalled(t, "ListByPostID")
}

func TestPostService_History_ReturnsVersions(t *testing.T) {
	s, _, pr, ph, _ := newPostServiceForTest(t)
	ctx := context.Background()

	existing := &models.Post{ID: 42, UserID: 7, Content: "text"}
	pr.On("GetByOwner", mock.Anything, int64(42), int64(7)).Return(existing, nil)
	ph.On("ListByPostID", mock.Anything, int64(42)).Return([]*models.PostHistory{
		{PostID: 42, Version: 1, Content: "first"},
		{PostID: 42, Version: 2, Content: "second"},
	}, nil)

	entries, err := s.History(ctx, 7, 42)

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Version)
	assert.Equal(t, 2, entries[1].Version)
}
