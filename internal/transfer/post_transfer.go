package transfer

import (
	"time"

	"github.com/postloom/postloom/internal/models"
)

type PostCreation struct {
	IntegrationID  *int64              `json:"integrationId"`
	Platform       string              `json:"platform" validate:"required,oneof=twitter facebook linkedin instagram pinterest"`
	Content        string              `json:"content" validate:"required"`
	MediaURLs      []string            `json:"mediaUrls"`
	Type           string              `json:"type" validate:"omitempty,oneof=text image video link carousel"`
	Status         string              `json:"status" validate:"omitempty,oneof=draft scheduled pending-approval published failed"`
	ScheduledAt    *time.Time          `json:"scheduledAt"`
	PlatformData   map[string]any      `json:"platformData"`
	Tags           []string            `json:"tags"`
	Location       *models.GeoLocation `json:"location"`
	Link           string              `json:"link"`
	ExternalPostID string              `json:"externalPostId"`
}

// PostUpdate carries only the fields present in the request body. Nil means
// "leave unchanged"; every supplied field is applied last-write-wins.
type PostUpdate struct {
	IntegrationID  *int64              `json:"integrationId"`
	Platform       *string             `json:"platform" validate:"omitempty,oneof=twitter facebook linkedin instagram pinterest"`
	Content        *string             `json:"content"`
	MediaURLs      *[]string           `json:"mediaUrls"`
	Type           *string             `json:"type" validate:"omitempty,oneof=text image video link carousel"`
	Status         *string             `json:"status" validate:"omitempty,oneof=draft scheduled pending-approval published failed"`
	ApprovalStatus *string             `json:"approvalStatus" validate:"omitempty,oneof=pending approved rejected"`
	ScheduledAt    *time.Time          `json:"scheduledAt"`
	PublishedAt    *time.Time          `json:"publishedAt"`
	PlatformData   map[string]any      `json:"platformData"`
	Tags           *[]string           `json:"tags"`
	Location       *models.GeoLocation `json:"location"`
	Link           *string             `json:"link"`
	ExternalPostID *string             `json:"externalPostId"`
}

type PostSchedule struct {
	ScheduledAt string `json:"scheduledAt" validate:"required"`
}

type PostListFilter struct {
	Status        string
	Platform      string
	IntegrationID int64
	StartDate     *time.Time
	EndDate       *time.Time
	SearchTerm    string
	Page          int
	Limit         int
}

type PostWithIntegration struct {
	models.Post
	Integration *models.IntegrationInfo `json:"integration"`
}

type PostList struct {
	Posts      []*PostWithIntegration `json:"posts"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"totalPages"`
}
