package models

import "time"

type Post struct {
	ID             int64          `db:"id" json:"id"`
	UserID         int64          `db:"user_id" json:"userId"`
	IntegrationID  *int64         `db:"integration_id" json:"integrationId,omitempty"`
	Platform       string         `db:"platform" json:"platform"`
	Content        string         `db:"content" json:"content"`
	MediaURLs      []string       `db:"media_urls" json:"mediaUrls"`
	Type           string         `db:"post_type" json:"type"`
	Status         string         `db:"status" json:"status"`
	ApprovalStatus string         `db:"approval_status" json:"approvalStatus"`
	ApprovedBy     *int64         `db:"approved_by" json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time     `db:"approved_at" json:"approvedAt,omitempty"`
	ScheduledAt    *time.Time     `db:"scheduled_at" json:"scheduledAt,omitempty"`
	PublishedAt    *time.Time     `db:"published_at" json:"publishedAt,omitempty"`
	Metrics        PostMetrics    `db:"-" json:"metrics"`
	PlatformData   map[string]any `db:"platform_data" json:"platformData,omitempty"`
	Tags           []string       `db:"tags" json:"tags"`
	Location       *GeoLocation   `db:"location" json:"location,omitempty"`
	Link           string         `db:"link" json:"link,omitempty"`
	ExternalPostID string         `db:"external_post_id" json:"externalPostId,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`
}

type PostMetrics struct {
	Likes       int64      `db:"likes" json:"likes"`
	Comments    int64      `db:"comments" json:"comments"`
	Shares      int64      `db:"shares" json:"shares"`
	Impressions int64      `db:"impressions" json:"impressions"`
	Reach       int64      `db:"reach" json:"reach"`
	Engagement  int64      `db:"engagement" json:"engagement"`
	LastUpdated *time.Time `db:"metrics_updated_at" json:"lastUpdated,omitempty"`
}

type GeoLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

const (
	PostStatusDraft           = "draft"
	PostStatusScheduled       = "scheduled"
	PostStatusPendingApproval = "pending-approval"
	PostStatusPublished       = "published"
	PostStatusFailed          = "failed"
)

const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

const (
	PostTypeText     = "text"
	PostTypeImage    = "image"
	PostTypeVideo    = "video"
	PostTypeLink     = "link"
	PostTypeCarousel = "carousel"
)
