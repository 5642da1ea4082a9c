package models

import "time"

type Integration struct {
	ID              int64      `db:"id" json:"id"`
	UserID          int64      `db:"user_id" json:"user_id"`
	Platform        string     `db:"platform" json:"platform"`
	PlatformUserID  string     `db:"platform_user_id" json:"platform_user_id"`
	Username        string     `db:"username" json:"username"`
	DisplayName     string     `db:"display_name" json:"display_name"`
	ProfileImageURL string     `db:"profile_image_url" json:"profile_image_url"`
	AccessToken     string     `db:"access_token" json:"-"`
	RefreshToken    string     `db:"refresh_token" json:"-"`
	TokenExpiry     *time.Time `db:"token_expiry" json:"-"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// IntegrationInfo is the public projection joined onto posts. Credentials
// never leave the repository layer.
type IntegrationInfo struct {
	Platform        string `db:"platform" json:"platform"`
	Username        string `db:"username" json:"username"`
	DisplayName     string `db:"display_name" json:"displayName"`
	ProfileImageURL string `db:"profile_image_url" json:"profileImageUrl"`
}

const (
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
	PlatformLinkedin  = "linkedin"
	PlatformInstagram = "instagram"
	PlatformPinterest = "pinterest"
)
