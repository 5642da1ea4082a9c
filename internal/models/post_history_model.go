package models

import "time"

// PostHistory is one immutable snapshot of a post's content. Entries are
// append-only and versions start at 1.
type PostHistory struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"postId"`
	Version   int       `db:"version" json:"version"`
	Content   string    `db:"content" json:"content"`
	MediaURLs []string  `db:"media_urls" json:"mediaUrls"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	UpdatedBy int64     `db:"updated_by" json:"updatedBy"`
}
