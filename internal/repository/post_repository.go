package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/postloom/postloom/internal/models"
	"github.com/postloom/postloom/internal/transfer"
)

type PostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetByOwner(ctx context.Context, postID, userID int64) (*models.Post, error)
	GetWithIntegration(ctx context.Context, postID, userID int64) (*transfer.PostWithIntegration, error)
	Update(ctx context.Context, tx *sql.Tx, post *models.Post) error
	SetSchedule(ctx context.Context, postID, userID int64, scheduledAt time.Time) (bool, error)
	SetApproval(ctx context.Context, postID int64, approvalStatus string, approvedBy *int64, approvedAt *time.Time, status string) error
	Remove(ctx context.Context, postID, userID int64) (bool, error)
	CheckExternalPostID(ctx context.Context, integrationID int64, externalPostID string, excludeID int64) (bool, error)
	List(ctx context.Context, userID int64, f *transfer.PostListFilter) ([]*transfer.PostWithIntegration, int, error)
	ListIDsByStatus(ctx context.Context, status string) ([]int64, error)
	UpdateMetrics(ctx context.Context, postID int64, m models.PostMetrics) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = `id, user_id, integration_id, platform, content, media_urls, post_type,
	status, approval_status, approved_by, approved_at, scheduled_at, published_at,
	likes, comments, shares, impressions, reach, engagement, metrics_updated_at,
	platform_data, tags, location, link, external_post_id, created_at, updated_at`

func (r *postRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (user_id, integration_id, platform, content, media_urls, post_type,
			status, approval_status, scheduled_at, platform_data, tags, location, link, external_post_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	platformData, err := marshalJSONB(post.PlatformData)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	location, err := marshalJSONB(post.Location)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	args := []any{
		post.UserID, post.IntegrationID, post.Platform, post.Content,
		pq.Array(post.MediaURLs), post.Type, post.Status, post.ApprovalStatus,
		post.ScheduledAt, platformData, pq.Array(post.Tags), location,
		post.Link, post.ExternalPostID,
	}

	var id int64
	if tx != nil {
		err = tx.QueryRowContext(ctx, query, args...).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, postColumns)
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByOwner looks a post up by id and owner together. A post owned by a
// different user scans as sql.ErrNoRows, same as a missing one.
func (r *postRepository) GetByOwner(ctx context.Context, postID, userID int64) (*models.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1 AND user_id = $2`, postColumns)
	return r.scanOne(r.db.QueryRowContext(ctx, query, postID, userID))
}

func (r *postRepository) GetWithIntegration(ctx context.Context, postID, userID int64) (*transfer.PostWithIntegration, error) {
	query := fmt.Sprintf(`
		SELECT %s, i.platform, i.username, i.display_name, i.profile_image_url
		FROM posts p
		LEFT JOIN integrations i ON i.id = p.integration_id
		WHERE p.id = $1 AND p.user_id = $2`, prefixed(postColumns, "p."))

	return r.scanJoined(r.db.QueryRowContext(ctx, query, postID, userID))
}

func (r *postRepository) Update(ctx context.Context, tx *sql.Tx, post *models.Post) error {
	query := `
		UPDATE posts
		SET integration_id = $1,
			platform = $2,
			content = $3,
			media_urls = $4,
			post_type = $5,
			status = $6,
			approval_status = $7,
			scheduled_at = $8,
			published_at = $9,
			platform_data = $10,
			tags = $11,
			location = $12,
			link = $13,
			external_post_id = $14,
			updated_at = $15
		WHERE id = $16
	`

	platformData, err := marshalJSONB(post.PlatformData)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	location, err := marshalJSONB(post.Location)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	args := []any{
		post.IntegrationID, post.Platform, post.Content, pq.Array(post.MediaURLs),
		post.Type, post.Status, post.ApprovalStatus, post.ScheduledAt, post.PublishedAt,
		platformData, pq.Array(post.Tags), location, post.Link, post.ExternalPostID,
		time.Now(), post.ID,
	}

	if tx != nil {
		_, err = tx.ExecContext(ctx, query, args...)
	} else {
		_, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) SetSchedule(ctx context.Context, postID, userID int64, scheduledAt time.Time) (bool, error) {
	query := `
		UPDATE posts
		SET status = $1,
			scheduled_at = $2,
			updated_at = $3
		WHERE id = $4 AND user_id = $5
	`
	res, err := r.db.ExecContext(ctx, query, models.PostStatusScheduled, scheduledAt, time.Now(), postID, userID)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return affected > 0, nil
}

func (r *postRepository) SetApproval(ctx context.Context, postID int64, approvalStatus string, approvedBy *int64, approvedAt *time.Time, status string) error {
	query := `
		UPDATE posts
		SET approval_status = $1,
			approved_by = $2,
			approved_at = $3,
			status = $4,
			updated_at = $5
		WHERE id = $6
	`
	_, err := r.db.ExecContext(ctx, query, approvalStatus, approvedBy, approvedAt, status, time.Now(), postID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) Remove(ctx context.Context, postID, userID int64) (bool, error) {
	query := `DELETE FROM posts WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return affected > 0, nil
}

// CheckExternalPostID reports whether another post already carries this
// platform-issued id for the same integration. Pass excludeID 0 on create.
func (r *postRepository) CheckExternalPostID(ctx context.Context, integrationID int64, externalPostID string, excludeID int64) (bool, error) {
	query := `SELECT 1 FROM posts WHERE integration_id = $1 AND external_post_id = $2 AND id <> $3 LIMIT 1`

	var result int
	err := r.db.QueryRowContext(ctx, query, integrationID, externalPostID, excludeID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	return result == 1, nil
}

func (r *postRepository) List(ctx context.Context, userID int64, f *transfer.PostListFilter) ([]*transfer.PostWithIntegration, int, error) {
	conds := []string{"p.user_id = $1"}
	args := []any{userID}

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if f.Platform != "" {
		args = append(args, f.Platform)
		conds = append(conds, fmt.Sprintf("p.platform = $%d", len(args)))
	}
	if f.IntegrationID != 0 {
		args = append(args, f.IntegrationID)
		conds = append(conds, fmt.Sprintf("p.integration_id = $%d", len(args)))
	}

	dateColumn, orderBy := listOrdering(f.Status)
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		conds = append(conds, fmt.Sprintf("%s >= $%d", dateColumn, len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		conds = append(conds, fmt.Sprintf("%s <= $%d", dateColumn, len(args)))
	}
	if f.SearchTerm != "" {
		args = append(args, "%"+f.SearchTerm+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.content ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(p.tags) AS tag WHERE tag ILIKE $%d))", n, n))
	}

	where := strings.Join(conds, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts p WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		slog.Info(err.Error())
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s, i.platform, i.username, i.display_name, i.profile_image_url
		FROM posts p
		LEFT JOIN integrations i ON i.id = p.integration_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		prefixed(postColumns, "p."), where, orderBy, len(args)+1, len(args)+2)

	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, 0, err
	}
	defer rows.Close()

	var posts []*transfer.PostWithIntegration
	for rows.Next() {
		post, err := r.scanJoined(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, 0, err
	}

	return posts, total, nil
}

// listOrdering picks the date-range column and sort order for a status
// view: delivered newest-first by publish time, queued soonest-first,
// drafts by last edit, everything else by creation time.
func listOrdering(status string) (dateColumn, orderBy string) {
	switch status {
	case models.PostStatusPublished:
		return "p.published_at", "p.published_at DESC"
	case models.PostStatusScheduled:
		return "p.scheduled_at", "p.scheduled_at ASC"
	case models.PostStatusDraft:
		return "p.updated_at", "p.updated_at DESC"
	default:
		return "p.created_at", "p.created_at DESC"
	}
}

func (r *postRepository) ListIDsByStatus(ctx context.Context, status string) ([]int64, error) {
	query := `SELECT id FROM posts WHERE status = $1`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postRepository) UpdateMetrics(ctx context.Context, postID int64, m models.PostMetrics) error {
	query := `
		UPDATE posts
		SET likes = $1,
			comments = $2,
			shares = $3,
			impressions = $4,
			reach = $5,
			engagement = $6,
			metrics_updated_at = $7
		WHERE id = $8
	`
	_, err := r.db.ExecContext(ctx, query, m.Likes, m.Comments, m.Shares, m.Impressions, m.Reach, m.Engagement, m.LastUpdated, postID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *postRepository) scanOne(row rowScanner) (*models.Post, error) {
	post, err := scanPost(row, nil)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return post, nil
}

func (r *postRepository) scanJoined(row rowScanner) (*transfer.PostWithIntegration, error) {
	var info joinedIntegration
	post, err := scanPost(row, &info)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	joined := &transfer.PostWithIntegration{Post: *post}
	if info.Platform.Valid {
		joined.Integration = &models.IntegrationInfo{
			Platform:        info.Platform.String,
			Username:        info.Username.String,
			DisplayName:     info.DisplayName.String,
			ProfileImageURL: info.ProfileImageURL.String,
		}
	}
	return joined, nil
}

type joinedIntegration struct {
	Platform        sql.NullString
	Username        sql.NullString
	DisplayName     sql.NullString
	ProfileImageURL sql.NullString
}

func scanPost(row rowScanner, info *joinedIntegration) (*models.Post, error) {
	var (
		post          models.Post
		integrationID sql.NullInt64
		approvedBy    sql.NullInt64
		approvedAt    sql.NullTime
		scheduledAt   sql.NullTime
		publishedAt   sql.NullTime
		metricsAt     sql.NullTime
		platformData  []byte
		location      []byte
		link          sql.NullString
		externalID    sql.NullString
	)

	dest := []any{
		&post.ID, &post.UserID, &integrationID, &post.Platform, &post.Content,
		pq.Array(&post.MediaURLs), &post.Type, &post.Status, &post.ApprovalStatus,
		&approvedBy, &approvedAt, &scheduledAt, &publishedAt,
		&post.Metrics.Likes, &post.Metrics.Comments, &post.Metrics.Shares,
		&post.Metrics.Impressions, &post.Metrics.Reach, &post.Metrics.Engagement,
		&metricsAt, &platformData, pq.Array(&post.Tags), &location,
		&link, &externalID, &post.CreatedAt, &post.UpdatedAt,
	}
	if info != nil {
		dest = append(dest, &info.Platform, &info.Username, &info.DisplayName, &info.ProfileImageURL)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if integrationID.Valid {
		post.IntegrationID = &integrationID.Int64
	}
	if approvedBy.Valid {
		post.ApprovedBy = &approvedBy.Int64
	}
	if approvedAt.Valid {
		post.ApprovedAt = &approvedAt.Time
	}
	if scheduledAt.Valid {
		post.ScheduledAt = &scheduledAt.Time
	}
	if publishedAt.Valid {
		post.PublishedAt = &publishedAt.Time
	}
	if metricsAt.Valid {
		post.Metrics.LastUpdated = &metricsAt.Time
	}
	post.Link = link.String
	post.ExternalPostID = externalID.String

	if len(platformData) > 0 {
		if err := json.Unmarshal(platformData, &post.PlatformData); err != nil {
			return nil, err
		}
	}
	if len(location) > 0 {
		var loc models.GeoLocation
		if err := json.Unmarshal(location, &loc); err != nil {
			return nil, err
		}
		post.Location = &loc
	}

	return &post, nil
}

func marshalJSONB(v any) ([]byte, error) {
	switch value := v.(type) {
	case map[string]any:
		if value == nil {
			return nil, nil
		}
	case *models.GeoLocation:
		if value == nil {
			return nil, nil
		}
	case nil:
		return nil, nil
	}
	return json.Marshal(v)
}

func prefixed(columns, prefix string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = prefix + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}
