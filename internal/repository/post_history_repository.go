package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lib/pq"
	"github.com/postloom/postloom/internal/models"
)

type PostHistoryRepository interface {
	Create(ctx context.Context, tx *sql.Tx, entry *models.PostHistory) (int64, error)
	ListByPostID(ctx context.Context, postID int64) ([]*models.PostHistory, error)
	MaxVersion(ctx context.Context, tx *sql.Tx, postID int64) (int, error)
}

type postHistoryRepository struct {
	db *sql.DB
}

func NewPostHistoryRepository(db *sql.DB) PostHistoryRepository {
	return &postHistoryRepository{db: db}
}

func (r *postHistoryRepository) Create(ctx context.Context, tx *sql.Tx, entry *models.PostHistory) (int64, error) {
	query := `
		INSERT INTO post_history (post_id, version, content, media_urls, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, entry.PostID, entry.Version, entry.Content, pq.Array(entry.MediaURLs), entry.UpdatedAt, entry.UpdatedBy).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, entry.PostID, entry.Version, entry.Content, pq.Array(entry.MediaURLs), entry.UpdatedAt, entry.UpdatedBy).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *postHistoryRepository) ListByPostID(ctx context.Context, postID int64) ([]*models.PostHistory, error) {
	query := `
		SELECT id, post_id, version, content, media_urls, updated_at, updated_by
		FROM post_history
		WHERE post_id = $1
		ORDER BY version ASC
	`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var entries []*models.PostHistory
	for rows.Next() {
		var entry models.PostHistory
		err := rows.Scan(&entry.ID, &entry.PostID, &entry.Version, &entry.Content, pq.Array(&entry.MediaURLs), &entry.UpdatedAt, &entry.UpdatedBy)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

func (r *postHistoryRepository) MaxVersion(ctx context.Context, tx *sql.Tx, postID int64) (int, error) {
	query := `SELECT COALESCE(MAX(version), 0) FROM post_history WHERE post_id = $1`

	var version int
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, postID).Scan(&version)
	} else {
		err = r.db.QueryRowContext(ctx, query, postID).Scan(&version)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return version, nil
}
