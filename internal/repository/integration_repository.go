package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/postloom/postloom/internal/models"
)

type IntegrationRepository interface {
	Create(ctx context.Context, tx *sql.Tx, in *models.Integration) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Integration, error)
	GetByPlatformUserID(ctx context.Context, userID int64, platform, platformUserID string) (*models.Integration, error)
	ListInfoByUserID(ctx context.Context, userID int64) ([]*models.Integration, error)
	CheckByUserID(ctx context.Context, integrationID, userID int64) (bool, error)
	SetToken(ctx context.Context, id int64, accessToken, refreshToken string, expiry *time.Time) error
	Remove(ctx context.Context, id int64) error
}

type integrationRepository struct {
	db *sql.DB
}

func NewIntegrationRepository(db *sql.DB) IntegrationRepository {
	return &integrationRepository{db: db}
}

const integrationColumns = `id, user_id, platform, platform_user_id, username, display_name,
	profile_image_url, access_token, refresh_token, token_expiry, created_at, updated_at`

func (r *integrationRepository) Create(ctx context.Context, tx *sql.Tx, in *models.Integration) (int64, error) {
	query := `
		INSERT INTO integrations (user_id, platform, platform_user_id, username, display_name,
			profile_image_url, access_token, refresh_token, token_expiry)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	args := []any{
		in.UserID, in.Platform, in.PlatformUserID, in.Username, in.DisplayName,
		in.ProfileImageURL, in.AccessToken, in.RefreshToken, in.TokenExpiry,
	}

	var id int64
	var err error

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

func (r *integrationRepository) GetByID(ctx context.Context, id int64) (*models.Integration, error) {
	query := `SELECT ` + integrationColumns + ` FROM integrations WHERE id = $1`
	return r.scanRow(r.db.QueryRowContext(ctx, query, id))
}

func (r *integrationRepository) GetByPlatformUserID(ctx context.Context, userID int64, platform, platformUserID string) (*models.Integration, error) {
	query := `SELECT ` + integrationColumns + ` FROM integrations WHERE user_id = $1 AND platform = $2 AND platform_user_id = $3`
	return r.scanRow(r.db.QueryRowContext(ctx, query, userID, platform, platformUserID))
}

// ListInfoByUserID returns connected accounts without credential columns.
func (r *integrationRepository) ListInfoByUserID(ctx context.Context, userID int64) ([]*models.Integration, error) {
	query := `
		SELECT id, user_id, platform, platform_user_id, username, display_name, profile_image_url, created_at, updated_at
		FROM integrations
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var integrations []*models.Integration
	for rows.Next() {
		var in models.Integration
		err := rows.Scan(&in.ID, &in.UserID, &in.Platform, &in.PlatformUserID, &in.Username,
			&in.DisplayName, &in.ProfileImageURL, &in.CreatedAt, &in.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		integrations = append(integrations, &in)
	}
	return integrations, rows.Err()
}

func (r *integrationRepository) CheckByUserID(ctx context.Context, integrationID, userID int64) (bool, error) {
	query := "SELECT 1 FROM integrations WHERE id = $1 AND user_id = $2"

	var result int
	err := r.db.QueryRowContext(ctx, query, integrationID, userID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	return result == 1, nil
}

func (r *integrationRepository) SetToken(ctx context.Context, id int64, accessToken, refreshToken string, expiry *time.Time) error {
	query := `
		UPDATE integrations
		SET access_token = $1,
			refresh_token = $2,
			token_expiry = $3,
			updated_at = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, accessToken, refreshToken, expiry, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *integrationRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM integrations WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *integrationRepository) scanRow(row *sql.Row) (*models.Integration, error) {
	var in models.Integration
	var expiry sql.NullTime

	err := row.Scan(&in.ID, &in.UserID, &in.Platform, &in.PlatformUserID, &in.Username,
		&in.DisplayName, &in.ProfileImageURL, &in.AccessToken, &in.RefreshToken,
		&expiry, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	if expiry.Valid {
		in.TokenExpiry = &expiry.Time
	}
	return &in, nil
}
