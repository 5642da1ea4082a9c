package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/postloom/postloom/internal/models"
)

type QueueSettingRepository interface {
	GetByAccount(ctx context.Context, userID, accountID int64) (*models.QueueSetting, bool, error)
	Create(ctx context.Context, qs *models.QueueSetting) (int64, error)
	Update(ctx context.Context, qs *models.QueueSetting) error
}

type queueSettingRepository struct {
	db *sql.DB
}

func NewQueueSettingRepository(db *sql.DB) QueueSettingRepository {
	return &queueSettingRepository{db: db}
}

func (r *queueSettingRepository) GetByAccount(ctx context.Context, userID, accountID int64) (*models.QueueSetting, bool, error) {
	query := `
		SELECT id, user_id, account_id, weekday_settings, default_content, created_at, updated_at
		FROM queue_settings
		WHERE user_id = $1 AND account_id = $2
	`
	row := r.db.QueryRowContext(ctx, query, userID, accountID)

	var qs models.QueueSetting
	var weekdays []byte
	var defaultContent []byte

	err := row.Scan(&qs.ID, &qs.UserID, &qs.AccountID, &weekdays, &defaultContent, &qs.CreatedAt, &qs.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	if err := json.Unmarshal(weekdays, &qs.WeekdaySettings); err != nil {
		slog.Info(err.Error())
		return nil, false, err
	}
	if len(defaultContent) > 0 {
		if err := json.Unmarshal(defaultContent, &qs.DefaultContent); err != nil {
			slog.Info(err.Error())
			return nil, false, err
		}
	}

	return &qs, true, nil
}

func (r *queueSettingRepository) Create(ctx context.Context, qs *models.QueueSetting) (int64, error) {
	query := `
		INSERT INTO queue_settings (user_id, account_id, weekday_settings, default_content)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	weekdays, defaultContent, err := encodeSettings(qs)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, qs.UserID, qs.AccountID, weekdays, defaultContent).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

// Update replaces the whole weekly template in one statement; there is no
// partial-day patching.
func (r *queueSettingRepository) Update(ctx context.Context, qs *models.QueueSetting) error {
	query := `
		UPDATE queue_settings
		SET weekday_settings = $1,
			default_content = $2,
			updated_at = $3
		WHERE user_id = $4 AND account_id = $5
	`

	weekdays, defaultContent, err := encodeSettings(qs)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	_, err = r.db.ExecContext(ctx, query, weekdays, defaultContent, time.Now(), qs.UserID, qs.AccountID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func encodeSettings(qs *models.QueueSetting) (weekdays, defaultContent []byte, err error) {
	weekdays, err = json.Marshal(qs.WeekdaySettings)
	if err != nil {
		return nil, nil, err
	}
	if qs.DefaultContent != nil {
		defaultContent, err = json.Marshal(qs.DefaultContent)
		if err != nil {
			return nil, nil, err
		}
	}
	return weekdays, defaultContent, nil
}
