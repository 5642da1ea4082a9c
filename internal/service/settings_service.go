package service

import (
	"context"
	"log/slog"

	"github.com/postloom/postloom/internal/apperr"
	"github.com/postloom/postloom/internal/models"
	"github.com/postloom/postloom/internal/repository"
	"github.com/postloom/postloom/internal/transfer"
)

type QueueSettingsService interface {
	Get(ctx context.Context, userID, accountID int64) (*models.QueueSetting, error)
	Update(ctx context.Context, userID int64, upd *transfer.QueueSettingsUpdate) (*models.QueueSetting, error)
}

type queueSettingsService struct {
	qr repository.QueueSettingRepository
}

func NewQueueSettingsService(qr repository.QueueSettingRepository) QueueSettingsService {
	return &queueSettingsService{qr: qr}
}

// Get returns the weekly template for (user, account), creating the
// documented defaults on first access. This is a read with a creation side
// effect, not a pure read.
func (s *queueSettingsService) Get(ctx context.Context, userID, accountID int64) (*models.QueueSetting, error) {
	if accountID == 0 {
		return nil, apperr.Validation("accountId is required")
	}

	settings, exists, err := s.qr.GetByAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if exists {
		return settings, nil
	}

	defaults := models.QueueSetting{
		UserID:          userID,
		AccountID:       accountID,
		WeekdaySettings: models.DefaultWeekdaySettings(),
	}
	if _, err := s.qr.Create(ctx, &defaults); err != nil {
		return nil, err
	}

	settings, _, err = s.qr.GetByAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *queueSettingsService) Update(ctx context.Context, userID int64, upd *transfer.QueueSettingsUpdate) (*models.QueueSetting, error) {
	if upd == nil {
		return nil, apperr.Validation("settings data is required")
	}
	if err := validate.Struct(upd); err != nil {
		slog.Info(err.Error())
		return nil, apperr.Validation(err.Error())
	}

	weekdays := make([]models.WeekdaySetting, 0, len(upd.WeekdaySettings))
	seen := make(map[int]bool, 7)
	for _, day := range upd.WeekdaySettings {
		if seen[day.Day] {
			return nil, apperr.Validation("weekdaySettings contains day %d twice", day.Day)
		}
		seen[day.Day] = true

		slots := day.TimeSlots
		if slots == nil {
			slots = []string{}
		}
		weekdays = append(weekdays, models.WeekdaySetting{
			Day:       day.Day,
			Enabled:   day.Enabled,
			TimeSlots: slots,
		})
	}

	settings := models.QueueSetting{
		UserID:          userID,
		AccountID:       upd.AccountID,
		WeekdaySettings: weekdays,
		DefaultContent:  upd.DefaultContent,
	}

	_, exists, err := s.qr.GetByAccount(ctx, userID, upd.AccountID)
	if err != nil {
		return nil, err
	}
	if !exists {
		if _, err := s.qr.Create(ctx, &settings); err != nil {
			return nil, err
		}
	} else if err := s.qr.Update(ctx, &settings); err != nil {
		return nil, err
	}

	updated, _, err := s.qr.GetByAccount(ctx, userID, upd.AccountID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
