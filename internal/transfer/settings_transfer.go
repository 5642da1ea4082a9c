package transfer

import "github.com/postloom/postloom/internal/models"

type QueueSettingsUpdate struct {
	AccountID       int64                  `json:"accountId" validate:"required"`
	WeekdaySettings []WeekdaySettingUpdate `json:"weekdaySettings" validate:"required,len=7,dive"`
	DefaultContent  *models.DefaultContent `json:"defaultContent"`
}

type WeekdaySettingUpdate struct {
	Day       int      `json:"day" validate:"min=0,max=6"`
	Enabled   bool     `json:"enabled"`
	TimeSlots []string `json:"timeSlots" validate:"dive,datetime=15:04"`
}
