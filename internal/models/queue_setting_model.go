package models

import "time"

// QueueSetting holds one weekly posting template per (user, account) pair.
type QueueSetting struct {
	ID              int64             `db:"id" json:"id"`
	UserID          int64             `db:"user_id" json:"userId"`
	AccountID       int64             `db:"account_id" json:"accountId"`
	WeekdaySettings []WeekdaySetting  `db:"weekday_settings" json:"weekdaySettings"`
	DefaultContent  *DefaultContent   `db:"default_content" json:"defaultContent,omitempty"`
	CreatedAt       time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time         `db:"updated_at" json:"updatedAt"`
}

// WeekdaySetting covers one day of the week. Day is 0-6, 0 = Sunday.
type WeekdaySetting struct {
	Day       int      `json:"day"`
	Enabled   bool     `json:"enabled"`
	TimeSlots []string `json:"timeSlots"`
}

type DefaultContent struct {
	Hashtags  []string          `json:"hashtags,omitempty"`
	Mentions  []string          `json:"mentions,omitempty"`
	Templates map[string]string `json:"templates,omitempty"`
}

// DefaultWeekdaySettings is the template lazily created the first time a
// user requests settings for an account that has none: weekdays enabled
// with three daily slots, weekends disabled.
func DefaultWeekdaySettings() []WeekdaySetting {
	settings := make([]WeekdaySetting, 7)
	for day := 0; day < 7; day++ {
		weekend := day == 0 || day == 6
		if weekend {
			settings[day] = WeekdaySetting{Day: day, Enabled: false, TimeSlots: []string{}}
		} else {
			settings[day] = WeekdaySetting{Day: day, Enabled: true, TimeSlots: []string{"09:00", "13:00", "17:00"}}
		}
	}
	return settings
}
