package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/postloom/postloom/internal/apperr"
	"github.com/postloom/postloom/internal/models"
	"github.com/postloom/postloom/internal/transfer"
)

// MockQueueSettingRepository is a mock implementation of the QueueSettingRepository interface
type MockQueueSettingRepository struct {
	mock.Mock
}

func (m *MockQueueSettingRepository) GetByAccount(ctx context.Context, userID, accountID int64) (*models.QueueSetting, bool, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.QueueSetting), args.Bool(1), args.Error(2)
}

func (m *MockQueueSettingRepository) Create(ctx context.Context, qs *models.QueueSetting) (int64, error) {
	args := m.Called(ctx, qs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueueSettingRepository) Update(ctx context.Context, qs *models.QueueSetting) error {
	args := m.Called(ctx, qs)
	return args.Error(0)
}

func fullWeek() []transfer.WeekdaySettingUpdate {
	week := make([]transfer.WeekdaySettingUpdate, 7)
	for day := 0; day < 7; day++ {
		week[day] = transfer.WeekdaySettingUpdate{
			Day:       day,
			Enabled:   day != 0 && day != 6,
			TimeSlots: []string{"09:00", "17:00"},
		}
	}
	return week
}

func TestQueueSettingsService_Get_CreatesDefaultsOnFirstAccess(t *testing.T) {
	qr := new(MockQueueSettingRepository)
	s := NewQueueSettingsService(qr)
	ctx := context.Background()

	stored := &models.QueueSetting{ID: 1, UserID: 7, AccountID: 3, WeekdaySettings: models.DefaultWeekdaySettings()}
	qr.On("GetByAccount", mock.Anything, int64(7), int64(3)).Return(nil, false, nil).Once()
	qr.On("Create", mock.Anything, mock.AnythingOfType("*models.QueueSetting")).Return(int64(1), nil)
	qr.On("GetByAccount", mock.Anything, int64(7), int64(3)).Return(stored, true, nil).Once()

	settings, err := s.Get(ctx, 7, 3)

	assert.NoError(t, err)
	assert.Len(t, settings.WeekdaySettings, 7)

	created := qr.Calls[1].Arguments.Get(1).(*models.QueueSetting)
	for _, day := range created.WeekdaySettings {
		if day.Day == 0 || day.Day == 6 {
			assert.False(t, day.Enabled)
			assert.Empty(t, day.TimeSlots)
		} else {
			assert.True(t, day.Enabled)
			assert.Equal(t, []string{"09:00", "13:00", "17:00"}, day.TimeSlots)
		}
	}
	qr.AssertExpectations(t)
}

func TestQueueSettingsService_Get_ReturnsExisting(t *testing.T) {
	qr := new(MockQueueSettingRepository)
	s := NewQueueSettingsService(qr)
	ctx := context.Background()

	stored := &models.QueueSetting{ID: 1, UserID: 7, AccountID: 3, WeekdaySettings: models.DefaultWeekdaySettings()}
	qr.On("GetByAccount", mock.Anything, int64(7), int64(3)).Return(stored, true, nil)

	settings, err := s.Get(ctx, 7, 3)

	assert.NoError(t, err)
	assert.Equal(t, stored, settings)
	qr.AssertNotCalled(t, "Create")
}

func TestQueueSettingsService_Get_RequiresAccountID(t *testing.T) {
	qr := new(MockQueueSettingRepository)
	s := NewQueueSettingsService(qr)
	ctx := context.Background()

	_, err := s.Get(ctx, 7, 0)

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestQueueSettingsService_Update_RejectsShortWeek(t *testing.T) {
	qr := new(MockQueueSettingRepository)
	s := NewQueueSettingsService(qr)
	ctx := context.Background()

	upd := &transfer.QueueSettingsUpdate{
		AccountID:       3,
		WeekdaySettings: fullWeek()[:5],
	}

	_, err := s.Update(ctx, 7, upd)

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	qr.AssertNotCalled(t, "Update")
}

func TestQueueSettingsService_Update_RejectsBadTimeSlot(t *testing.T) {
	qr := new(MockQueueSettingRepository)
	s := NewQueueSettingsService(qr)
	ctx := context.Background()

	week := fullWeek()
	week[2].TimeSlots = []string{"9am"}
	upd := &transfer.QueueSettingsUpdate{AccountID: 3, WeekdaySettings: week}

	_, err := s.Update(ctx, 7, upd)

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestQueueSettingsService_Update_RejectsDuplicateDay(t *testing.T) {
	qr := new(MockQueueSettingRepository)
	s := NewQueueSettingsService(qr)
	ctx := context.Background()

	week := fullWeek()
	week[6].Day = 2
	upd := &transfer.QueueSettingsUpdate{AccountID: 3, WeekdaySettings: week}

	_, err := s.Update(ctx, 7, upd)

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestQueueSettingsService_Update_ReplacesTemplate(t *testing.T) {
	qr := new(MockQueueSettingRepository)
	s := NewQueueSettingsService(qr)
	ctx := context.Background()

	stored := &models.QueueSetting{ID: 1, UserID: 7, AccountID: 3}
	qr.On("GetByAccount", mock.Anything, int64(7), int64(3)).Return(stored, true, nil)
	qr.On("Update", mock.Anything, mock.AnythingOfType("*models.QueueSetting")).Return(nil)

	upd := &transfer.QueueSettingsUpdate{
		AccountID:       3,
		WeekdaySettings: fullWeek(),
		DefaultContent:  &models.DefaultContent{Hashtags: []string{"#brand"}},
	}

	settings, err := s.Update(ctx, 7, upd)

	assert.NoError(t, err)
	assert.NotNil(t, settings)

	saved := qr.Calls[1].Arguments.Get(1).(*models.QueueSetting)
	assert.Len(t, saved.WeekdaySettings, 7)
	assert.NotNil(t, saved.DefaultContent)
	qr.AssertNotCalled(t, "Create")
}

func TestQueueSettingsService_Update_CreatesWhenMissing(t *testing.T) {
	qr := new(MockQueueSettingRepository)
	s := NewQueueSettingsService(qr)
	ctx := context.Background()

	qr.On("GetByAccount", mock.Anything, int64(7), int64(3)).Return(nil, false, nil).Once()
	qr.On("Create", mock.Anything, mock.AnythingOfType("*models.QueueSetting")).Return(int64(1), nil)
	qr.On("GetByAccount", mock.Anything, int64(7), int64(3)).Return(&models.QueueSetting{ID: 1}, true, nil).Once()

	upd := &transfer.QueueSettingsUpdate{AccountID: 3, WeekdaySettings: fullWeek()}

	settings, err := s.Update(ctx, 7, upd)

	assert.NoError(t, err)
	assert.NotNil(t, settings)
	qr.AssertNotCalled(t, "Update")
	qr.AssertExpectations(t)
}
