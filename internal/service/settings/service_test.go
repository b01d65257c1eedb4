package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameleshkina/consult-booking/internal/domain"
	settingsRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/settings"
	"github.com/ameleshkina/consult-booking/internal/service/settings/models"
)

type fakeSettingsRepo struct {
	stored *domain.ScheduleSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ScheduleSettings, error) {
	if f.stored == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return f.stored, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s *domain.ScheduleSettings) (*domain.ScheduleSettings, error) {
	stored := *s
	stored.UpdatedAt = time.Now()
	f.stored = &stored
	return &stored, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	admin  = domain.Actor{ID: 1, Role: domain.RoleAdmin}
	client = domain.Actor{ID: 42, Role: domain.RoleClient}
)

func TestService_Get(t *testing.T) {
	t.Run("defaults before first save", func(t *testing.T) {
		svc := NewService(&fakeSettingsRepo{}, nopLogger{})

		resp, err := svc.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, domain.DefaultWorkStart, resp.WorkStart)
		assert.Equal(t, domain.DefaultWorkEnd, resp.WorkEnd)
		assert.Equal(t, domain.DefaultSessionDurationMinutes, resp.SessionDurationMinutes)
		assert.Nil(t, resp.UpdatedAt)
	})

	t.Run("stored settings returned", func(t *testing.T) {
		repo := &fakeSettingsRepo{stored: &domain.ScheduleSettings{
			WorkStart:              "09:00",
			WorkEnd:                "15:00",
			SessionDurationMinutes: 45,
			UpdatedAt:              time.Now(),
		}}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "09:00", resp.WorkStart)
		assert.Equal(t, 45, resp.SessionDurationMinutes)
		assert.NotNil(t, resp.UpdatedAt)
	})
}

func TestService_Update(t *testing.T) {
	validReq := func(actor domain.Actor) *models.UpdateSettingsRequest {
		return &models.UpdateSettingsRequest{
			Actor:                  actor,
			WorkStart:              "09:00",
			WorkEnd:                "18:00",
			SessionDurationMinutes: 90,
		}
	}

	t.Run("admin updates settings", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Update(context.Background(), validReq(admin))
		require.NoError(t, err)

		assert.Equal(t, "09:00", resp.WorkStart)
		assert.Equal(t, 90, resp.SessionDurationMinutes)
		require.NotNil(t, repo.stored)
		assert.Equal(t, 90, repo.stored.SessionDurationMinutes)
	})

	t.Run("client denied", func(t *testing.T) {
		svc := NewService(&fakeSettingsRepo{}, nopLogger{})

		_, err := svc.Update(context.Background(), validReq(client))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("start must precede end", func(t *testing.T) {
		svc := NewService(&fakeSettingsRepo{}, nopLogger{})

		req := validReq(admin)
		req.WorkStart = "18:00"
		req.WorkEnd = "09:00"
		_, err := svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = validReq(admin)
		req.WorkEnd = req.WorkStart
		_, err = svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duration bounds enforced", func(t *testing.T) {
		svc := NewService(&fakeSettingsRepo{}, nopLogger{})

		for _, duration := range []int{14, 0, -10, 181, 600} {
			req := validReq(admin)
			req.SessionDurationMinutes = duration
			_, err := svc.Update(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput, "duration %d", duration)
		}

		for _, duration := range []int{15, 60, 180} {
			req := validReq(admin)
			req.SessionDurationMinutes = duration
			_, err := svc.Update(context.Background(), req)
			assert.NoError(t, err, "duration %d", duration)
		}
	})

	t.Run("bad time format rejected", func(t *testing.T) {
		svc := NewService(&fakeSettingsRepo{}, nopLogger{})

		req := validReq(admin)
		req.WorkStart = "9 утра"
		_, err := svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
