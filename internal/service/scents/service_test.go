package scents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjsdetailing/booking-service/internal/domain"
	scentRepo "github.com/tjsdetailing/booking-service/internal/infra/storage/scent"
	"github.com/tjsdetailing/booking-service/internal/service/scents/models"
)

type fakeRepo struct {
	scents []*domain.Scent
}

func (f *fakeRepo) Create(_ context.Context, s *domain.Scent) (*domain.Scent, error) {
	for _, existing := range f.scents {
		if existing.Name == s.Name {
			return nil, scentRepo.ErrDuplicateName
		}
	}
	stored := *s
	f.scents = append(f.scents, &stored)
	return &stored, nil
}

func (f *fakeRepo) List(_ context.Context, enabledOnly bool) ([]*domain.Scent, error) {
	if !enabledOnly {
		return f.scents, nil
	}
	var enabled []*domain.Scent
	for _, s := range f.scents {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	return enabled, nil
}

func (f *fakeRepo) SetEnabled(_ context.Context, id string, enabled bool) error {
	for _, s := range f.scents {
		if s.ID == id {
			s.Enabled = enabled
			return nil
		}
	}
	return scentRepo.ErrScentNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for i, s := range f.scents {
		if s.ID == id {
			f.scents = append(f.scents[:i], f.scents[i+1:]...)
			return nil
		}
	}
	return scentRepo.ErrScentNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_TrimsAndEnables(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateScentRequest{Name: "  Vanilla  "})

	require.NoError(t, err)
	assert.Equal(t, "Vanilla", resp.Name)
	assert.True(t, resp.Enabled)
	assert.NotEmpty(t, resp.ID)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateScentRequest{Name: "Vanilla"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &models.CreateScentRequest{Name: "Vanilla"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCreate_EmptyNameRejected(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateScentRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListEnabled_FiltersDisabled(t *testing.T) {
	repo := &fakeRepo{scents: []*domain.Scent{
		{ID: "1", Name: "Vanilla", Enabled: true},
		{ID: "2", Name: "Ocean", Enabled: false},
	}}
	svc := NewService(repo, nopLogger{})

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all.Scents, 2)

	enabled, err := svc.ListEnabled(context.Background())
	require.NoError(t, err)
	require.Len(t, enabled.Scents, 1)
	assert.Equal(t, "Vanilla", enabled.Scents[0].Name)
}

func TestSetEnabled(t *testing.T) {
	repo := &fakeRepo{scents: []*domain.Scent{
		{ID: "1", Name: "Vanilla", Enabled: true},
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.SetEnabled(context.Background(), &models.ToggleScentRequest{ID: "1", Enabled: false})
	require.NoError(t, err)
	assert.False(t, repo.scents[0].Enabled)

	err = svc.SetEnabled(context.Background(), &models.ToggleScentRequest{ID: "missing", Enabled: true})
	assert.ErrorIs(t, err, ErrScentNotFound)

	err = svc.SetEnabled(context.Background(), &models.ToggleScentRequest{Enabled: true})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{scents: []*domain.Scent{
		{ID: "1", Name: "Vanilla", Enabled: true},
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), &models.DeleteScentRequest{ID: "1"})
	require.NoError(t, err)
	assert.Empty(t, repo.scents)

	err = svc.Delete(context.Background(), &models.DeleteScentRequest{ID: "1"})
	assert.ErrorIs(t, err, ErrScentNotFound)

	err = svc.Delete(context.Background(), &models.DeleteScentRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
