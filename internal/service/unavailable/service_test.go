package unavailable

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjsdetailing/booking-service/internal/domain"
	"github.com/tjsdetailing/booking-service/internal/service/unavailable/models"
)

type fakeRepo struct {
	stored  []*domain.UnavailableSlot
	removed []domain.Slot
	addErr  error
}

func (f *fakeRepo) Add(_ context.Context, slots []*domain.UnavailableSlot) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.stored = append(f.stored, slots...)
	return nil
}

func (f *fakeRepo) Remove(_ context.Context, date string, timeOfDay domain.Timeframe) error {
	f.removed = append(f.removed, domain.Slot{Date: date, Timeframe: timeOfDay})
	kept := f.stored[:0]
	for _, s := range f.stored {
		if s.Date != date || s.TimeOfDay != timeOfDay {
			kept = append(kept, s)
		}
	}
	f.stored = kept
	return nil
}

func (f *fakeRepo) List(context.Context) ([]*domain.UnavailableSlot, error) {
	return f.stored, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAdd_BatchWithAllTargets(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	count, err := svc.Add(context.Background(), &models.AddSlotsRequest{Slots: []models.SlotInput{
		{Date: "2026-03-15", TimeOfDay: "morning"},
		{Date: "2026-03-16", TimeOfDay: "afternoon"},
		{Date: "2026-03-17", TimeOfDay: "all"},
	}})

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, repo.stored, 3)
	for _, s := range repo.stored {
		assert.NotEmpty(t, s.ID)
	}
	assert.Equal(t, domain.TimeframeAll, repo.stored[2].TimeOfDay)
}

func TestAdd_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.Add(context.Background(), &models.AddSlotsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(context.Background(), &models.AddSlotsRequest{Slots: []models.SlotInput{
		{Date: "15/03/2026", TimeOfDay: "morning"},
	}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(context.Background(), &models.AddSlotsRequest{Slots: []models.SlotInput{
		{Date: "2026-03-15", TimeOfDay: "evening"},
	}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdd_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{addErr: errors.New("db down")}, nopLogger{})

	_, err := svc.Add(context.Background(), &models.AddSlotsRequest{Slots: []models.SlotInput{
		{Date: "2026-03-15", TimeOfDay: "morning"},
	}})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestRemove_ExactMatchAndMissingNoOp(t *testing.T) {
	repo := &fakeRepo{stored: []*domain.UnavailableSlot{
		{ID: "1", Date: "2026-03-15", TimeOfDay: domain.TimeframeMorning},
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Remove(context.Background(), &models.RemoveSlotsRequest{Slots: []models.SlotInput{
		{Date: "2026-03-15", TimeOfDay: "morning"},
		{Date: "2026-03-18", TimeOfDay: "all"}, // not stored, skipped
	}})

	require.NoError(t, err)
	assert.Empty(t, repo.stored)
	assert.Len(t, repo.removed, 2)
}

func TestRemove_AllDoesNotMatchSpecificBlocks(t *testing.T) {
	// Removal is exact: deleting "all" leaves a morning-only block in place.
	repo := &fakeRepo{stored: []*domain.UnavailableSlot{
		{ID: "1", Date: "2026-03-15", TimeOfDay: domain.TimeframeMorning},
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Remove(context.Background(), &models.RemoveSlotsRequest{Slots: []models.SlotInput{
		{Date: "2026-03-15", TimeOfDay: "all"},
	}})

	require.NoError(t, err)
	assert.Len(t, repo.stored, 1)
}

func TestList(t *testing.T) {
	repo := &fakeRepo{stored: []*domain.UnavailableSlot{
		{ID: "1", Date: "2026-03-15", TimeOfDay: domain.TimeframeAll},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "all", resp.Slots[0].TimeOfDay)
}
