package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifecarelabs/lab-portal/internal/domain/schedule"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

type fakeCalRepo struct {
	wholeDay   *models.CapacityBlock
	slotBlocks []models.CapacityBlock
}

func (f *fakeCalRepo) GetWholeDayBlock(ctx context.Context, date time.Time) (*models.CapacityBlock, error) {
	return f.wholeDay, nil
}

func (f *fakeCalRepo) ListSlotBlocks(ctx context.Context, date time.Time) ([]models.CapacityBlock, error) {
	return f.slotBlocks, nil
}

func (f *fakeCalRepo) CreateBlock(ctx context.Context, block *models.CapacityBlock) error {
	return nil
}

func (f *fakeCalRepo) GetBlock(ctx context.Context, id uint) (*models.CapacityBlock, error) {
	return nil, nil
}

func (f *fakeCalRepo) DeleteBlock(ctx context.Context, id uint) error { return nil }

func (f *fakeCalRepo) ListBlocks(ctx context.Context, from time.Time) ([]models.CapacityBlock, error) {
	return nil, nil
}

var _ schedule.CalendarRepository = (*fakeCalRepo)(nil)

func TestGetAvailabilityOpenDay(t *testing.T) {
	uc := NewGetAvailability(&fakeCalRepo{})

	av, err := uc.Execute(context.Background(), time.Now())
	require.NoError(t, err)

	assert.False(t, av.FullyBlocked)
	assert.Len(t, av.Slots, 14)
}

func TestGetAvailabilityWholeDayBlocked(t *testing.T) {
	uc := NewGetAvailability(&fakeCalRepo{
		wholeDay: &models.CapacityBlock{Reason: "Diwali"},

		// não deve nem ser consultado
		slotBlocks: []models.CapacityBlock{{TimeSlot: "07:00 AM - 08:00 AM"}},
	})

	av, err := uc.Execute(context.Background(), time.Now())
	require.NoError(t, err)

	assert.True(t, av.FullyBlocked)
	assert.Equal(t, "Diwali", av.Reason)
	assert.Empty(t, av.Slots)
}

func TestGetAvailabilityPartialBlocks(t *testing.T) {
	uc := NewGetAvailability(&fakeCalRepo{
		slotBlocks: []models.CapacityBlock{
			{TimeSlot: "09:00 AM - 10:00 AM"},
		},
	})

	av, err := uc.Execute(context.Background(), time.Now())
	require.NoError(t, err)

	require.Len(t, av.Slots, 14)
	assert.True(t, av.Slots[2].Blocked)
	assert.False(t, av.Slots[0].Blocked)
}
