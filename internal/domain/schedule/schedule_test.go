package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifecarelabs/lab-portal/internal/models"
)

func TestGrid(t *testing.T) {
	g := Grid()

	require.Len(t, g, 14)
	assert.Equal(t, "07:00 AM - 08:00 AM", g[0])
	assert.Equal(t, "11:00 AM - 12:00 PM", g[4])
	assert.Equal(t, "12:00 PM - 01:00 PM", g[5])
	assert.Equal(t, "08:00 PM - 09:00 PM", g[13])
}

func TestGridIsACopy(t *testing.T) {
	g := Grid()
	g[0] = "mutated"

	assert.Equal(t, "07:00 AM - 08:00 AM", Grid()[0])
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, IsValidSlot("07:00 AM - 08:00 AM"))
	assert.True(t, IsValidSlot("08:00 PM - 09:00 PM"))

	assert.False(t, IsValidSlot(""))
	assert.False(t, IsValidSlot("06:00 AM - 07:00 AM"))
	assert.False(t, IsValidSlot("09:00 PM - 10:00 PM"))
	assert.False(t, IsValidSlot("7:00 AM - 8:00 AM"))
}

func TestSlotIndex(t *testing.T) {
	i, ok := SlotIndex("07:00 AM - 08:00 AM")
	require.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = SlotIndex("08:00 PM - 09:00 PM")
	require.True(t, ok)
	assert.Equal(t, 13, i)

	_, ok = SlotIndex("nope")
	assert.False(t, ok)
}

func TestComputeAvailabilityOpenDay(t *testing.T) {
	av := ComputeAvailability(nil, nil)

	assert.False(t, av.FullyBlocked)
	require.Len(t, av.Slots, 14)
	for _, s := range av.Slots {
		assert.False(t, s.Blocked, s.Label)
	}
}

func TestComputeAvailabilityWholeDayWins(t *testing.T) {
	wholeDay := &models.CapacityBlock{Reason: "Holiday"}

	// bloqueios por slot presentes, mas o dia inteiro tem precedência
	av := ComputeAvailability(wholeDay, []models.CapacityBlock{
		{TimeSlot: "07:00 AM - 08:00 AM"},
	})

	assert.True(t, av.FullyBlocked)
	assert.Equal(t, "Holiday", av.Reason)
	assert.Empty(t, av.Slots)
}

func TestComputeAvailabilitySlotBlocks(t *testing.T) {
	av := ComputeAvailability(nil, []models.CapacityBlock{
		{TimeSlot: "07:00 AM - 08:00 AM"},
		{TimeSlot: "08:00 PM - 09:00 PM"},
	})

	require.Len(t, av.Slots, 14)
	assert.True(t, av.Slots[0].Blocked)
	assert.True(t, av.Slots[13].Blocked)

	for _, s := range av.Slots[1:13] {
		assert.False(t, s.Blocked, s.Label)
	}
}

func TestComputeAvailabilityIgnoresEmptySentinel(t *testing.T) {
	// um registro de dia inteiro passado na lista errada não pode
	// marcar slot nenhum
	av := ComputeAvailability(nil, []models.CapacityBlock{{TimeSlot: ""}})

	for _, s := range av.Slots {
		assert.False(t, s.Blocked, s.Label)
	}
}
