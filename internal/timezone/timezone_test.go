package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Asia/Kolkata"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestLocationFallsBack(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("nonsense").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestDateOnly(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	d := DateOnly(time.Date(2026, 8, 31, 23, 45, 0, 0, loc))

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.August, d.Month())

	_, err = ParseDate("31/08/2026")
	assert.Error(t, err)
}
