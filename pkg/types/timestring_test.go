package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"14:00", "14:00", false},
		{"09:05", "09:05", false},
		{"14:00:30", "14:00", false}, // seconds are dropped
		{"25:00", "", true},
		{"1400", "", true},
		{"", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		got, err := NewTimeStringFromString(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input=%q", tt.input)
			continue
		}
		require.NoError(t, err, "input=%q", tt.input)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 15, 18, 30, 45, 0, time.UTC))
	assert.Equal(t, "18:30", ts.String())
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	minutes, err := TimeString("14:30").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, minutes)

	_, err = TimeString("bogus").MinutesOfDay()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("14:00"))
	assert.True(t, TimeString("14:00").IsAfter("09:00"))
	assert.False(t, TimeString("14:00").IsBefore("14:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("23:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "00:15", got.String())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, "14:00", ts.String())

	require.NoError(t, ts.Scan([]byte("09:30")))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, "", ts.String())

	assert.Error(t, ts.Scan(42))
}
