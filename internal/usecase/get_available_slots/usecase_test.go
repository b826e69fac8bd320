package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type fakePlatform struct {
	slots []bookingapi.AvailabilitySlot
	err   error
	dates []string
}

func (p *fakePlatform) CheckAvailability(ctx context.Context, date string, tourTime *string) ([]bookingapi.AvailabilitySlot, error) {
	p.dates = append(p.dates, date)
	return p.slots, p.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(t *testing.T, platform *fakePlatform, now time.Time) *UseCase {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)
	uc := NewUseCase(platform, loc, 30*time.Minute, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now.In(loc)}
	return uc
}

func TestExecute_FiltersByCutoffAndCapacity(t *testing.T) {
	platform := &fakePlatform{
		slots: []bookingapi.AvailabilitySlot{
			{TourTime: "10:00:00", TourTitle: "Morning Tour", AvailableSpots: 10, IsAvailable: true},
			{TourTime: "14:00:00", TourTitle: "Afternoon Tour", AvailableSpots: 3, IsAvailable: true},
			{TourTime: "18:00:00", TourTitle: "Evening Tour", AvailableSpots: 5, IsAvailable: true},
		},
	}
	loc, _ := time.LoadLocation("Europe/Amsterdam")
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, loc)
	uc := newTestUseCase(t, platform, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   time.Date(2026, 9, 15, 0, 0, 0, 0, loc),
		Guests: 4,
	})

	require.NoError(t, err)
	// 10:00 already passed, 14:00 only fits 3, 18:00 remains
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "18:00", resp.Slots[0].TourTime)
	assert.Equal(t, "Evening Tour", resp.Slots[0].TourTitle)
	assert.True(t, resp.Slots[0].RunningLow)
	require.Len(t, platform.dates, 1)
	assert.Equal(t, "2026-09-15", platform.dates[0])
}

func TestExecute_RejectsPastDate(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Amsterdam")
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, loc)
	uc := newTestUseCase(t, &fakePlatform{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		Date:   time.Date(2026, 9, 14, 0, 0, 0, 0, loc),
		Guests: 2,
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsBadGuestCount(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Amsterdam")
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, loc)
	uc := newTestUseCase(t, &fakePlatform{}, now)
	date := time.Date(2026, 9, 16, 0, 0, 0, 0, loc)

	_, err := uc.Execute(context.Background(), &Request{Date: date, Guests: 0})
	assert.ErrorIs(t, err, ErrInvalidGuests)

	_, err = uc.Execute(context.Background(), &Request{Date: date, Guests: 21})
	assert.ErrorIs(t, err, ErrInvalidGuests)
}

func TestExecute_PlatformUnreachable(t *testing.T) {
	platform := &fakePlatform{err: bookingapi.ErrNetwork}
	loc, _ := time.LoadLocation("Europe/Amsterdam")
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, loc)
	uc := newTestUseCase(t, platform, now)

	_, err := uc.Execute(context.Background(), &Request{
		Date:   time.Date(2026, 9, 16, 0, 0, 0, 0, loc),
		Guests: 2,
	})

	assert.ErrorIs(t, err, ErrPlatformUnavailable)
}

func TestQuickDates_TodayStillStartable(t *testing.T) {
	platform := &fakePlatform{
		slots: []bookingapi.AvailabilitySlot{
			{TourTime: "18:00:00", AvailableSpots: 8, IsAvailable: true},
		},
	}
	loc, _ := time.LoadLocation("Europe/Amsterdam")
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, loc)
	uc := newTestUseCase(t, platform, now)

	dates, err := uc.QuickDates(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "Today", dates[0].Label)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, loc), dates[0].Date)
	assert.Equal(t, "Tomorrow", dates[1].Label)
	assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, loc), dates[1].Date)
}

func TestQuickDates_WindowShiftsAfterLastCutoff(t *testing.T) {
	platform := &fakePlatform{
		slots: []bookingapi.AvailabilitySlot{
			{TourTime: "18:00:00", AvailableSpots: 8, IsAvailable: true},
		},
	}
	loc, _ := time.LoadLocation("Europe/Amsterdam")
	now := time.Date(2026, 9, 15, 17, 45, 0, 0, loc)
	uc := newTestUseCase(t, platform, now)

	dates, err := uc.QuickDates(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "Tomorrow", dates[0].Label)
	assert.Equal(t, "Day after Tomorrow", dates[1].Label)
}

func TestQuickDates_AccountsForGroupSize(t *testing.T) {
	// the only slot today fits 4 but not 6
	platform := &fakePlatform{
		slots: []bookingapi.AvailabilitySlot{
			{TourTime: "18:00:00", AvailableSpots: 4, IsAvailable: true},
		},
	}
	loc, _ := time.LoadLocation("Europe/Amsterdam")
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, loc)
	uc := newTestUseCase(t, platform, now)

	dates, err := uc.QuickDates(context.Background(), 6)

	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "Tomorrow", dates[0].Label)
}
