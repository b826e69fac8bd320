package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/infra/cache"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
)

type fakePlatform struct {
	times []bookingapi.TourTime
	err   error
	calls int
}

func (p *fakePlatform) ListTourTimes(ctx context.Context) ([]bookingapi.TourTime, error) {
	p.calls++
	return p.times, p.err
}

type fakeCache struct {
	times   []domain.TourTime
	getErr  error
	setErr  error
	setWith []domain.TourTime
}

func (c *fakeCache) GetTourTimes(ctx context.Context) ([]domain.TourTime, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.times, nil
}

func (c *fakeCache) SetTourTimes(ctx context.Context, times []domain.TourTime) error {
	c.setWith = times
	return c.setErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const defaultTitle = "Amsterdam Original Tour"

func TestTourTimes_CacheHitSkipsPlatform(t *testing.T) {
	platform := &fakePlatform{}
	cached := &fakeCache{times: []domain.TourTime{{TourTime: "14:00", TourTitle: "Afternoon Tour"}}}
	svc := NewService(platform, cached, defaultTitle, nopLogger{})

	times, err := svc.TourTimes(context.Background())

	require.NoError(t, err)
	require.Len(t, times, 1)
	assert.Equal(t, "Afternoon Tour", times[0].TourTitle)
	assert.Equal(t, 0, platform.calls)
}

func TestTourTimes_CacheMissFetchesAndStores(t *testing.T) {
	platform := &fakePlatform{times: []bookingapi.TourTime{
		{TourTime: "10:00", TourTitle: "Morning Tour"},
		{TourTime: "14:00", TourTitle: "Afternoon Tour"},
	}}
	cached := &fakeCache{getErr: cache.ErrNotFound}
	svc := NewService(platform, cached, defaultTitle, nopLogger{})

	times, err := svc.TourTimes(context.Background())

	require.NoError(t, err)
	require.Len(t, times, 2)
	assert.Equal(t, 1, platform.calls)
	assert.Equal(t, times, cached.setWith)
}

func TestTourTimes_CacheWriteFailureIsNotFatal(t *testing.T) {
	platform := &fakePlatform{times: []bookingapi.TourTime{{TourTime: "10:00", TourTitle: "Morning Tour"}}}
	cached := &fakeCache{getErr: cache.ErrNotFound, setErr: assert.AnError}
	svc := NewService(platform, cached, defaultTitle, nopLogger{})

	times, err := svc.TourTimes(context.Background())

	require.NoError(t, err)
	assert.Len(t, times, 1)
}

func TestTourTimes_PlatformDown(t *testing.T) {
	platform := &fakePlatform{err: bookingapi.ErrNetwork}
	cached := &fakeCache{getErr: cache.ErrNotFound}
	svc := NewService(platform, cached, defaultTitle, nopLogger{})

	_, err := svc.TourTimes(context.Background())

	assert.ErrorIs(t, err, ErrPlatformUnavailable)
}

func TestResolveTitle(t *testing.T) {
	cached := &fakeCache{times: []domain.TourTime{
		{TourTime: "10:00", TourTitle: "Morning Tour"},
		{TourTime: "14:00", TourTitle: "Afternoon Tour"},
	}}
	svc := NewService(&fakePlatform{}, cached, defaultTitle, nopLogger{})

	assert.Equal(t, "Morning Tour", svc.ResolveTitle(context.Background(), "10:00"))
	assert.Equal(t, defaultTitle, svc.ResolveTitle(context.Background(), "23:00"))
}

func TestResolveTitle_CatalogUnavailable(t *testing.T) {
	platform := &fakePlatform{err: bookingapi.ErrNetwork}
	cached := &fakeCache{getErr: cache.ErrNotFound}
	svc := NewService(platform, cached, defaultTitle, nopLogger{})

	assert.Equal(t, defaultTitle, svc.ResolveTitle(context.Background(), "10:00"))
}
