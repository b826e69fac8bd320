package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/infra/cache"
	sessionRepo "github.com/amswalks/AWT-BookingFunnel/internal/infra/storage/session"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/sessions/models"
)

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	r.sessions[session.ID] = session
	return session, nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *domain.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.sessions[id]; !ok {
		return sessionRepo.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

type fakePlatform struct {
	slots []bookingapi.AvailabilitySlot
	err   error
}

func (p *fakePlatform) CheckAvailability(ctx context.Context, date string, tourTime *string) ([]bookingapi.AvailabilitySlot, error) {
	return p.slots, p.err
}

type fakeLastBookings struct {
	ids map[string]string
}

func (s *fakeLastBookings) GetLastBookingID(ctx context.Context, sessionID string) (string, error) {
	id, ok := s.ids[sessionID]
	if !ok {
		return "", cache.ErrNotFound
	}
	return id, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(t *testing.T, repo *fakeSessionRepo, platform *fakePlatform, lastBookings *fakeLastBookings) *Service {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, loc)
	return NewService(repo, platform, lastBookings, fakeTxManager{}, &fakeTimeProvider{now: now}, loc, 30*time.Minute, nopLogger{})
}

func startedSession(t *testing.T, svc *Service) uuid.UUID {
	t.Helper()
	state, err := svc.Start(context.Background())
	require.NoError(t, err)
	id, err := uuid.Parse(state.ID)
	require.NoError(t, err)
	return id
}

func TestStart(t *testing.T) {
	svc := newTestService(t, newFakeSessionRepo(), &fakePlatform{}, &fakeLastBookings{})

	state, err := svc.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StepDateSelection), state.Step)
	assert.Equal(t, domain.MinGuests, state.Guests)
	assert.Nil(t, state.TourDate)
}

func TestSelectDate(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo, &fakePlatform{}, &fakeLastBookings{})
	id := startedSession(t, svc)

	state, err := svc.SelectDate(context.Background(), id, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotNil(t, state.TourDate)
	assert.Equal(t, "2026-09-20", *state.TourDate)
}

func TestSetGuests_ClampsToSidebarCap(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo, &fakePlatform{}, &fakeLastBookings{})
	id := startedSession(t, svc)
	_, err := svc.SelectDate(context.Background(), id, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	state, err := svc.SetGuests(context.Background(), id, &models.SetGuestsRequest{Guests: 99})

	require.NoError(t, err)
	assert.Equal(t, domain.SidebarGuestCap, state.Guests)
	assert.True(t, state.HasSelectedOver6)
}

func TestSetGuests_WithoutDate(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo, &fakePlatform{}, &fakeLastBookings{})
	id := startedSession(t, svc)

	_, err := svc.SetGuests(context.Background(), id, &models.SetGuestsRequest{Guests: 3})

	assert.ErrorIs(t, err, ErrDateNotSelected)
}

func TestSetGuests_AdvanceRoutesBigGroupToPrivate(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo, &fakePlatform{}, &fakeLastBookings{})
	id := startedSession(t, svc)
	_, err := svc.SelectDate(context.Background(), id, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	state, err := svc.SetGuests(context.Background(), id, &models.SetGuestsRequest{Guests: 10, Advance: true})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StepPrivateGuests), state.Step)
	assert.Equal(t, 10, state.PrivateGuests)
	require.NotNil(t, state.PrivatePrice)
	assert.InDelta(t, 24.95, state.PrivatePrice.PerPerson, 0.001)
}

func TestSelectTime_ValidatesAgainstAvailability(t *testing.T) {
	repo := newFakeSessionRepo()
	platform := &fakePlatform{slots: []bookingapi.AvailabilitySlot{
		{TourTime: "14:00:00", AvailableSpots: 8, IsAvailable: true},
	}}
	svc := newTestService(t, repo, platform, &fakeLastBookings{})
	id := startedSession(t, svc)
	_, err := svc.SelectDate(context.Background(), id, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = svc.SetGuests(context.Background(), id, &models.SetGuestsRequest{Guests: 2, Advance: true})
	require.NoError(t, err)

	t.Run("available slot advances to contact details", func(t *testing.T) {
		state, err := svc.SelectTime(context.Background(), id, "14:00")

		require.NoError(t, err)
		assert.Equal(t, string(domain.StepContactDetails), state.Step)
		require.NotNil(t, state.SelectedTime)
		assert.Equal(t, "14:00", *state.SelectedTime)
	})
}

func TestSelectTime_SlotUnavailable(t *testing.T) {
	repo := newFakeSessionRepo()
	platform := &fakePlatform{slots: []bookingapi.AvailabilitySlot{
		{TourTime: "14:00:00", AvailableSpots: 1, IsAvailable: true},
	}}
	svc := newTestService(t, repo, platform, &fakeLastBookings{})
	id := startedSession(t, svc)
	_, err := svc.SelectDate(context.Background(), id, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = svc.SetGuests(context.Background(), id, &models.SetGuestsRequest{Guests: 4, Advance: true})
	require.NoError(t, err)

	// the only slot does not fit a party of 4
	_, err = svc.SelectTime(context.Background(), id, "14:00")
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// and a time that was never offered
	_, err = svc.SelectTime(context.Background(), id, "09:00")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestSelectTime_InvalidFormat(t *testing.T) {
	svc := newTestService(t, newFakeSessionRepo(), &fakePlatform{}, &fakeLastBookings{})

	_, err := svc.SelectTime(context.Background(), uuid.New(), "half past two")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGoBack(t *testing.T) {
	repo := newFakeSessionRepo()
	platform := &fakePlatform{slots: []bookingapi.AvailabilitySlot{
		{TourTime: "14:00:00", AvailableSpots: 8, IsAvailable: true},
	}}
	svc := newTestService(t, repo, platform, &fakeLastBookings{})
	id := startedSession(t, svc)
	_, err := svc.SelectDate(context.Background(), id, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = svc.SetGuests(context.Background(), id, &models.SetGuestsRequest{Guests: 2, Advance: true})
	require.NoError(t, err)
	_, err = svc.SelectTime(context.Background(), id, "14:00")
	require.NoError(t, err)

	state, err := svc.GoBack(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StepDateSelection), state.Step)
	assert.Nil(t, state.SelectedTime)
	assert.True(t, state.TimeSlotsShown)
}

func TestGoBack_NoBackEdge(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo, &fakePlatform{}, &fakeLastBookings{})
	id := startedSession(t, svc)

	_, err := svc.GoBack(context.Background(), id)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestClose(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo, &fakePlatform{}, &fakeLastBookings{})
	id := startedSession(t, svc)

	require.NoError(t, svc.Close(context.Background(), id))

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.Close(context.Background(), id), ErrSessionNotFound)
}

func TestLastBookingID(t *testing.T) {
	repo := newFakeSessionRepo()
	id := uuid.New()
	lastBookings := &fakeLastBookings{ids: map[string]string{id.String(): "BK-9"}}
	svc := newTestService(t, repo, &fakePlatform{}, lastBookings)

	bookingID, err := svc.LastBookingID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "BK-9", bookingID)

	_, err = svc.LastBookingID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSetPrivateGuests_AdvanceToContact(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(t, repo, &fakePlatform{}, &fakeLastBookings{})
	id := startedSession(t, svc)
	_, err := svc.SelectDate(context.Background(), id, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = svc.SetGuests(context.Background(), id, &models.SetGuestsRequest{Guests: 8, Advance: true})
	require.NoError(t, err)

	state, err := svc.SetPrivateGuests(context.Background(), id, 15, true)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StepPrivateContact), state.Step)
	assert.Equal(t, 15, state.PrivateGuests)
	require.NotNil(t, state.PrivatePrice)
	assert.InDelta(t, 15*24.95, state.PrivatePrice.Total, 0.001)
}
