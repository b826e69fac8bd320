package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	sessionRepo "github.com/amswalks/AWT-BookingFunnel/internal/infra/storage/session"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
	"github.com/amswalks/AWT-BookingFunnel/pkg/types"
)

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*domain.Session
	updated  int
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *domain.Session) error {
	r.updated++
	r.sessions[session.ID] = session
	return nil
}

type fakePlatform struct {
	exists     bool
	existsErr  error
	details    *bookingapi.ExistingBooking
	detailsErr error

	created   *bookingapi.Booking
	createErr error

	slots []bookingapi.AvailabilitySlot

	createCalls []bookingapi.CreateBookingRequest
	availCalls  int
}

func (p *fakePlatform) CheckBookingExists(ctx context.Context, email string) (bool, error) {
	return p.exists, p.existsErr
}

func (p *fakePlatform) GetBookingByEmail(ctx context.Context, email string) (*bookingapi.ExistingBooking, error) {
	return p.details, p.detailsErr
}

func (p *fakePlatform) CreateBooking(ctx context.Context, req *bookingapi.CreateBookingRequest) (*bookingapi.Booking, error) {
	p.createCalls = append(p.createCalls, *req)
	return p.created, p.createErr
}

func (p *fakePlatform) CheckAvailability(ctx context.Context, date string, tourTime *string) ([]bookingapi.AvailabilitySlot, error) {
	p.availCalls++
	return p.slots, nil
}

type fakeTitles struct{}

func (fakeTitles) ResolveTitle(ctx context.Context, tourTime string) string {
	return "Amsterdam Original Tour"
}

type fakeLastBookings struct {
	stored map[string]string
	err    error
}

func (s *fakeLastBookings) SetLastBookingID(ctx context.Context, sessionID, publicID string) error {
	if s.err != nil {
		return s.err
	}
	if s.stored == nil {
		s.stored = map[string]string{}
	}
	s.stored[sessionID] = publicID
	return nil
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

func sessionAtContactDetails(t *testing.T) *domain.Session {
	t.Helper()
	s := domain.NewSession(time.Now())
	require.NoError(t, s.SelectDate(time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, s.SetGuests(4))
	require.NoError(t, s.ContinueFromGuests())
	require.NoError(t, s.SelectTime(types.TimeString("14:00")))
	return s
}

func newTestUseCase(t *testing.T, repo *fakeSessionRepo, platform *fakePlatform, lastBookings *fakeLastBookings) *UseCase {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)
	uc := NewUseCase(repo, platform, fakeTitles{}, lastBookings, fakeTxManager{}, loc, 30*time.Minute, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 15, 12, 0, 0, 0, loc)}
	return uc
}

func TestExecute_CreatesBooking(t *testing.T) {
	session := sessionAtContactDetails(t)
	repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
	platform := &fakePlatform{
		created: &bookingapi.Booking{WebsiteBookingID: "BK-777", Status: "scheduled"},
	}
	lastBookings := &fakeLastBookings{}
	uc := newTestUseCase(t, repo, platform, lastBookings)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, resp.Outcome)
	assert.Equal(t, domain.StepContactEnrichment, resp.Session.Step)
	require.NotNil(t, resp.Session.BookingPublicID)
	assert.Equal(t, "BK-777", *resp.Session.BookingPublicID)

	require.Len(t, platform.createCalls, 1)
	created := platform.createCalls[0]
	assert.Equal(t, "Jane Doe", created.CustomerName)
	assert.Equal(t, "jane@example.com", created.CustomerEmail)
	assert.Equal(t, "2026-09-20", created.TourDate)
	assert.Equal(t, "14:00", created.TourTime)
	assert.Equal(t, "Amsterdam Original Tour", created.TourTitle)
	assert.Equal(t, 4, created.NumPeople)
	assert.False(t, created.PotentialBigGroup)

	assert.Equal(t, "BK-777", lastBookings.stored[session.ID.String()])
}

func TestExecute_Over6LatchMarksPotentialBigGroup(t *testing.T) {
	session := domain.NewSession(time.Now())
	require.NoError(t, session.SelectDate(time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, session.SetGuests(8))
	require.NoError(t, session.SetGuests(4)) // reduced, latch stays
	require.NoError(t, session.ContinueFromGuests())
	require.NoError(t, session.SelectTime(types.TimeString("14:00")))

	repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
	platform := &fakePlatform{created: &bookingapi.Booking{WebsiteBookingID: "BK-1"}}
	uc := newTestUseCase(t, repo, platform, &fakeLastBookings{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})

	require.NoError(t, err)
	require.Len(t, platform.createCalls, 1)
	assert.True(t, platform.createCalls[0].PotentialBigGroup)
}

func TestExecute_DuplicateFoundNeverCreates(t *testing.T) {
	session := sessionAtContactDetails(t)
	repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
	platform := &fakePlatform{
		exists: true,
		details: &bookingapi.ExistingBooking{
			Date:          "2026-09-25",
			Time:          "16:00",
			Persons:       2,
			BookingCode:   "BK-OLD",
			CustomerName:  "Jane Doe",
			CustomerEmail: "jane@example.com",
		},
	}
	uc := newTestUseCase(t, repo, platform, &fakeLastBookings{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicateFound, resp.Outcome)
	assert.Equal(t, msgDuplicateFound, resp.Message)
	assert.Equal(t, domain.StepDuplicateFound, resp.Session.Step)
	require.NotNil(t, resp.Session.Existing)
	assert.Equal(t, "BK-OLD", resp.Session.Existing.BookingCode)
	assert.Empty(t, platform.createCalls, "duplicate path must not create a booking")
}

func TestExecute_ExistsButNoDetailsCreatesAnyway(t *testing.T) {
	session := sessionAtContactDetails(t)
	repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
	platform := &fakePlatform{
		exists:  true,
		details: nil, // booking on record, details endpoint returned nothing
		created: &bookingapi.Booking{WebsiteBookingID: "BK-2"},
	}
	uc := newTestUseCase(t, repo, platform, &fakeLastBookings{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, resp.Outcome)
	require.Len(t, platform.createCalls, 1)
}

func TestExecute_DuplicateCheckFailureCreatesAnyway(t *testing.T) {
	session := sessionAtContactDetails(t)
	repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
	platform := &fakePlatform{
		existsErr: bookingapi.ErrNetwork,
		created:   &bookingapi.Booking{WebsiteBookingID: "BK-3"},
	}
	uc := newTestUseCase(t, repo, platform, &fakeLastBookings{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, resp.Outcome)
	require.Len(t, platform.createCalls, 1)
}

func TestExecute_CapacityErrorForcesReselectTime(t *testing.T) {
	session := sessionAtContactDetails(t)
	repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
	platform := &fakePlatform{
		createErr: &bookingapi.InsufficientSpotsError{AvailableSpots: 2, Message: "Only 2 spots remaining"},
		slots: []bookingapi.AvailabilitySlot{
			{TourTime: "18:00:00", AvailableSpots: 8, IsAvailable: true},
		},
	}
	uc := newTestUseCase(t, repo, platform, &fakeLastBookings{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeReselectTime, resp.Outcome)
	assert.Equal(t, "Only 2 spots remaining for this time. Please pick another time or reduce your group size", resp.Message)
	require.NotNil(t, resp.AvailableSpots)
	assert.Equal(t, 2, *resp.AvailableSpots)

	// session regressed to time selection and the regression was persisted
	assert.Equal(t, domain.StepDateSelection, resp.Session.Step)
	assert.Nil(t, resp.Session.SelectedTime)
	assert.True(t, resp.Session.TimeSlotsShown)
	assert.Equal(t, 1, repo.updated)

	// fresh availability came back with the response
	assert.Equal(t, 1, platform.availCalls)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "18:00", resp.Slots[0].TourTime)
}

func TestExecute_FullyBookedMessage(t *testing.T) {
	session := sessionAtContactDetails(t)
	repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
	platform := &fakePlatform{createErr: bookingapi.ErrFullyBooked}
	uc := newTestUseCase(t, repo, platform, &fakeLastBookings{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeReselectTime, resp.Outcome)
	assert.Equal(t, msgFullyBooked, resp.Message)
	assert.Nil(t, resp.AvailableSpots)
}

func TestExecute_PlatformErrors(t *testing.T) {
	t.Run("validation rejection", func(t *testing.T) {
		session := sessionAtContactDetails(t)
		repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
		platform := &fakePlatform{createErr: bookingapi.ErrValidation}
		uc := newTestUseCase(t, repo, platform, &fakeLastBookings{})

		_, err := uc.Execute(context.Background(), &Request{
			SessionID: session.ID,
			Name:      "Jane Doe",
			Email:     "jane@example.com",
		})

		assert.ErrorIs(t, err, ErrPlatformRejected)
	})

	t.Run("network failure", func(t *testing.T) {
		session := sessionAtContactDetails(t)
		repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
		platform := &fakePlatform{createErr: bookingapi.ErrNetwork}
		uc := newTestUseCase(t, repo, platform, &fakeLastBookings{})

		_, err := uc.Execute(context.Background(), &Request{
			SessionID: session.ID,
			Name:      "Jane Doe",
			Email:     "jane@example.com",
		})

		assert.ErrorIs(t, err, ErrPlatformUnavailable)
	})
}

func TestExecute_ValidatesContact(t *testing.T) {
	uc := newTestUseCase(t, &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{}}, &fakePlatform{}, &fakeLastBookings{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: uuid.New(), Name: "  ", Email: "jane@example.com"})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = uc.Execute(context.Background(), &Request{SessionID: uuid.New(), Name: "Jane", Email: "jane..doe@example.com"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc := newTestUseCase(t, &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{}}, &fakePlatform{}, &fakeLastBookings{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: uuid.New(),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_WrongStep(t *testing.T) {
	session := domain.NewSession(time.Now()) // still at date selection
	repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
	uc := newTestUseCase(t, repo, &fakePlatform{}, &fakeLastBookings{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_LastBookingStoreFailureIsNotFatal(t *testing.T) {
	session := sessionAtContactDetails(t)
	repo := &fakeSessionRepo{sessions: map[uuid.UUID]*domain.Session{session.ID: session}}
	platform := &fakePlatform{created: &bookingapi.Booking{WebsiteBookingID: "BK-9"}}
	uc := newTestUseCase(t, repo, platform, &fakeLastBookings{err: assert.AnError})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, resp.Outcome)
}
