package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amswalks/AWT-BookingFunnel/pkg/types"
)

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func sessionAtContactDetails(t *testing.T) *Session {
	t.Helper()
	s := NewSession(time.Now())
	require.NoError(t, s.SelectDate(testDate))
	require.NoError(t, s.SetGuests(4))
	require.NoError(t, s.ContinueFromGuests())
	require.NoError(t, s.SelectTime(types.TimeString("14:00")))
	require.Equal(t, StepContactDetails, s.Step)
	return s
}

func TestNewSession_StartsAtDateSelection(t *testing.T) {
	s := NewSession(time.Now())

	assert.Equal(t, StepDateSelection, s.Step)
	assert.Equal(t, MinGuests, s.Guests)
	assert.Nil(t, s.TourDate)
	assert.Nil(t, s.SelectedTime)
	assert.False(t, s.TimeSlotsShown)
}

func TestSelectDate_ResetsDependentState(t *testing.T) {
	s := NewSession(time.Now())
	require.NoError(t, s.SelectDate(testDate))
	require.NoError(t, s.SetGuests(5))
	require.NoError(t, s.ContinueFromGuests())
	require.True(t, s.TimeSlotsShown)

	require.NoError(t, s.SelectDate(testDate.AddDate(0, 0, 1)))

	assert.Equal(t, MinGuests, s.Guests)
	assert.False(t, s.TimeSlotsShown)
	assert.Nil(t, s.SelectedTime)
}

func TestClearDate_DropsEverything(t *testing.T) {
	s := NewSession(time.Now())
	require.NoError(t, s.SelectDate(testDate))
	require.NoError(t, s.SetGuests(3))

	require.NoError(t, s.ClearDate())

	assert.Nil(t, s.TourDate)
	assert.Equal(t, MinGuests, s.Guests)
}

func TestSetGuests_RequiresDate(t *testing.T) {
	s := NewSession(time.Now())

	err := s.SetGuests(4)

	assert.ErrorIs(t, err, ErrDateNotSelected)
}

func TestSetGuests_LatchIsSticky(t *testing.T) {
	s := NewSession(time.Now())
	require.NoError(t, s.SelectDate(testDate))

	require.NoError(t, s.SetGuests(8))
	assert.True(t, s.HasSelectedOver6)

	// reducing the count does not release the latch
	require.NoError(t, s.SetGuests(2))
	assert.True(t, s.HasSelectedOver6)
	assert.Equal(t, 2, s.Guests)
}

func TestContinueFromGuests_RoutesBigGroupsToPrivate(t *testing.T) {
	s := NewSession(time.Now())
	require.NoError(t, s.SelectDate(testDate))
	require.NoError(t, s.SetGuests(9))

	require.NoError(t, s.ContinueFromGuests())

	assert.Equal(t, StepPrivateGuests, s.Step)
	assert.Equal(t, 9, s.PrivateGuests)
	assert.False(t, s.TimeSlotsShown)
}

func TestContinueFromGuests_ShowsSlotsForStandardGroup(t *testing.T) {
	s := NewSession(time.Now())
	require.NoError(t, s.SelectDate(testDate))
	require.NoError(t, s.SetGuests(StandardGroupCap))

	require.NoError(t, s.ContinueFromGuests())

	assert.Equal(t, StepDateSelection, s.Step)
	assert.True(t, s.TimeSlotsShown)
}

func TestSelectTime_RequiresSlotsShown(t *testing.T) {
	s := NewSession(time.Now())
	require.NoError(t, s.SelectDate(testDate))

	err := s.SelectTime(types.TimeString("14:00"))

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSelectTime_AdvancesToContactDetails(t *testing.T) {
	s := sessionAtContactDetails(t)

	require.NotNil(t, s.SelectedTime)
	assert.Equal(t, "14:00", s.SelectedTime.String())
}

func TestMarkDuplicateFound_RequiresSnapshot(t *testing.T) {
	s := sessionAtContactDetails(t)

	err := s.MarkDuplicateFound(nil)

	assert.ErrorIs(t, err, ErrNoDuplicateFound)
	assert.Equal(t, StepContactDetails, s.Step)
}

func TestMarkDuplicateFound_AdvancesWithSnapshot(t *testing.T) {
	s := sessionAtContactDetails(t)

	existing := &ExistingBooking{Date: "2026-09-20", Time: "16:00", Persons: 2}
	require.NoError(t, s.MarkDuplicateFound(existing))

	assert.Equal(t, StepDuplicateFound, s.Step)
	assert.Equal(t, existing, s.Existing)
}

func TestMarkBookingCreated_AdvancesToEnrichment(t *testing.T) {
	s := sessionAtContactDetails(t)

	require.NoError(t, s.MarkBookingCreated("BK-123"))

	assert.Equal(t, StepContactEnrichment, s.Step)
	require.NotNil(t, s.BookingPublicID)
	assert.Equal(t, "BK-123", *s.BookingPublicID)
}

func TestCompleteEnrichment_Terminal(t *testing.T) {
	s := sessionAtContactDetails(t)
	require.NoError(t, s.MarkBookingCreated("BK-123"))

	require.NoError(t, s.CompleteEnrichment())

	assert.Equal(t, StepCompleted, s.Step)
	assert.True(t, s.Step.IsTerminal())
	assert.ErrorIs(t, s.GoBack(), ErrInvalidTransition)
}

func TestMarkRescheduled_FinishesFromDuplicateScreen(t *testing.T) {
	s := sessionAtContactDetails(t)
	require.NoError(t, s.MarkDuplicateFound(&ExistingBooking{Date: "2026-09-20", Time: "16:00"}))

	require.NoError(t, s.MarkRescheduled("BK-456"))

	assert.Equal(t, StepCompleted, s.Step)
	assert.Nil(t, s.Existing)
	require.NotNil(t, s.BookingPublicID)
	assert.Equal(t, "BK-456", *s.BookingPublicID)
}

func TestSetPrivateGuests_ClampsAndLatches(t *testing.T) {
	s := NewSession(time.Now())
	require.NoError(t, s.SelectDate(testDate))
	require.NoError(t, s.SetGuests(7))
	require.NoError(t, s.ContinueFromGuests())
	require.Equal(t, StepPrivateGuests, s.Step)

	require.NoError(t, s.SetPrivateGuests(50))
	assert.Equal(t, PrivateTourGuestCap, s.PrivateGuests)
	assert.True(t, s.HasSelectedOver6)

	require.NoError(t, s.SetPrivateGuests(0))
	assert.Equal(t, MinGuests, s.PrivateGuests)
}

func TestPrivateBranch_FullFlow(t *testing.T) {
	s := NewSession(time.Now())
	require.NoError(t, s.SelectDate(testDate))
	require.NoError(t, s.SetGuests(12))
	require.NoError(t, s.ContinueFromGuests())

	require.NoError(t, s.ContinueToPrivateContact())
	assert.Equal(t, StepPrivateContact, s.Step)

	require.NoError(t, s.MarkPrivateRequestSubmitted())
	assert.Equal(t, StepPrivateConfirmed, s.Step)
	assert.True(t, s.Step.IsTerminal())
}

func TestGoBack_Table(t *testing.T) {
	t.Run("contact details back to time selection", func(t *testing.T) {
		s := sessionAtContactDetails(t)

		require.NoError(t, s.GoBack())

		assert.Equal(t, StepDateSelection, s.Step)
		assert.Nil(t, s.SelectedTime)
		assert.True(t, s.TimeSlotsShown)
		assert.NotNil(t, s.TourDate)
		assert.Equal(t, 4, s.Guests)
	})

	t.Run("duplicate screen back to contact details", func(t *testing.T) {
		s := sessionAtContactDetails(t)
		require.NoError(t, s.MarkDuplicateFound(&ExistingBooking{Date: "2026-09-20"}))

		require.NoError(t, s.GoBack())

		assert.Equal(t, StepContactDetails, s.Step)
		assert.Nil(t, s.Existing)
	})

	t.Run("private guests back to date selection", func(t *testing.T) {
		s := NewSession(time.Now())
		require.NoError(t, s.SelectDate(testDate))
		require.NoError(t, s.SetGuests(8))
		require.NoError(t, s.ContinueFromGuests())

		require.NoError(t, s.GoBack())

		assert.Equal(t, StepDateSelection, s.Step)
		assert.False(t, s.TimeSlotsShown)
	})

	t.Run("private contact back to private guests", func(t *testing.T) {
		s := NewSession(time.Now())
		require.NoError(t, s.SelectDate(testDate))
		require.NoError(t, s.SetGuests(8))
		require.NoError(t, s.ContinueFromGuests())
		require.NoError(t, s.ContinueToPrivateContact())

		require.NoError(t, s.GoBack())

		assert.Equal(t, StepPrivateGuests, s.Step)
	})

	t.Run("no back edge from enrichment", func(t *testing.T) {
		s := sessionAtContactDetails(t)
		require.NoError(t, s.MarkBookingCreated("BK-123"))

		assert.ErrorIs(t, s.GoBack(), ErrInvalidTransition)
	})
}

func TestForceReselectTime(t *testing.T) {
	t.Run("from contact details", func(t *testing.T) {
		s := sessionAtContactDetails(t)

		require.NoError(t, s.ForceReselectTime())

		assert.Equal(t, StepDateSelection, s.Step)
		assert.Nil(t, s.SelectedTime)
		assert.True(t, s.TimeSlotsShown)
	})

	t.Run("from duplicate screen", func(t *testing.T) {
		s := sessionAtContactDetails(t)
		require.NoError(t, s.MarkDuplicateFound(&ExistingBooking{Date: "2026-09-20"}))

		require.NoError(t, s.ForceReselectTime())

		assert.Equal(t, StepDateSelection, s.Step)
		assert.Nil(t, s.Existing)
	})

	t.Run("not allowed elsewhere", func(t *testing.T) {
		s := NewSession(time.Now())

		assert.ErrorIs(t, s.ForceReselectTime(), ErrInvalidTransition)
	})
}

func TestIllegalTransitions(t *testing.T) {
	s := NewSession(time.Now())

	assert.ErrorIs(t, s.SelectTime(types.TimeString("14:00")), ErrInvalidTransition)
	assert.ErrorIs(t, s.SetContact("Jane", "jane@example.com"), ErrInvalidTransition)
	assert.ErrorIs(t, s.MarkBookingCreated("BK-1"), ErrInvalidTransition)
	assert.ErrorIs(t, s.MarkRescheduled("BK-1"), ErrInvalidTransition)
	assert.ErrorIs(t, s.CompleteEnrichment(), ErrInvalidTransition)
	assert.ErrorIs(t, s.SetPrivateGuests(5), ErrInvalidTransition)
	assert.ErrorIs(t, s.ContinueToPrivateContact(), ErrInvalidTransition)
	assert.ErrorIs(t, s.MarkPrivateRequestSubmitted(), ErrInvalidTransition)
	assert.ErrorIs(t, s.GoBack(), ErrInvalidTransition)
}
