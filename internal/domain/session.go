package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/amswalks/AWT-BookingFunnel/pkg/types"
)

// WizardStep is a named wizard state. Steps carry entry conditions enforced
// by the transition methods below, so a session can never, for example, sit
// on the duplicate screen without an existing-booking snapshot.
type WizardStep string

const (
	// StepDateSelection date, guest count and time selection (initial step)
	StepDateSelection WizardStep = "date_selection"
	// StepContactDetails name + email form, entered once a time is chosen
	StepContactDetails WizardStep = "contact_details"
	// StepContactEnrichment optional phone/country form after the booking was created
	StepContactEnrichment WizardStep = "contact_enrichment"
	// StepDuplicateFound resolution screen for a pre-existing booking on the same email
	StepDuplicateFound WizardStep = "duplicate_found"
	// StepPrivateGuests private-tour party size + pricing
	StepPrivateGuests WizardStep = "private_tour_guests"
	// StepPrivateContact private-tour contact form
	StepPrivateContact WizardStep = "private_tour_contact"
	// StepPrivateConfirmed terminal: private-tour request accepted
	StepPrivateConfirmed WizardStep = "private_tour_confirmed"
	// StepCompleted terminal: booking flow finished
	StepCompleted WizardStep = "completed"
)

// IsTerminal returns true if no further transitions are possible from the step
func (s WizardStep) IsTerminal() bool {
	return s == StepCompleted || s == StepPrivateConfirmed
}

// Transition errors
var (
	ErrInvalidTransition = errors.New("domain: transition not allowed from current step")
	ErrDateNotSelected   = errors.New("domain: tour date is not selected")
	ErrTimeNotSelected   = errors.New("domain: tour time is not selected")
	ErrNoDuplicateFound  = errors.New("domain: no existing booking on file")
)

// Session is one wizard session: the in-progress booking draft plus the
// current step. Discarded on close; superseded by the remote Booking once
// the create call succeeds.
type Session struct {
	ID   uuid.UUID
	Step WizardStep

	// Step-1 sub-state: each field gates the next one.
	TourDate       *time.Time
	Guests         int
	TimeSlotsShown bool
	SelectedTime   *types.TimeString

	// Contact draft
	Name      string
	Email     string
	Phone     string
	CountryID string

	// One-way latch: set when the guest count ever exceeded the standard
	// group cap, cleared only when the whole session is discarded.
	HasSelectedOver6 bool

	// Private-tour branch
	PrivateGuests int

	// Set once the remote create call succeeded
	BookingPublicID *string

	// Duplicate-booking snapshot, present only at StepDuplicateFound
	Existing *ExistingBooking

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates an empty draft at the initial step
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Step:      StepDateSelection,
		Guests:    MinGuests,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectDate sets the tour date and clears all dependent sub-state:
// guest count resets to the minimum, the time slot list is hidden and any
// selected time is dropped. Allowed only on the date-selection step.
func (s *Session) SelectDate(date time.Time) error {
	if s.Step != StepDateSelection {
		return ErrInvalidTransition
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	s.TourDate = &day
	s.Guests = MinGuests
	s.TimeSlotsShown = false
	s.SelectedTime = nil
	return nil
}

// ClearDate regresses to the very beginning of the date-selection sub-flow
func (s *Session) ClearDate() error {
	if s.Step != StepDateSelection {
		return ErrInvalidTransition
	}
	s.TourDate = nil
	s.Guests = MinGuests
	s.TimeSlotsShown = false
	s.SelectedTime = nil
	return nil
}

// SetGuests sets the party size. Crossing the standard group cap latches
// HasSelectedOver6 for the rest of the session, even if the count is later
// reduced. The caller clamps the count to the entry point's ceiling.
func (s *Session) SetGuests(guests int) error {
	if s.Step != StepDateSelection {
		return ErrInvalidTransition
	}
	if s.TourDate == nil {
		return ErrDateNotSelected
	}
	if guests < MinGuests {
		guests = MinGuests
	}
	s.Guests = guests
	if guests > StandardGroupCap {
		s.HasSelectedOver6 = true
	}
	s.TimeSlotsShown = false
	s.SelectedTime = nil
	return nil
}

// ContinueFromGuests advances past the guest selector: parties over the
// standard cap are routed to the private-tour branch, everyone else gets
// the time slot list.
func (s *Session) ContinueFromGuests() error {
	if s.Step != StepDateSelection {
		return ErrInvalidTransition
	}
	if s.TourDate == nil {
		return ErrDateNotSelected
	}
	if s.Guests > StandardGroupCap {
		s.Step = StepPrivateGuests
		s.PrivateGuests = s.Guests
		return nil
	}
	s.TimeSlotsShown = true
	return nil
}

// SelectTime picks a time slot and advances to the contact form
func (s *Session) SelectTime(t types.TimeString) error {
	if s.Step != StepDateSelection || !s.TimeSlotsShown {
		return ErrInvalidTransition
	}
	s.SelectedTime = &t
	s.Step = StepContactDetails
	return nil
}

// SetContact stores the contact draft fields on the contact step
func (s *Session) SetContact(name, email string) error {
	if s.Step != StepContactDetails {
		return ErrInvalidTransition
	}
	s.Name = name
	s.Email = email
	return nil
}

// MarkDuplicateFound moves to the duplicate-resolution screen.
// The snapshot is required: the duplicate step is unrepresentable without it.
func (s *Session) MarkDuplicateFound(existing *ExistingBooking) error {
	if s.Step != StepContactDetails {
		return ErrInvalidTransition
	}
	if existing == nil {
		return ErrNoDuplicateFound
	}
	s.Existing = existing
	s.Step = StepDuplicateFound
	return nil
}

// MarkBookingCreated records the created booking and advances to the
// optional phone/country enrichment step
func (s *Session) MarkBookingCreated(publicID string) error {
	if s.Step != StepContactDetails {
		return ErrInvalidTransition
	}
	s.BookingPublicID = &publicID
	s.Step = StepContactEnrichment
	return nil
}

// MarkRescheduled records the replacement booking created from the duplicate
// screen and finishes the session (the enrichment step is skipped: the phone
// is carried over from the old booking).
func (s *Session) MarkRescheduled(publicID string) error {
	if s.Step != StepDuplicateFound {
		return ErrInvalidTransition
	}
	s.BookingPublicID = &publicID
	s.Existing = nil
	s.Step = StepCompleted
	return nil
}

// CompleteEnrichment finishes the session after the optional phone step.
// This step can never block completion: it is legal with or without
// phone/country filled in.
func (s *Session) CompleteEnrichment() error {
	if s.Step != StepContactEnrichment {
		return ErrInvalidTransition
	}
	s.Step = StepCompleted
	return nil
}

// SetPrivateGuests sets the private-tour party size. The over-6 latch applies
// here as well: a private-tour party over the standard cap marks the session.
func (s *Session) SetPrivateGuests(guests int) error {
	if s.Step != StepPrivateGuests {
		return ErrInvalidTransition
	}
	if guests < MinGuests {
		guests = MinGuests
	}
	if guests > PrivateTourGuestCap {
		guests = PrivateTourGuestCap
	}
	s.PrivateGuests = guests
	if guests > StandardGroupCap {
		s.HasSelectedOver6 = true
	}
	return nil
}

// ContinueToPrivateContact advances to the private-tour contact form
func (s *Session) ContinueToPrivateContact() error {
	if s.Step != StepPrivateGuests {
		return ErrInvalidTransition
	}
	s.Step = StepPrivateContact
	return nil
}

// MarkPrivateRequestSubmitted finishes the private-tour branch.
// Called regardless of whether the remote endpoint acknowledged the request.
func (s *Session) MarkPrivateRequestSubmitted() error {
	if s.Step != StepPrivateContact {
		return ErrInvalidTransition
	}
	s.Step = StepPrivateConfirmed
	return nil
}

// GoBack performs the reverse transition offered on the current step.
// The enrichment step deliberately offers no back edge.
func (s *Session) GoBack() error {
	switch s.Step {
	case StepContactDetails:
		// back to time selection, keeping date and guests
		s.Step = StepDateSelection
		s.SelectedTime = nil
		s.TimeSlotsShown = true
		return nil
	case StepDuplicateFound:
		s.Existing = nil
		s.Step = StepContactDetails
		return nil
	case StepPrivateGuests:
		s.Step = StepDateSelection
		s.TimeSlotsShown = false
		return nil
	case StepPrivateContact:
		s.Step = StepPrivateGuests
		return nil
	default:
		return ErrInvalidTransition
	}
}

// ForceReselectTime is the forced regression after a capacity error from the
// remote platform: the chosen time is discarded and the visitor re-selects a
// slot against refreshed availability.
func (s *Session) ForceReselectTime() error {
	if s.Step != StepContactDetails && s.Step != StepDuplicateFound {
		return ErrInvalidTransition
	}
	s.Existing = nil
	s.SelectedTime = nil
	s.TimeSlotsShown = true
	s.Step = StepDateSelection
	return nil
}
