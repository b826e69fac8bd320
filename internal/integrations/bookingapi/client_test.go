package bookingapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, "test-key", 5*time.Second, nopLogger{})
}

func TestClassifyError(t *testing.T) {
	t.Run("fully booked", func(t *testing.T) {
		err := classifyError("This tour is fully booked")
		assert.ErrorIs(t, err, ErrFullyBooked)
	})

	t.Run("insufficient spots with count", func(t *testing.T) {
		err := classifyError("Not enough spots: Only 2 spots remaining")

		assert.ErrorIs(t, err, ErrInsufficientSpots)
		var spotsErr *InsufficientSpotsError
		require.ErrorAs(t, err, &spotsErr)
		assert.Equal(t, 2, spotsErr.AvailableSpots)
	})

	t.Run("insufficient spots singular", func(t *testing.T) {
		err := classifyError("Not enough spots: Only 1 spot remaining")

		var spotsErr *InsufficientSpotsError
		require.ErrorAs(t, err, &spotsErr)
		assert.Equal(t, 1, spotsErr.AvailableSpots)
	})

	t.Run("insufficient spots without count", func(t *testing.T) {
		err := classifyError("Not enough spots")

		var spotsErr *InsufficientSpotsError
		require.ErrorAs(t, err, &spotsErr)
		assert.Equal(t, 0, spotsErr.AvailableSpots)
	})

	t.Run("not found", func(t *testing.T) {
		assert.ErrorIs(t, classifyError("Booking not found"), ErrBookingNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		assert.ErrorIs(t, classifyError("customer_email is required"), ErrValidation)
		assert.ErrorIs(t, classifyError("Invalid tour_date"), ErrValidation)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.ErrorIs(t, classifyError("something exploded"), ErrUnknown)
	})
}

func TestCreateBooking_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/v1/create-website-booking", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"booking":{"website_booking_id":"BK-1","status":"scheduled","tour_time":"14:00:00"}}`))
	}))
	defer srv.Close()

	booking, err := newTestClient(srv).CreateBooking(context.Background(), &CreateBookingRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		TourDate:      "2026-09-20",
		TourTime:      "14:00",
		NumPeople:     2,
	})

	require.NoError(t, err)
	assert.Equal(t, "BK-1", booking.WebsiteBookingID)
}

func TestCreateBooking_InsufficientSpots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Not enough spots: Only 3 spots remaining"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).CreateBooking(context.Background(), &CreateBookingRequest{})

	require.Error(t, err)
	assert.True(t, IsCapacityError(err))
	var spotsErr *InsufficientSpotsError
	require.ErrorAs(t, err, &spotsErr)
	assert.Equal(t, 3, spotsErr.AvailableSpots)
}

func TestCreateBooking_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	_, err := newTestClient(srv).CreateBooking(context.Background(), &CreateBookingRequest{})

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestCheckAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/rpc/get_tour_availability", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"tour_time":"14:00:00","tour_title":"Afternoon Tour","total_booked":10,"available_spots":5,"is_available":true}]`))
	}))
	defer srv.Close()

	slots, err := newTestClient(srv).CheckAvailability(context.Background(), "2026-09-20", nil)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, 5, slots[0].AvailableSpots)
	assert.True(t, slots[0].IsAvailable)

	// seconds dropped on the way to the domain
	assert.Equal(t, "14:00", slots[0].ToDomain().TourTime)
}

func TestListTourTimes_NormalizesSeconds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/tour_times", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"tour_time":"10:00:00","tour_title":"Morning Tour"},{"tour_time":"14:00","tour_title":"Afternoon Tour"}]`))
	}))
	defer srv.Close()

	times, err := newTestClient(srv).ListTourTimes(context.Background())

	require.NoError(t, err)
	require.Len(t, times, 2)
	assert.Equal(t, "10:00", times[0].TourTime)
	assert.Equal(t, "14:00", times[1].TourTime)
}

func TestGetBookingByEmail_NotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	existing, err := newTestClient(srv).GetBookingByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.Nil(t, existing)
}

func TestGetBookingByEmail_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"booking":{"date":"2026-09-25","time":"16:00:00","persons":2,"booking_code":"BK-OLD","customer_name":"Jane Doe","customer_email":"jane@example.com"}}`))
	}))
	defer srv.Close()

	existing, err := newTestClient(srv).GetBookingByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, "BK-OLD", existing.BookingCode)
	assert.Equal(t, "16:00", existing.Time)
}

func TestCheckBookingExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"exists":true}`))
	}))
	defer srv.Close()

	exists, err := newTestClient(srv).CheckBookingExists(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetBooking_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GetBooking(context.Background(), "BK-MISSING")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/v1/cancel-booking", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Booking cancelled"}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv).CancelBooking(context.Background(), "BK-1", "Customer requested cancellation")

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestErrorFromResponse_UnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream timeout"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).CreateBooking(context.Background(), &CreateBookingRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknown))
}
