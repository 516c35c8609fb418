//go:build unit

package session_test

import (
	"testing"
	"time"

	"comma-backend/internal/domain/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	now := time.Now()

	t.Run("starts active", func(t *testing.T) {
		s, err := session.NewSession(session.KindBooking, "CAI-01", "Room A", now)
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, session.StatusActive, s.Status())
		assert.True(t, s.IsActive())
		assert.Nil(t, s.CheckOutTime())
		assert.Equal(t, "CAI-01", s.CustomerID())
		assert.Equal(t, "Room A", s.Resource())
	})

	t.Run("rejects empty customer", func(t *testing.T) {
		_, err := session.NewSession(session.KindBooking, "", "Room A", now)
		require.ErrorIs(t, err, session.ErrEmptyCustomer)
	})

	t.Run("rejects empty resource", func(t *testing.T) {
		_, err := session.NewSession(session.KindSharedArea, "CAI-01", "", now)
		require.ErrorIs(t, err, session.ErrEmptyResource)
	})
}

func TestSessionElapsed(t *testing.T) {
	now := time.Now()
	s, err := session.NewSession(session.KindBooking, "CAI-01", "Room A", now)
	require.NoError(t, err)

	assert.Equal(t, 90*time.Minute, s.Elapsed(now.Add(90*time.Minute)))

	t.Run("clock behind check-in never goes negative", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), s.Elapsed(now.Add(-time.Hour)))
	})
}

func TestSessionCheckOut(t *testing.T) {
	now := time.Now()

	t.Run("closes an active session", func(t *testing.T) {
		s, err := session.NewSession(session.KindBooking, "CAI-01", "Room A", now)
		require.NoError(t, err)

		later := now.Add(2 * time.Hour)
		require.NoError(t, s.CheckOut(later))

		assert.Equal(t, session.StatusCheckedOut, s.Status())
		require.NotNil(t, s.CheckOutTime())
		assert.Equal(t, later, *s.CheckOutTime())
	})

	t.Run("rejects a second checkout", func(t *testing.T) {
		s, err := session.NewSession(session.KindBooking, "CAI-01", "Room A", now)
		require.NoError(t, err)
		require.NoError(t, s.CheckOut(now.Add(time.Hour)))

		require.ErrorIs(t, s.CheckOut(now.Add(2*time.Hour)), session.ErrNotActive)
	})
}

func TestSessionCancel(t *testing.T) {
	now := time.Now()

	t.Run("cancels an active session with a reason", func(t *testing.T) {
		s, err := session.NewSession(session.KindSharedArea, "CAI-01", "General Area", now)
		require.NoError(t, err)

		require.NoError(t, s.Cancel("customer left early"))

		assert.Equal(t, session.StatusCancelled, s.Status())
		require.NotNil(t, s.Reason())
		assert.Equal(t, "customer left early", *s.Reason())
	})

	t.Run("rejects cancelling a checked-out session", func(t *testing.T) {
		s, err := session.NewSession(session.KindBooking, "CAI-01", "Room A", now)
		require.NoError(t, err)
		require.NoError(t, s.CheckOut(now.Add(time.Hour)))

		require.ErrorIs(t, s.Cancel("too late"), session.ErrAlreadyClosed)
	})

	t.Run("rejects cancelling twice", func(t *testing.T) {
		s, err := session.NewSession(session.KindBooking, "CAI-01", "Room A", now)
		require.NoError(t, err)
		require.NoError(t, s.Cancel("first"))

		require.ErrorIs(t, s.Cancel("second"), session.ErrAlreadyClosed)
	})
}

func TestReconstruct(t *testing.T) {
	id := uuid.New()
	checkIn := time.Now().Add(-3 * time.Hour)
	checkOut := checkIn.Add(2 * time.Hour)
	reason := "walked out"

	s := session.Reconstruct(id, session.KindBooking, "CAI-02", "Room B", checkIn, &checkOut, session.StatusCancelled, &reason)

	assert.Equal(t, id, s.ID())
	assert.Equal(t, session.StatusCancelled, s.Status())
	assert.False(t, s.IsActive())
	require.NotNil(t, s.Reason())
	assert.Equal(t, reason, *s.Reason())
}

func TestStatus(t *testing.T) {
	assert.True(t, session.StatusActive.IsValid())
	assert.True(t, session.StatusCheckedOut.IsTerminal())
	assert.True(t, session.StatusCancelled.IsTerminal())
	assert.False(t, session.StatusActive.IsTerminal())
	assert.False(t, session.Status("pending").IsValid())
}
