package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotActive     = errors.New("session is not active")
	ErrAlreadyClosed = errors.New("session already reached a terminal state")
	ErrEmptyResource = errors.New("session resource must not be empty")
	ErrEmptyCustomer = errors.New("session customer must not be empty")
)

// Kind distinguishes the two structurally parallel session variants.
type Kind string

const (
	KindBooking    Kind = "booking"
	KindSharedArea Kind = "shared_area"
)

// Session tracks one occupancy period: a room booking or a shared-area
// check-in. Status moves from active to exactly one terminal state.
type Session struct {
	id           uuid.UUID
	kind         Kind
	customerID   string
	resource     string // room name or shared area type
	checkInTime  time.Time
	checkOutTime *time.Time
	status       Status
	reason       *string
}

func NewSession(kind Kind, customerID, resource string, now time.Time) (*Session, error) {
	if customerID == "" {
		return nil, ErrEmptyCustomer
	}
	if resource == "" {
		return nil, ErrEmptyResource
	}
	return &Session{
		id:          uuid.New(),
		kind:        kind,
		customerID:  customerID,
		resource:    resource,
		checkInTime: now,
		status:      StatusActive,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	kind Kind,
	customerID, resource string,
	checkInTime time.Time,
	checkOutTime *time.Time,
	status Status,
	reason *string,
) *Session {
	return &Session{
		id:           id,
		kind:         kind,
		customerID:   customerID,
		resource:     resource,
		checkInTime:  checkInTime,
		checkOutTime: checkOutTime,
		status:       status,
		reason:       reason,
	}
}

// Elapsed is the stay duration as of now. The wall clock can be behind the
// stored check-in time after a clock adjustment; that never bills negative.
func (s *Session) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(s.checkInTime)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (s *Session) CheckOut(now time.Time) error {
	if s.status != StatusActive {
		return ErrNotActive
	}
	t := now
	s.checkOutTime = &t
	s.status = StatusCheckedOut
	return nil
}

// Cancel is valid only while the session is active; cancelling an already
// closed session would resurrect a settled ledger row.
func (s *Session) Cancel(reason string) error {
	if s.status != StatusActive {
		return ErrAlreadyClosed
	}
	s.status = StatusCancelled
	s.reason = &reason
	return nil
}

func (s *Session) IsActive() bool {
	return s.status == StatusActive
}

func (s *Session) ID() uuid.UUID            { return s.id }
func (s *Session) Kind() Kind               { return s.kind }
func (s *Session) CustomerID() string       { return s.customerID }
func (s *Session) Resource() string         { return s.resource }
func (s *Session) CheckInTime() time.Time   { return s.checkInTime }
func (s *Session) CheckOutTime() *time.Time { return s.checkOutTime }
func (s *Session) Status() Status           { return s.status }
func (s *Session) Reason() *string          { return s.reason }
