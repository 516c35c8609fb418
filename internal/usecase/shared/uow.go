package shared

import (
	"context"
	"time"

	"comma-backend/internal/domain/session"
	"comma-backend/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Checkins() CheckinRepository
	ActiveIndex() ActiveIndexRepository
	Customers() CustomerRepository
	KitchenSales() KitchenSaleRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	CustomerByID(ctx context.Context, id string) (*CustomerSnapshot, error)
	RoomByName(ctx context.Context, name string) (*RoomSnapshot, error)
	RoomByID(ctx context.Context, id int64) (*RoomSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*SessionSnapshot, error)
	CheckinByID(ctx context.Context, id uuid.UUID) (*SessionSnapshot, error)
	HasActiveBooking(ctx context.Context, customerID string) (bool, error)
	RoomOccupied(ctx context.Context, roomName string) (bool, error)
	ActiveBookingForRoom(ctx context.Context, roomID int64) (*SessionSnapshot, error)
	HasActiveCheckin(ctx context.Context, customerID string) (bool, error)
	KitchenItemsByIDs(ctx context.Context, ids []int64) ([]KitchenItemSnapshot, error)
	LastCustomerCode(ctx context.Context, prefix string) (string, error)
	EmployeeByNationalID(ctx context.Context, nationalID string) (*EmployeeSnapshot, error)
	EmployeeByID(ctx context.Context, id int64) (*EmployeeSnapshot, error)
}

// Minimal snapshots for command read operations

type CustomerSnapshot struct {
	ID    string
	Name  string
	Phone *string
	Email *string
}

type RoomSnapshot struct {
	ID        int64
	Name      string
	Price     float64
	PriceType string
}

type SessionSnapshot struct {
	ID          uuid.UUID
	CustomerID  string
	Resource    string // room name or shared area type
	CheckInTime time.Time
	Status      string
}

type KitchenItemSnapshot struct {
	ID    int64
	Name  string
	Price float64
}

type EmployeeSnapshot struct {
	ID           int64
	Name         string
	PasswordHash string
	Role         string
	NationalID   string
	Branch       string
	Age          *int32
	Faculty      *string
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, s *session.Session, customerName string) error
	Close(ctx context.Context, dbtx db.DBTX, id uuid.UUID, checkOut time.Time, totalMinutes int32, totalCost float64, discount float64) (int64, error)
	Cancel(ctx context.Context, dbtx db.DBTX, id uuid.UUID, reason string) (int64, error)
	DeleteByCustomer(ctx context.Context, dbtx db.DBTX, customerID string) error
}

type CheckinRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, s *session.Session, customerName string) error
	Close(ctx context.Context, dbtx db.DBTX, id uuid.UUID, checkOut time.Time, totalMinutes int32, totalCost float64) (int64, error)
	Cancel(ctx context.Context, dbtx db.DBTX, id uuid.UUID, reason string) (int64, error)
	DeleteByCustomer(ctx context.Context, dbtx db.DBTX, customerID string) error
}

type ActiveIndexEntry struct {
	CustomerID  string
	Name        string
	Phone       *string
	CheckInTime time.Time
	Room        *string // nil for shared-area entries
}

type ActiveIndexRepository interface {
	InsertBooking(ctx context.Context, dbtx db.DBTX, entry ActiveIndexEntry) error
	DeleteBooking(ctx context.Context, dbtx db.DBTX, customerID string) error
	InsertSharedArea(ctx context.Context, dbtx db.DBTX, entry ActiveIndexEntry) error
	DeleteSharedArea(ctx context.Context, dbtx db.DBTX, customerID string) error
	DeleteAllForCustomer(ctx context.Context, dbtx db.DBTX, customerID string) error
}

type NewCustomer struct {
	ID         string
	Name       string
	Email      *string
	Phone      *string
	NationalID *string
	Warnings   int32
	IsActive   bool
}

type CustomerRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, c NewCustomer) error
	Update(ctx context.Context, dbtx db.DBTX, c NewCustomer) (int64, error)
	Delete(ctx context.Context, dbtx db.DBTX, id string) (int64, error)
}

type NewKitchenSale struct {
	ID         uuid.UUID
	RoomID     int64
	CustomerID string
	Items      string
	TotalPrice float64
}

type KitchenSaleRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, sale NewKitchenSale) error
	DeleteByCustomer(ctx context.Context, dbtx db.DBTX, customerID string) error
}
