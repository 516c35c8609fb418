package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         string     `json:"customer_id"`
	CustomerName       *string    `json:"customer_name,omitempty"`
	Room               string     `json:"room"`
	CheckInTime        time.Time  `json:"check_in_time"`
	CheckOutTime       *time.Time `json:"check_out_time,omitempty"`
	TotalTimeMinutes   *int32     `json:"total_time,omitempty"`
	TotalCost          *float64   `json:"total_cost,omitempty"`
	DiscountPercentage float64    `json:"discount_percentage"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
}

type SharedAreaCheckinView struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         string     `json:"customer_id"`
	CustomerName       *string    `json:"customer_name,omitempty"`
	Type               string     `json:"type"`
	CheckInTime        time.Time  `json:"check_in_time"`
	CheckOutTime       *time.Time `json:"check_out_time,omitempty"`
	TotalTimeMinutes   *int32     `json:"total_time,omitempty"`
	TotalCost          *float64   `json:"total_cost,omitempty"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
}

type ActiveCustomerView struct {
	CustomerID  string    `json:"customer_id"`
	Name        string    `json:"name"`
	Phone       *string   `json:"phone,omitempty"`
	CheckInTime time.Time `json:"check_in_time"`
	Room        *string   `json:"room,omitempty"`
	Email       *string   `json:"email,omitempty"`
}

type CustomerView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	NationalID *string `json:"national_id,omitempty"`
	Warnings   int32   `json:"warnings"`
	IsActive   bool    `json:"is_active"`
}

type RoomView struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	BranchName string  `json:"branch_name"`
	Type       string  `json:"type"`
	Capacity   int32   `json:"capacity"`
	Price      float64 `json:"price"`
	PriceType  string  `json:"price_type"`
}

type BranchView struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Phone          string `json:"phone"`
	RoomsCount     int32  `json:"rooms_count"`
	EmployeesCount int32  `json:"employees_count"`
	CustomersCount int32  `json:"customers_count"`
}

type KitchenItemView struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Availability string  `json:"availability"`
}

type KitchenSaleView struct {
	ID         uuid.UUID `json:"order_id"`
	RoomID     int64     `json:"room_id"`
	RoomName   *string   `json:"room_name,omitempty"`
	CustomerID string    `json:"customer_id"`
	Items      string    `json:"kitchen_items"`
	TotalPrice float64   `json:"total_price"`
}

type EmployeeView struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	NationalID string  `json:"national_id"`
	Branch     string  `json:"branch"`
	Age        *int32  `json:"age,omitempty"`
	Faculty    *string `json:"faculty,omitempty"`
}
