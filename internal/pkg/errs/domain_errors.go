package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")

	// Room / branch errors
	ErrRoomNotFound   = errors.New("room not found")
	ErrBranchNotFound = errors.New("branch not found")
	ErrBranchInUse    = errors.New("branch still has rooms or employees")

	// Session errors
	ErrBookingNotFound       = errors.New("booking not found")
	ErrCheckinNotFound       = errors.New("check-in not found")
	ErrCustomerAlreadyActive = errors.New("customer already has an active session")
	ErrRoomOccupied          = errors.New("room is currently occupied")
	ErrSessionNotActive      = errors.New("session is not active")

	// Billing errors
	ErrInvalidDiscount     = errors.New("invalid discount percentage")
	ErrUnknownAreaType     = errors.New("unknown shared area type")
	ErrInvalidQuantity     = errors.New("kitchen item quantity must be positive")
	ErrKitchenItemNotFound = errors.New("kitchen item not found")
	ErrNoActiveBooking     = errors.New("no active booking for this room")
	ErrSaleNotFound        = errors.New("sale not found")

	// Employee / auth errors
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDuplicateNationalID = errors.New("national ID already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
