package request

type CreateCustomerRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	NationalID *string `json:"national_id,omitempty"`
	Branch     string  `json:"branch" binding:"required"`
}

type UpdateCustomerRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	NationalID *string `json:"national_id,omitempty"`
	Warnings   int32   `json:"warnings"`
	IsActive   bool    `json:"is_active"`
}
