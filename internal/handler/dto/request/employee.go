package request

type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Password   string  `json:"password" binding:"required,min=8"`
	Role       string  `json:"role" binding:"required,oneof=staff manager admin"`
	NationalID string  `json:"national_id" binding:"required"`
	Branch     string  `json:"branch" binding:"required"`
	Age        *int32  `json:"age,omitempty"`
	Faculty    *string `json:"faculty,omitempty"`
}

type UpdateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Role       string  `json:"role" binding:"required,oneof=staff manager admin"`
	NationalID string  `json:"national_id" binding:"required"`
	Branch     string  `json:"branch" binding:"required"`
	Age        *int32  `json:"age,omitempty"`
	Faculty    *string `json:"faculty,omitempty"`
	Password   *string `json:"password,omitempty" binding:"omitempty,min=8"`
}
