package response

import "comma-backend/internal/usecase/commands"

type LoginResponse struct {
	Token      string `json:"token"`
	EmployeeID int64  `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Branch     string `json:"branch"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:      result.Token,
		EmployeeID: result.EmployeeID,
		Name:       result.Name,
		Role:       result.Role,
		Branch:     result.Branch,
	}
}
