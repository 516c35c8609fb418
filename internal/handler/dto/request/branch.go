package request

import "comma-backend/internal/usecase/commands"

type BranchRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

func (r BranchRequest) ToCommand() commands.NewBranch {
	return commands.NewBranch{
		Name:     r.Name,
		Location: r.Location,
		Phone:    r.Phone,
	}
}
