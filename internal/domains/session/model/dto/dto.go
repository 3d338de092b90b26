package dto

import (
	"rentello/infras/rentello"
	"rentello/internal/domains/session/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

type RegisterRequest struct {
	Username    string `json:"username"     validate:"required,max=100"`
	Email       string `json:"email"        validate:"required,email,max=100"`
	Password    string `json:"password"     validate:"required,min=8,max=100"`
	FirstName   string `json:"first_name"   validate:"required,max=100"`
	LastName    string `json:"last_name"    validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
}

func (r *RegisterRequest) ToRemote() rentello.RegisterRequest {
	return rentello.RegisterRequest{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=100"`
}

type PrincipalResponse struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role,omitempty"`
}

func (r *PrincipalResponse) FromModel(p model.Principal) {
	r.UserID = p.UserID
	r.Username = p.Username
	r.Email = p.Email
	r.DisplayName = p.DisplayName()
	r.PhoneNumber = p.PhoneNumber
	r.Role = p.RoleName()
}

// PrincipalFromRemote maps the remote user shape into the gateway's principal.
func PrincipalFromRemote(user rentello.User) model.Principal {
	principal := model.Principal{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
	}

	if user.UserRole != nil {
		principal.RoleRef = user.UserRole.RoleName
	}

	return principal
}
