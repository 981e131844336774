package request

import (
	"restaurant-reservations/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type NewCustomer struct {
	Credentials user.Credentials
	Profile     user.Profile
}

func (r *RegisterRequest) ToDomain() (NewCustomer, error) {
	return newCustomer(r.Email, r.Password, r.FirstName, r.LastName, r.Phone)
}

func newCustomer(email, password, firstName, lastName, phone string) (NewCustomer, error) {
	profile, err := user.NewProfile(firstName, lastName, phone, true)
	if err != nil {
		return NewCustomer{}, err
	}
	creds, err := user.NewCredentials(email, password)
	if err != nil {
		return NewCustomer{}, err
	}
	return NewCustomer{Credentials: creds, Profile: profile}, nil
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

// ToDomain requires a phone for customer accounts only.
func (r *UpdateProfileRequest) ToDomain(role user.Role) (user.Profile, error) {
	return user.NewProfile(r.FirstName, r.LastName, r.Phone, role == user.RoleCustomer)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type CustomerSearchQuery struct {
	Q string `form:"q"`
}
