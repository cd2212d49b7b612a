package user

import (
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UpdateProfileRequest changes only the fields that are present.
type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username == nil && r.FirstName == nil && r.LastName == nil {
		errs.Add("request", "at least one field must be provided")
		return errs
	}
	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs.Add("username", "username must be 3-30 characters of letters, numbers, and underscores")
	}
	if r.FirstName != nil {
		ValidateName(&errs, "first_name", *r.FirstName)
	}
	if r.LastName != nil {
		ValidateName(&errs, "last_name", *r.LastName)
	}

	return errs.Err()
}

// ValidateName appends an error when name is not 2-50 characters.
func ValidateName(errs *validator.ValidationErrors, field, name string) {
	switch {
	case validator.IsEmpty(name):
		errs.Add(field, field+" is required")
	case len(name) < 2:
		errs.Add(field, field+" must be at least 2 characters long")
	case len(name) > 50:
		errs.Add(field, field+" must not exceed 50 characters")
	}
}
