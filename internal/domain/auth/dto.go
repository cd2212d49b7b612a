package auth

import (
	"regexp"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
)

var (
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasDigit   = regexp.MustCompile(`\d`)
	hasSpecial = regexp.MustCompile(`[@$!%*?&]`)
)

type RegisterRequest struct {
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	// Username
	if validator.IsEmpty(r.Username) {
		errs.Add("username", "username is required")
	} else if !validator.IsValidUsername(r.Username) {
		errs.Add("username", "username must be 3-30 characters of letters, numbers, and underscores")
	}

	// Names
	user.ValidateName(&errs, "first_name", r.FirstName)
	user.ValidateName(&errs, "last_name", r.LastName)

	// Email
	validateEmail(&errs, r.Email)

	// Password
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) < 8 {
		errs.Add("password", "password must be at least 8 characters long")
	} else if len(r.Password) > 72 {
		errs.Add("password", "password must not exceed 72 characters")
	} else if !hasLower.MatchString(r.Password) || !hasUpper.MatchString(r.Password) ||
		!hasDigit.MatchString(r.Password) || !hasSpecial.MatchString(r.Password) {
		errs.Add("password", "password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	if validator.IsEmpty(r.ConfirmPassword) {
		errs.Add("confirm_password", "confirm_password is required")
	} else if r.ConfirmPassword != r.Password {
		errs.Add("confirm_password", "password and confirm_password do not match")
	}

	return errs.Err()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	validateEmail(&errs, r.Email)
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

func validateEmail(errs *validator.ValidationErrors, email string) {
	if validator.IsEmpty(email) {
		errs.Add("email", "email is required")
	} else if len(email) > 254 {
		errs.Add("email", "email must not exceed 254 characters")
	} else if !validator.IsValidEmail(email) {
		errs.Add("email", "email must be a valid email address")
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RefreshToken) {
		errs.Add("refresh_token", "refresh_token is required")
	}
	return errs.Err()
}

type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type TokenResponse struct {
	AccessToken           string            `json:"access_token"`
	AccessTokenExpiresIn  int64             `json:"access_token_expires_in"`
	RefreshToken          string            `json:"refresh_token"`
	RefreshTokenExpiresIn int64             `json:"refresh_token_expires_in"`
	User                  user.UserResponse `json:"user"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}

// LogoutRequest carries the tokens a logout revokes.
type LogoutRequest struct {
	RefreshToken string
	AccessToken  string
	// AccessTokenExpiresAt is the unix time the access token stops being valid.
	AccessTokenExpiresAt int64
}
