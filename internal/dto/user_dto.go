package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id              uuid.UUID              `json:"id"`
	Email           string                 `json:"email"`
	FirstName       string                 `json:"first_name"`
	LastName        string                 `json:"last_name"`
	Avatar          *string                `json:"avatar,omitempty"`
	Bio             *string                `json:"bio,omitempty"`
	Skills          map[string]interface{} `json:"skills,omitempty"`
	Experience      map[string]interface{} `json:"experience,omitempty"`
	Assets          map[string]interface{} `json:"assets,omitempty"`
	IsEmailVerified bool                   `json:"is_email_verified"`
	LastLoginAt     *time.Time             `json:"last_login_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// UpdateProfileRequest carries only the fields the caller wants changed;
// nil means "leave untouched".
type UpdateProfileRequest struct {
	FirstName  *string                `json:"first_name"`
	LastName   *string                `json:"last_name"`
	Bio        *string                `json:"bio"`
	Skills     map[string]interface{} `json:"skills"`
	Experience map[string]interface{} `json:"experience"`
	Assets     map[string]interface{} `json:"assets"`
}
