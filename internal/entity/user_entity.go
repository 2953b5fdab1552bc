package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id              uuid.UUID
	Email           string
	FirstName       string
	LastName        string
	PasswordHash    *string
	Avatar          *string
	Bio             *string
	Skills          map[string]interface{}
	Experience      map[string]interface{}
	Assets          map[string]interface{}
	IsActive        bool
	IsEmailVerified bool
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
