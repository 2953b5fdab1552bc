package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notebook is a named collection of documents owned by exactly one user.
// IsActive doubles as the soft-delete marker: inactive notebooks are
// invisible to every normal query regardless of owner.
type Notebook struct {
	Id          uuid.UUID
	Title       string
	Description *string
	Avatar      *string
	Settings    map[string]interface{}
	IsActive    bool
	UserId      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
