package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Title       string                 `json:"title" validate:"required"`
	Description *string                `json:"description"`
	Avatar      *string                `json:"avatar"`
	Settings    map[string]interface{} `json:"settings"`
}

// UpdateNotebookRequest is a partial: nil fields are left untouched
// (shallow merge, not replace).
type UpdateNotebookRequest struct {
	Id          uuid.UUID              `json:"-"`
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Avatar      *string                `json:"avatar"`
	Settings    map[string]interface{} `json:"settings"`
}

type NotebookResponse struct {
	Id          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description *string                `json:"description,omitempty"`
	Avatar      *string                `json:"avatar,omitempty"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
