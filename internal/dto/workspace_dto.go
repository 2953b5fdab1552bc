package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkspaceRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Description *string                `json:"description"`
	Avatar      *string                `json:"avatar"`
	Type        string                 `json:"type" validate:"omitempty,oneof=personal team enterprise"`
	Settings    map[string]interface{} `json:"settings"`
}

type UpdateWorkspaceRequest struct {
	Id          uuid.UUID              `json:"-"`
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Avatar      *string                `json:"avatar"`
	Settings    map[string]interface{} `json:"settings"`
}

type WorkspaceResponse struct {
	Id          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description,omitempty"`
	Avatar      *string                `json:"avatar,omitempty"`
	Type        string                 `json:"type"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
	OwnerId     uuid.UUID              `json:"owner_id"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
