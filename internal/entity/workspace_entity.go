package entity

import (
	"time"

	"github.com/google/uuid"
)

type WorkspaceType string

const (
	WorkspaceTypePersonal   WorkspaceType = "personal"
	WorkspaceTypeTeam       WorkspaceType = "team"
	WorkspaceTypeEnterprise WorkspaceType = "enterprise"
)

type Workspace struct {
	Id          uuid.UUID
	Name        string
	Description *string
	Avatar      *string
	Type        WorkspaceType
	Settings    map[string]interface{}
	IsActive    bool
	OwnerId     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
