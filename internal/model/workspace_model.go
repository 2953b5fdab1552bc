package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Workspace struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null;index:idx_workspaces_name_owner"`
	Description *string   `gorm:"type:text"`
	Avatar      *string   `gorm:"type:varchar(255)"`
	Type        string    `gorm:"type:varchar(50);not null;default:'personal'"`
	Settings    datatypes.JSONMap
	IsActive    bool      `gorm:"default:true"`
	OwnerId     uuid.UUID `gorm:"type:uuid;not null;index:idx_workspaces_name_owner"`
	Owner       *User     `gorm:"foreignKey:OwnerId;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
