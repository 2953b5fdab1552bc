package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Soft delete is the is_active flag, not gorm.DeletedAt: deactivated rows
// must stay reachable by direct id lookup without the active filter.
type Notebook struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Avatar      *string   `gorm:"type:varchar(255)"`
	Settings    datatypes.JSONMap
	IsActive    bool      `gorm:"default:true;index"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
