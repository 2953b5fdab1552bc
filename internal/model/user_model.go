package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName       string    `gorm:"type:varchar(255);not null"`
	LastName        string    `gorm:"type:varchar(255);not null"`
	PasswordHash    *string   `gorm:"type:varchar(255)"`
	Avatar          *string   `gorm:"type:varchar(255)"`
	Bio             *string   `gorm:"type:text"`
	Skills          datatypes.JSONMap
	Experience      datatypes.JSONMap
	Assets          datatypes.JSONMap
	IsActive        bool `gorm:"default:true"`
	IsEmailVerified bool `gorm:"default:false"`
	LastLoginAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
