package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Document struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title            string    `gorm:"type:varchar(255);not null;index:idx_documents_title_user"`
	Description      *string   `gorm:"type:text"`
	FileName         string    `gorm:"type:varchar(255);not null"`
	MimeType         string    `gorm:"type:varchar(50);not null"`
	Size             int64     `gorm:"not null"`
	Content          *string   `gorm:"type:text"`
	Metadata         datatypes.JSONMap
	ProcessingStatus datatypes.JSONMap
	IsProcessed      bool       `gorm:"default:false"`
	IsActive         bool       `gorm:"default:true;index"`
	NotebookId       *uuid.UUID `gorm:"type:uuid;index"`
	UserId           uuid.UUID  `gorm:"type:uuid;not null;index:idx_documents_title_user"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}
