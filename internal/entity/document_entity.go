package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document holds the metadata of an uploaded file. Title is the original
// filename shown to the user; FileName is the randomized on-disk name.
type Document struct {
	Id               uuid.UUID
	Title            string
	Description      *string
	FileName         string
	MimeType         string
	Size             int64
	Content          *string
	Metadata         map[string]interface{}
	ProcessingStatus map[string]interface{}
	IsProcessed      bool
	IsActive         bool
	NotebookId       *uuid.UUID
	UserId           uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
