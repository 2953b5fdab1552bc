package dto

import (
	"time"

	"github.com/google/uuid"
)

// UploadDocumentRequest is handed from the upload ingress to the service
// after the file is already on storage.
type UploadDocumentRequest struct {
	NotebookId     uuid.UUID
	OriginalName   string
	StoredFileName string
	MimeType       string
	Size           int64
}

type DocumentResponse struct {
	Id               uuid.UUID              `json:"id"`
	Title            string                 `json:"title"`
	Description      *string                `json:"description,omitempty"`
	FileName         string                 `json:"file_name"`
	MimeType         string                 `json:"mime_type"`
	Size             int64                  `json:"size"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	ProcessingStatus map[string]interface{} `json:"processing_status,omitempty"`
	IsProcessed      bool                   `json:"is_processed"`
	NotebookId       *uuid.UUID             `json:"notebook_id,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}
