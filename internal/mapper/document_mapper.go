package mapper

import (
	"charterflow-be/internal/entity"
	"charterflow-be/internal/model"

	"gorm.io/datatypes"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}
	return &entity.Document{
		Id:               d.Id,
		Title:            d.Title,
		Description:      d.Description,
		FileName:         d.FileName,
		MimeType:         d.MimeType,
		Size:             d.Size,
		Content:          d.Content,
		Metadata:         map[string]interface{}(d.Metadata),
		ProcessingStatus: map[string]interface{}(d.ProcessingStatus),
		IsProcessed:      d.IsProcessed,
		IsActive:         d.IsActive,
		NotebookId:       d.NotebookId,
		UserId:           d.UserId,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}
	return &model.Document{
		Id:               d.Id,
		Title:            d.Title,
		Description:      d.Description,
		FileName:         d.FileName,
		MimeType:         d.MimeType,
		Size:             d.Size,
		Content:          d.Content,
		Metadata:         datatypes.JSONMap(d.Metadata),
		ProcessingStatus: datatypes.JSONMap(d.ProcessingStatus),
		IsProcessed:      d.IsProcessed,
		IsActive:         d.IsActive,
		NotebookId:       d.NotebookId,
		UserId:           d.UserId,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToEntities(documents []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(documents))
	for i, d := range documents {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
