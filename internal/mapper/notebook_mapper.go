package mapper

import (
	"charterflow-be/internal/entity"
	"charterflow-be/internal/model"

	"gorm.io/datatypes"
)

type NotebookMapper struct{}

func NewNotebookMapper() *NotebookMapper {
	return &NotebookMapper{}
}

func (m *NotebookMapper) ToEntity(n *model.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}
	return &entity.Notebook{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Avatar:      n.Avatar,
		Settings:    map[string]interface{}(n.Settings),
		IsActive:    n.IsActive,
		UserId:      n.UserId,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *NotebookMapper) ToModel(n *entity.Notebook) *model.Notebook {
	if n == nil {
		return nil
	}
	return &model.Notebook{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Avatar:      n.Avatar,
		Settings:    datatypes.JSONMap(n.Settings),
		IsActive:    n.IsActive,
		UserId:      n.UserId,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *NotebookMapper) ToEntities(notebooks []*model.Notebook) []*entity.Notebook {
	entities := make([]*entity.Notebook, len(notebooks))
	for i, n := range notebooks {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
