package mapper

import (
	"charterflow-be/internal/entity"
	"charterflow-be/internal/model"

	"gorm.io/datatypes"
)

type WorkspaceMapper struct{}

func NewWorkspaceMapper() *WorkspaceMapper {
	return &WorkspaceMapper{}
}

func (m *WorkspaceMapper) ToEntity(w *model.Workspace) *entity.Workspace {
	if w == nil {
		return nil
	}
	return &entity.Workspace{
		Id:          w.Id,
		Name:        w.Name,
		Description: w.Description,
		Avatar:      w.Avatar,
		Type:        entity.WorkspaceType(w.Type),
		Settings:    map[string]interface{}(w.Settings),
		IsActive:    w.IsActive,
		OwnerId:     w.OwnerId,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (m *WorkspaceMapper) ToModel(w *entity.Workspace) *model.Workspace {
	if w == nil {
		return nil
	}
	return &model.Workspace{
		Id:          w.Id,
		Name:        w.Name,
		Description: w.Description,
		Avatar:      w.Avatar,
		Type:        string(w.Type),
		Settings:    datatypes.JSONMap(w.Settings),
		IsActive:    w.IsActive,
		OwnerId:     w.OwnerId,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (m *WorkspaceMapper) ToEntities(workspaces []*model.Workspace) []*entity.Workspace {
	entities := make([]*entity.Workspace, len(workspaces))
	for i, w := range workspaces {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
