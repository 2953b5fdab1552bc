package service

import (
	"context"
	"time"

	"charterflow-be/internal/dto"
	"charterflow-be/internal/entity"
	"charterflow-be/internal/pkg/apperror"
	"charterflow-be/internal/repository/specification"
	"charterflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWorkspaceService interface {
	GetAll(ctx context.Context, ownerId uuid.UUID) ([]*dto.WorkspaceResponse, error)
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	Show(ctx context.Context, ownerId uuid.UUID, id uuid.UUID) (*dto.WorkspaceResponse, error)
	Update(ctx context.Context, ownerId uuid.UUID, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	Delete(ctx context.Context, ownerId uuid.UUID, id uuid.UUID) error
}

type workspaceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWorkspaceService(uowFactory unitofwork.RepositoryFactory) IWorkspaceService {
	return &workspaceService{
		uowFactory: uowFactory,
	}
}

func (s *workspaceService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, ownerId, id uuid.UUID) (*entity.Workspace, error) {
	workspace, err := uow.WorkspaceRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByOwner{OwnerID: ownerId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, apperror.NewNotFound("Workspace with ID %s not found", id)
	}
	return workspace, nil
}

func (s *workspaceService) GetAll(ctx context.Context, ownerId uuid.UUID) ([]*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspaces, err := uow.WorkspaceRepository().FindAll(ctx,
		specification.OwnedByOwner{OwnerID: ownerId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.WorkspaceResponse, 0, len(workspaces))
	for _, workspace := range workspaces {
		result = append(result, toWorkspaceResponse(workspace))
	}
	return result, nil
}

func (s *workspaceService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspaceType := entity.WorkspaceType(req.Type)
	if workspaceType == "" {
		workspaceType = entity.WorkspaceTypePersonal
	}

	now := time.Now()
	workspace := entity.Workspace{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Avatar:      req.Avatar,
		Type:        workspaceType,
		Settings:    req.Settings,
		IsActive:    true,
		OwnerId:     ownerId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.WorkspaceRepository().Create(ctx, &workspace); err != nil {
		return nil, err
	}

	return toWorkspaceResponse(&workspace), nil
}

func (s *workspaceService) Show(ctx context.Context, ownerId uuid.UUID, id uuid.UUID) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := s.findOwned(ctx, uow, ownerId, id)
	if err != nil {
		return nil, err
	}
	return toWorkspaceResponse(workspace), nil
}

func (s *workspaceService) Update(ctx context.Context, ownerId uuid.UUID, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := s.findOwned(ctx, uow, ownerId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		workspace.Name = *req.Name
	}
	if req.Description != nil {
		workspace.Description = req.Description
	}
	if req.Avatar != nil {
		workspace.Avatar = req.Avatar
	}
	if req.Settings != nil {
		workspace.Settings = req.Settings
	}
	workspace.UpdatedAt = time.Now()

	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, err
	}

	return toWorkspaceResponse(workspace), nil
}

func (s *workspaceService) Delete(ctx context.Context, ownerId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := s.findOwned(ctx, uow, ownerId, id)
	if err != nil {
		return err
	}

	workspace.IsActive = false
	workspace.UpdatedAt = time.Now()
	return uow.WorkspaceRepository().Update(ctx, workspace)
}

func toWorkspaceResponse(w *entity.Workspace) *dto.WorkspaceResponse {
	return &dto.WorkspaceResponse{
		Id:          w.Id,
		Name:        w.Name,
		Description: w.Description,
		Avatar:      w.Avatar,
		Type:        string(w.Type),
		Settings:    w.Settings,
		OwnerId:     w.OwnerId,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
