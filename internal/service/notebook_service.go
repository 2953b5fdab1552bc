package service

import (
	"context"
	"encoding/json"
	"time"

	"charterflow-be/internal/dto"
	"charterflow-be/internal/entity"
	"charterflow-be/internal/pkg/apperror"
	"charterflow-be/internal/repository/specification"
	"charterflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INotebookService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.NotebookResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NotebookResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	GetDocuments(ctx context.Context, userId uuid.UUID, notebookId uuid.UUID) ([]*dto.DocumentResponse, error)
	CreateDocumentFromUpload(ctx context.Context, userId uuid.UUID, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error)
}

type notebookService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewNotebookService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) INotebookService {
	return &notebookService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// findOwned is the single authorization mechanism: a notebook is visible
// iff id, owner and the active flag all match. Anything else is NotFound.
func (c *notebookService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Notebook, error) {
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, apperror.NewNotFound("Notebook with ID %s not found", id)
	}
	return notebook, nil
}

func (c *notebookService) publishActivity(ctx context.Context, event string, userId, resourceId uuid.UUID) error {
	if c.publisherService == nil {
		return nil
	}
	msg := dto.ActivityMessage{
		Event:      event,
		UserId:     userId,
		ResourceId: resourceId,
		OccurredAt: time.Now(),
	}
	payload, _ := json.Marshal(msg)
	return c.publisherService.Publish(ctx, payload)
}

func (c *notebookService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotebookResponse, 0, len(notebooks))
	for _, notebook := range notebooks {
		result = append(result, toNotebookResponse(notebook))
	}
	return result, nil
}

func (c *notebookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	notebook := entity.Notebook{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Avatar:      req.Avatar,
		Settings:    req.Settings,
		IsActive:    true,
		UserId:      userId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.NotebookRepository().Create(ctx, &notebook); err != nil {
		return nil, err
	}

	if err := c.publishActivity(ctx, "notebook.created", userId, notebook.Id); err != nil {
		return nil, err
	}

	return toNotebookResponse(&notebook), nil
}

func (c *notebookService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := c.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toNotebookResponse(notebook), nil
}

func (c *notebookService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := c.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	// Shallow merge: only the provided keys are overwritten.
	if req.Title != nil {
		notebook.Title = *req.Title
	}
	if req.Description != nil {
		notebook.Description = req.Description
	}
	if req.Avatar != nil {
		notebook.Avatar = req.Avatar
	}
	if req.Settings != nil {
		notebook.Settings = req.Settings
	}
	notebook.UpdatedAt = time.Now()

	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		return nil, err
	}

	return toNotebookResponse(notebook), nil
}

func (c *notebookService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Resolving through the owned lookup means a second delete legitimately
	// 404s rather than silently succeeding.
	notebook, err := c.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	notebook.IsActive = false
	notebook.UpdatedAt = time.Now()
	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		return err
	}

	// Documents are intentionally left untouched: deactivating a notebook
	// does not cascade to its documents.
	return c.publishActivity(ctx, "notebook.deleted", userId, id)
}

func (c *notebookService) GetDocuments(ctx context.Context, userId uuid.UUID, notebookId uuid.UUID) ([]*dto.DocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Ownership check first: an unowned or inactive notebook 404s before
	// any document is considered.
	if _, err := c.findOwned(ctx, uow, userId, notebookId); err != nil {
		return nil, err
	}

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByNotebookID{NotebookID: notebookId},
		specification.OwnedBy{UserID: userId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DocumentResponse, 0, len(documents))
	for _, document := range documents {
		result = append(result, toDocumentResponse(document))
	}
	return result, nil
}

func (c *notebookService) CreateDocumentFromUpload(ctx context.Context, userId uuid.UUID, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// The ingress has already written the file to storage; if this check
	// fails the file stays behind as an orphan (no cleanup job in scope).
	if _, err := c.findOwned(ctx, uow, userId, req.NotebookId); err != nil {
		return nil, err
	}

	now := time.Now()
	notebookId := req.NotebookId
	document := entity.Document{
		Id:       uuid.New(),
		Title:    req.OriginalName,
		FileName: req.StoredFileName,
		MimeType: req.MimeType,
		Size:     req.Size,
		Metadata: map[string]interface{}{
			"originalName": req.OriginalName,
		},
		IsProcessed: false,
		IsActive:    true,
		NotebookId:  &notebookId,
		UserId:      userId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.DocumentRepository().Create(ctx, &document); err != nil {
		return nil, err
	}

	if err := c.publishActivity(ctx, "document.uploaded", userId, document.Id); err != nil {
		return nil, err
	}

	return toDocumentResponse(&document), nil
}

func toNotebookResponse(n *entity.Notebook) *dto.NotebookResponse {
	return &dto.NotebookResponse{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Avatar:      n.Avatar,
		Settings:    n.Settings,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:               d.Id,
		Title:            d.Title,
		Description:      d.Description,
		FileName:         d.FileName,
		MimeType:         d.MimeType,
		Size:             d.Size,
		Metadata:         d.Metadata,
		ProcessingStatus: d.ProcessingStatus,
		IsProcessed:      d.IsProcessed,
		NotebookId:       d.NotebookId,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}
