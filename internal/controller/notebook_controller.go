package controller

import (
	"charterflow-be/internal/dto"
	"charterflow-be/internal/pkg/apperror"
	"charterflow-be/internal/pkg/logger"
	"charterflow-be/internal/pkg/serverutils"
	"charterflow-be/internal/pkg/storage"
	"charterflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetDocuments(ctx *fiber.Ctx) error
	UploadDocument(ctx *fiber.Ctx) error
}

type notebookController struct {
	service service.INotebookService
	storage storage.Storage
	logger  logger.ILogger
}

func NewNotebookController(service service.INotebookService, store storage.Storage, log logger.ILogger) INotebookController {
	return &notebookController{
		service: service,
		storage: store,
		logger:  log,
	}
}

func (c *notebookController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/notebooks")
	h.Use(authMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/documents", c.GetDocuments)
	h.Post(":id/documents", c.UploadDocument)
}

func (c *notebookController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all notebooks", res))
}

func (c *notebookController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create notebook", res))
}

func (c *notebookController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show notebook", res))
}

func (c *notebookController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update notebook", res))
}

func (c *notebookController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Notebook deleted successfully", nil))
}

func (c *notebookController) GetDocuments(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.GetDocuments(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get documents", res))
}

func (c *notebookController) UploadDocument(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	notebookId, _ := uuid.Parse(ctx.Params("id"))

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.NewBadRequest("File is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	// The file is written before the ownership check, matching the ingress
	// order of the persistence flow. A rejected upload leaves the file behind.
	storedName, err := c.storage.Save(ctx.Context(), fileHeader.Filename, src)
	if err != nil {
		return err
	}

	res, err := c.service.CreateDocumentFromUpload(ctx.Context(), userId, &dto.UploadDocumentRequest{
		NotebookId:     notebookId,
		OriginalName:   fileHeader.Filename,
		StoredFileName: storedName,
		MimeType:       fileHeader.Header.Get("Content-Type"),
		Size:           fileHeader.Size,
	})
	if err != nil {
		if apperror.IsNotFound(err) {
			c.logger.Warn("notebook", "Upload rejected after file write, orphan left on storage", map[string]interface{}{
				"stored_file": storedName,
				"notebook_id": notebookId.String(),
				"user_id":     userId.String(),
			})
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload document", res))
}
