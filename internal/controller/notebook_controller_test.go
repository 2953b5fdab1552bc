package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"charterflow-be/internal/controller"
	"charterflow-be/internal/model"
	"charterflow-be/internal/pkg/logger"
	"charterflow-be/internal/pkg/serverutils"
	"charterflow-be/internal/pkg/storage"
	"charterflow-be/internal/repository/unitofwork"
	"charterflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	uploadDir string
	userId    uuid.UUID
}

// stubAuth replaces the JWT guard so tests can pick the acting user per
// request via the X-Test-User header.
func stubAuth(defaultUser uuid.UUID) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId := ctx.Get("X-Test-User")
		if userId == "" {
			userId = defaultUser.String()
		}
		ctx.Locals("user_id", userId)
		return ctx.Next()
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Workspace{}, &model.Notebook{}, &model.Document{}))

	userId := createUser(t, db, "owner@example.com")

	uploadDir := filepath.Join(t.TempDir(), "uploads")
	store, err := storage.NewLocalStorage(uploadDir)
	require.NoError(t, err)

	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)

	uowFactory := unitofwork.NewRepositoryFactory(db)
	notebookService := service.NewNotebookService(uowFactory, nil)
	notebookController := controller.NewNotebookController(notebookService, store, log)

	app := fiber.New(fiber.Config{BodyLimit: 25 * 1024 * 1024})
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	notebookController.RegisterRoutes(api, stubAuth(userId))

	return &testEnv{app: app, db: db, uploadDir: uploadDir, userId: userId}
}

func createUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	now := time.Now()
	user := model.User{
		Id:        uuid.New(),
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.Id
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, target, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, target, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, target, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func createNotebookHTTP(t *testing.T, env *testEnv, title string) string {
	t.Helper()
	res, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/notebooks", fiber.Map{"title": title}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].(map[string]interface{})
	return data["id"].(string)
}

func TestNotebookCrudOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	id := createNotebookHTTP(t, env, "Flight Plans")

	res, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/notebooks/"+id, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, err = env.app.Test(jsonRequest(t, http.MethodPatch, "/api/notebooks/"+id, fiber.Map{"title": "Updated"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, "Updated", body["data"].(map[string]interface{})["title"])

	res, err = env.app.Test(jsonRequest(t, http.MethodGet, "/api/notebooks", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestNotebookNotFoundStatuses(t *testing.T) {
	env := newTestEnv(t)

	target := "/api/notebooks/" + uuid.NewString()

	res, err := env.app.Test(jsonRequest(t, http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, err = env.app.Test(jsonRequest(t, http.MethodPatch, target, fiber.Map{"title": "x"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, err = env.app.Test(jsonRequest(t, http.MethodDelete, target, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestNotebookDeleteReturnsFixedMessage(t *testing.T) {
	env := newTestEnv(t)

	id := createNotebookHTTP(t, env, "Charter Log")

	res, err := env.app.Test(jsonRequest(t, http.MethodDelete, "/api/notebooks/"+id, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, "Notebook deleted successfully", body["message"])

	// Deleting again 404s.
	res, err = env.app.Test(jsonRequest(t, http.MethodDelete, "/api/notebooks/"+id, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUploadRequiresFileField(t *testing.T) {
	env := newTestEnv(t)

	id := createNotebookHTTP(t, env, "Cargo")

	req := multipartRequest(t, fmt.Sprintf("/api/notebooks/%s/documents", id), "wrong_field", "a.txt", "hello")
	res, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "File is required", body["message"])
}

func TestUploadStoresFileAndCreatesDocument(t *testing.T) {
	env := newTestEnv(t)

	id := createNotebookHTTP(t, env, "Cargo")

	req := multipartRequest(t, fmt.Sprintf("/api/notebooks/%s/documents", id), "file", "Waybill.PDF", "pdf-bytes")
	res, err := env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Waybill.PDF", data["title"])

	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^\d+-\d+\.pdf$`, entries[0].Name())

	res, err = env.app.Test(jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/notebooks/%s/documents", id), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRejectedUploadLeavesOrphanedFile(t *testing.T) {
	env := newTestEnv(t)

	id := createNotebookHTTP(t, env, "Cargo")
	otherUser := createUser(t, env.db, "other@example.com")

	req := multipartRequest(t, fmt.Sprintf("/api/notebooks/%s/documents", id), "file", "sneak.txt", "hello")
	req.Header.Set("X-Test-User", otherUser.String())
	res, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// The file was written before the ownership check and stays behind.
	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	var count int64
	require.NoError(t, env.db.Model(&model.Document{}).Count(&count).Error)
	assert.Zero(t, count)
}
