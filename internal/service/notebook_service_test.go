package service_test

import (
	"context"
	"testing"
	"time"

	"charterflow-be/internal/dto"
	"charterflow-be/internal/model"
	"charterflow-be/internal/pkg/apperror"
	"charterflow-be/internal/repository/unitofwork"
	"charterflow-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotebookShowRequiresOwnershipTriple(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNotebookService(unitofwork.NewRepositoryFactory(db), nil)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")

	created := createNotebook(t, svc, owner, "Flight Plans")

	// Owner sees it.
	got, err := svc.Show(ctx, owner, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Flight Plans", got.Title)

	// Another user gets NotFound, not Forbidden.
	_, err = svc.Show(ctx, stranger, created.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	// Unknown id gets NotFound.
	_, err = svc.Show(ctx, owner, uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestNotebookDeleteIsSoftAndSecondCall404s(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNotebookService(unitofwork.NewRepositoryFactory(db), nil)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	created := createNotebook(t, svc, owner, "Charter Log")

	require.NoError(t, svc.Delete(ctx, owner, created.Id))

	// The row still exists, only deactivated.
	var m model.Notebook
	require.NoError(t, db.First(&m, "id = ?", created.Id).Error)
	assert.False(t, m.IsActive)

	// Deleted notebooks are invisible to Show and to a second Delete.
	_, err := svc.Show(ctx, owner, created.Id)
	assert.True(t, apperror.IsNotFound(err))

	err = svc.Delete(ctx, owner, created.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestNotebookEmptyPartialUpdateOnlyBumpsUpdatedAt(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNotebookService(unitofwork.NewRepositoryFactory(db), nil)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	created, err := svc.Create(ctx, owner, &dto.CreateNotebookRequest{
		Title:       "Manifest",
		Description: strPtr("passenger manifest"),
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := svc.Update(ctx, owner, &dto.UpdateNotebookRequest{Id: created.Id})
	require.NoError(t, err)

	assert.Equal(t, created.Title, updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "passenger manifest", *updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestNotebookUpdateShallowMergesProvidedFields(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNotebookService(unitofwork.NewRepositoryFactory(db), nil)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	created, err := svc.Create(ctx, owner, &dto.CreateNotebookRequest{
		Title:       "Manifest",
		Description: strPtr("original"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, &dto.UpdateNotebookRequest{
		Id:    created.Id,
		Title: strPtr("Manifest v2"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Manifest v2", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "original", *updated.Description)
}

func TestNotebookListIsOwnerScopedAndNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNotebookService(unitofwork.NewRepositoryFactory(db), nil)
	ctx := context.Background()

	userA := createTestUser(t, db, "a@example.com")
	userB := createTestUser(t, db, "b@example.com")

	first := createNotebook(t, svc, userA, "first")
	time.Sleep(5 * time.Millisecond)
	second := createNotebook(t, svc, userA, "second")
	time.Sleep(5 * time.Millisecond)
	third := createNotebook(t, svc, userA, "third")
	createNotebook(t, svc, userB, "not yours")

	list, err := svc.GetAll(ctx, userA)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, third.Id, list[0].Id)
	assert.Equal(t, second.Id, list[1].Id)
	assert.Equal(t, first.Id, list[2].Id)

	// Deleted notebooks drop out of the listing.
	require.NoError(t, svc.Delete(ctx, userA, second.Id))
	list, err = svc.GetAll(ctx, userA)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, third.Id, list[0].Id)
	assert.Equal(t, first.Id, list[1].Id)
}

func TestRejectedUploadCreatesNoDocumentRow(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNotebookService(unitofwork.NewRepositoryFactory(db), nil)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")
	created := createNotebook(t, svc, owner, "Cargo")

	_, err := svc.CreateDocumentFromUpload(ctx, stranger, &dto.UploadDocumentRequest{
		NotebookId:     created.Id,
		OriginalName:   "Waybill.PDF",
		StoredFileName: "1700000000000-123456789.pdf",
		MimeType:       "application/pdf",
		Size:           1024,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	var count int64
	require.NoError(t, db.Model(&model.Document{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUploadPersistsDocumentMetadata(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNotebookService(unitofwork.NewRepositoryFactory(db), nil)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	created := createNotebook(t, svc, owner, "Cargo")

	doc, err := svc.CreateDocumentFromUpload(ctx, owner, &dto.UploadDocumentRequest{
		NotebookId:     created.Id,
		OriginalName:   "Waybill.PDF",
		StoredFileName: "1700000000000-123456789.pdf",
		MimeType:       "application/pdf",
		Size:           1024,
	})
	require.NoError(t, err)

	assert.Equal(t, "Waybill.PDF", doc.Title)
	assert.Equal(t, "1700000000000-123456789.pdf", doc.FileName)
	assert.False(t, doc.IsProcessed)
	require.NotNil(t, doc.NotebookId)
	assert.Equal(t, created.Id, *doc.NotebookId)
	require.NotNil(t, doc.Metadata)
	assert.Equal(t, "Waybill.PDF", doc.Metadata["originalName"])
}

func TestGetDocumentsChecksNotebookFirst(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNotebookService(unitofwork.NewRepositoryFactory(db), nil)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")
	created := createNotebook(t, svc, owner, "Cargo")

	_, err := svc.GetDocuments(ctx, stranger, created.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	docs, err := svc.GetDocuments(ctx, owner, created.Id)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

// Full two-user walkthrough: each user only ever sees their own data, and a
// soft-deleted notebook vanishes from every read path.
func TestTwoUserEndToEndScenario(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNotebookService(unitofwork.NewRepositoryFactory(db), nil)
	ctx := context.Background()

	userA := createTestUser(t, db, "a@example.com")
	userB := createTestUser(t, db, "b@example.com")

	nbA := createNotebook(t, svc, userA, "A's notebook")
	nbB := createNotebook(t, svc, userB, "B's notebook")

	// A uploads a document into their own notebook.
	_, err := svc.CreateDocumentFromUpload(ctx, userA, &dto.UploadDocumentRequest{
		NotebookId:     nbA.Id,
		OriginalName:   "plan.txt",
		StoredFileName: "1700000000000-42.txt",
		MimeType:       "text/plain",
		Size:           12,
	})
	require.NoError(t, err)

	// B cannot read, update, delete or list into A's notebook.
	_, err = svc.Show(ctx, userB, nbA.Id)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Update(ctx, userB, &dto.UpdateNotebookRequest{Id: nbA.Id, Title: strPtr("hijacked")})
	assert.True(t, apperror.IsNotFound(err))

	err = svc.Delete(ctx, userB, nbA.Id)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.GetDocuments(ctx, userB, nbA.Id)
	assert.True(t, apperror.IsNotFound(err))

	// Each list shows exactly the caller's notebook.
	listA, err := svc.GetAll(ctx, userA)
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, nbA.Id, listA[0].Id)

	listB, err := svc.GetAll(ctx, userB)
	require.NoError(t, err)
	require.Len(t, listB, 1)
	assert.Equal(t, nbB.Id, listB[0].Id)

	// A's title was not touched by B's attempt.
	got, err := svc.Show(ctx, userA, nbA.Id)
	require.NoError(t, err)
	assert.Equal(t, "A's notebook", got.Title)

	// A deletes their notebook; it disappears from every read path but the
	// document row survives untouched.
	require.NoError(t, svc.Delete(ctx, userA, nbA.Id))

	listA, err = svc.GetAll(ctx, userA)
	require.NoError(t, err)
	assert.Empty(t, listA)

	_, err = svc.GetDocuments(ctx, userA, nbA.Id)
	assert.True(t, apperror.IsNotFound(err))

	var docCount int64
	require.NoError(t, db.Model(&model.Document{}).Where("is_active = ?", true).Count(&docCount).Error)
	assert.Equal(t, int64(1), docCount)

	// B is unaffected throughout.
	gotB, err := svc.Show(ctx, userB, nbB.Id)
	require.NoError(t, err)
	assert.Equal(t, "B's notebook", gotB.Title)
}
