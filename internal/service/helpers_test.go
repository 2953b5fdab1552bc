package service_test

import (
	"context"
	"testing"
	"time"

	"charterflow-be/internal/dto"
	"charterflow-be/internal/model"
	"charterflow-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Workspace{},
		&model.Notebook{},
		&model.Document{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
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

func createNotebook(t *testing.T, svc service.INotebookService, userId uuid.UUID, title string) *dto.NotebookResponse {
	t.Helper()

	res, err := svc.Create(context.Background(), userId, &dto.CreateNotebookRequest{Title: title})
	require.NoError(t, err)
	return res
}

func strPtr(s string) *string {
	return &s
}
