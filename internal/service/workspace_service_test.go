package service_test

import (
	"context"
	"testing"

	"charterflow-be/internal/dto"
	"charterflow-be/internal/pkg/apperror"
	"charterflow-be/internal/repository/unitofwork"
	"charterflow-be/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceCreateDefaultsToPersonal(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewWorkspaceService(unitofwork.NewRepositoryFactory(db))
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")

	res, err := svc.Create(ctx, owner, &dto.CreateWorkspaceRequest{Name: "My Space"})
	require.NoError(t, err)
	assert.Equal(t, "personal", res.Type)
	assert.Equal(t, owner, res.OwnerId)

	team, err := svc.Create(ctx, owner, &dto.CreateWorkspaceRequest{Name: "Crew", Type: "team"})
	require.NoError(t, err)
	assert.Equal(t, "team", team.Type)
}

func TestWorkspaceIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewWorkspaceService(unitofwork.NewRepositoryFactory(db))
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")

	created, err := svc.Create(ctx, owner, &dto.CreateWorkspaceRequest{Name: "My Space"})
	require.NoError(t, err)

	_, err = svc.Show(ctx, stranger, created.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	list, err := svc.GetAll(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWorkspaceSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewWorkspaceService(unitofwork.NewRepositoryFactory(db))
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")

	created, err := svc.Create(ctx, owner, &dto.CreateWorkspaceRequest{Name: "My Space"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, created.Id))

	_, err = svc.Show(ctx, owner, created.Id)
	assert.True(t, apperror.IsNotFound(err))

	err = svc.Delete(ctx, owner, created.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
