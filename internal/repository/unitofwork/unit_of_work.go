package unitofwork

import (
	"context"

	"charterflow-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	WorkspaceRepository() contract.WorkspaceRepository
	NotebookRepository() contract.NotebookRepository
	DocumentRepository() contract.DocumentRepository
}
