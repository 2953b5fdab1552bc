package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"time"
)

// Storage persists uploaded files under a generated name. The write happens
// before any domain ownership check runs, so a rejected upload can leave an
// orphaned file behind.
type Storage interface {
	// Save writes the stream and returns the stored filename.
	Save(ctx context.Context, originalName string, src io.Reader) (string, error)

	// Remove deletes a stored file.
	Remove(ctx context.Context, storedName string) error
}

type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

type Config struct {
	Type      Type
	LocalDir  string
	S3Bucket  string
	S3Region  string
	AccessKey string
	SecretKey string
}

func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case TypeLocal, "":
		return NewLocalStorage(cfg.LocalDir)
	case TypeS3:
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// generateStoredName builds a collision-resistant filename:
// {millisecond timestamp}-{random integer}{original extension, lowercased}.
func generateStoredName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}
