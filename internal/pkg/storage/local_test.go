package storage

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storedNamePattern = regexp.MustCompile(`^\d+-\d+(\.[a-z0-9]+)?$`)

func TestGenerateStoredNameFormat(t *testing.T) {
	name := generateStoredName("Report.PDF")
	assert.Regexp(t, storedNamePattern, name)
	assert.True(t, strings.HasSuffix(name, ".pdf"), "extension must be lowercased: %s", name)

	// No extension means no trailing dot.
	bare := generateStoredName("README")
	assert.Regexp(t, storedNamePattern, bare)
	assert.False(t, strings.Contains(bare, "."))
}

func TestLocalStorageSaveAndRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	// The directory is created on demand.
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	storedName, err := store.Save(context.Background(), "notes.TXT", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Regexp(t, storedNamePattern, storedName)

	data, err := os.ReadFile(filepath.Join(dir, storedName))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Remove(context.Background(), storedName))
	_, err = os.Stat(filepath.Join(dir, storedName))
	assert.True(t, os.IsNotExist(err))
}
