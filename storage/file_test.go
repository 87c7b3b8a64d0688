package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileBackend_StoreAndFetch(t *testing.T) {
	tempDir := t.TempDir()
	backend, err := NewFileBackend(tempDir, testLogger())
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte(`{"id":"test","verified":false}`)

	id, err := backend.Store(ctx, data, interfaces.ProofType)
	require.NoError(t, err)
	assert.Equal(t, interfaces.ComputeID(data), id)

	fetched, err := backend.Fetch(ctx, id, interfaces.ProofType)
	require.NoError(t, err)
	assert.Equal(t, data, fetched)
}

func TestFileBackend_TypesAreNamespaced(t *testing.T) {
	tempDir := t.TempDir()
	backend, err := NewFileBackend(tempDir, testLogger())
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte("same bytes both namespaces")

	id, err := backend.Store(ctx, data, interfaces.ProofType)
	require.NoError(t, err)

	// Stored as a proof, not fetchable as an event batch.
	_, err = backend.Fetch(ctx, id, interfaces.EventType)
	assert.ErrorIs(t, err, interfaces.ErrContentNotFound)

	// Namespaces map to distinct directories on disk.
	_, err = os.Stat(filepath.Join(tempDir, "proofs", id.String()))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(tempDir, "events", id.String()))
	assert.True(t, os.IsNotExist(err))
}

func TestFileBackend_FetchMissing(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir(), testLogger())
	require.NoError(t, err)

	_, err = backend.Fetch(context.Background(), interfaces.ContentID{1, 2, 3}, interfaces.ProofType)
	assert.ErrorIs(t, err, interfaces.ErrContentNotFound)
}

func TestFileBackend_Available(t *testing.T) {
	tempDir := t.TempDir()
	backend, err := NewFileBackend(tempDir, testLogger())
	require.NoError(t, err)

	assert.True(t, backend.Available(context.Background()))

	require.NoError(t, os.RemoveAll(tempDir))
	assert.False(t, backend.Available(context.Background()))
}

func TestFileBackend_LocationURIRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	backend, err := NewFileBackend(tempDir, testLogger())
	require.NoError(t, err)

	factory := NewStorageBackendFactory(testLogger())
	recreated, err := factory.StorageBackendFor(interfaces.StorageBackendLocation(backend.LocationURI()))
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte("round trip")
	id, err := backend.Store(ctx, data, interfaces.EventType)
	require.NoError(t, err)

	fetched, err := recreated.Fetch(ctx, id, interfaces.EventType)
	require.NoError(t, err)
	assert.Equal(t, data, fetched)
}
