package services

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filehub-api/internal/apperr"
)

func TestBlobWriteAndRead(t *testing.T) {
	blobs := newTestBlobs(t)

	content := []byte("hello blob")
	path, err := blobs.Write(base64.StdEncoding.EncodeToString(content))
	require.NoError(t, err)
	assert.Equal(t, blobs.Root(), filepath.Dir(path))

	data, err := blobs.Read(path)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestBlobWriteInvalidBase64(t *testing.T) {
	blobs := newTestBlobs(t)

	_, err := blobs.Write("not base64 !!!")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestBlobWriteGeneratesUniquePaths(t *testing.T) {
	blobs := newTestBlobs(t)
	payload := base64.StdEncoding.EncodeToString([]byte("same content"))

	first, err := blobs.Write(payload)
	require.NoError(t, err)
	second, err := blobs.Write(payload)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobReadAbsent(t *testing.T) {
	blobs := newTestBlobs(t)

	_, err := blobs.Read(filepath.Join(blobs.Root(), "missing"))
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestBlobVariants(t *testing.T) {
	blobs := newTestBlobs(t)

	path, err := blobs.Write(base64.StdEncoding.EncodeToString([]byte("original")))
	require.NoError(t, err)

	assert.Equal(t, path+"_250", blobs.VariantPath(path, 250))

	require.NoError(t, blobs.WriteVariant(path, 250, []byte("smaller")))

	data, err := blobs.Read(blobs.VariantPath(path, 250))
	require.NoError(t, err)
	assert.Equal(t, []byte("smaller"), data)

	// Reprocessing overwrites the previous variant.
	require.NoError(t, blobs.WriteVariant(path, 250, []byte("smaller v2")))
	data, err = blobs.Read(blobs.VariantPath(path, 250))
	require.NoError(t, err)
	assert.Equal(t, []byte("smaller v2"), data)

	// The original is untouched.
	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), orig)
}
