package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	gcs "cloud.google.com/go/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porosemi/internal/domain/service"
	"porosemi/pkg/errors"
)

type stubBlobStore struct {
	blobs map[string][]byte
}

func (s *stubBlobStore) Put(ctx context.Context, filename string, data []byte, contentType string) error {
	s.blobs[filename] = data
	return nil
}

func (s *stubBlobStore) Get(ctx context.Context, filename string) (*service.Blob, error) {
	data, ok := s.blobs[filename]
	if !ok {
		// Same error chain the storage adapter produces for a missing
		// object: NotFound wrapping the provider sentinel.
		return nil, errors.NotFound("File", gcs.ErrObjectNotExist)
	}
	return &service.Blob{
		Reader:      io.NopCloser(bytes.NewReader(data)),
		ContentType: "image/webp",
		Size:        int64(len(data)),
	}, nil
}

func (s *stubBlobStore) Delete(ctx context.Context, filename string) error { return nil }
func (s *stubBlobStore) URL(filename string) string                        { return "/api/files/" + filename }
func (s *stubBlobStore) Close() error                                      { return nil }

func TestServeFile(t *testing.T) {
	store := &stubBlobStore{blobs: map[string][]byte{"ent1-x.webp": []byte("webp-bytes")}}
	h := NewFileHandler(store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/files/ent1-x.webp", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/files/:filename")
	c.SetParamNames("filename")
	c.SetParamValues("ent1-x.webp")

	require.NoError(t, h.Serve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/webp", rec.Header().Get("Content-Type"))
	assert.Equal(t, "webp-bytes", rec.Body.String())
}

func TestServeFileNotFound(t *testing.T) {
	store := &stubBlobStore{blobs: map[string][]byte{}}
	h := NewFileHandler(store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/files/missing.webp", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/files/:filename")
	c.SetParamNames("filename")
	c.SetParamValues("missing.webp")

	require.NoError(t, h.Serve(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
