package storage

import (
	"fmt"
	"net/http"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "porosemi/pkg/errors"
)

func TestReadErrorMissingObject(t *testing.T) {
	err := readError("ent1-x.webp", fmt.Errorf("stat: %w", storage.ErrObjectNotExist))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestReadErrorOtherFailure(t *testing.T) {
	err := readError("ent1-x.webp", fmt.Errorf("connection reset"))

	assert.False(t, apperrors.Is(err, "NOT_FOUND"))
	assert.Contains(t, err.Error(), "ent1-x.webp")
}
