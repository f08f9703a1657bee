package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porosemi/internal/adapter/api"
	"porosemi/internal/domain/entity"
	"porosemi/internal/usecase"
)

type stubRatingRepo struct {
	ratings []*entity.Rating
}

func (r *stubRatingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	rating.ID = "r1"
	r.ratings = append(r.ratings, rating)
	return nil
}

func (r *stubRatingRepo) List(ctx context.Context, limit, offset int) ([]*entity.Rating, int64, error) {
	return r.ratings, int64(len(r.ratings)), nil
}

func (r *stubRatingRepo) All(ctx context.Context) ([]*entity.Rating, error) {
	return r.ratings, nil
}

func (r *stubRatingRepo) Delete(ctx context.Context, id string) error { return nil }

func newRatingContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = api.NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/ratings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateRating(t *testing.T) {
	repo := &stubRatingRepo{}
	h := NewRatingHandler(usecase.NewRatingUseCase(repo))

	c, rec := newRatingContext(t, `{"label":"great","rating":5}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.ratings, 1)
	assert.Equal(t, 5, repo.ratings[0].Rating)
}

func TestCreateRatingOutOfRange(t *testing.T) {
	repo := &stubRatingRepo{}
	h := NewRatingHandler(usecase.NewRatingUseCase(repo))

	c, rec := newRatingContext(t, `{"rating":6}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.ratings)
}

func TestRatingSummary(t *testing.T) {
	repo := &stubRatingRepo{ratings: []*entity.Rating{
		{ID: "a", Rating: 5},
		{ID: "b", Rating: 4},
		{ID: "c", Rating: 5},
	}}
	h := NewRatingHandler(usecase.NewRatingUseCase(repo))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ratings/summary", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Summary(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":3`)
}
