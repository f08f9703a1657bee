package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/projects?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	p := GetPaginationParams(paginationContext(""))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, defaultPageSize, p.PageSize)
	assert.Equal(t, 0, p.Offset)
}

func TestGetPaginationParamsOffset(t *testing.T) {
	p := GetPaginationParams(paginationContext("page=3&limit=10"))

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 20, p.Offset)
}

func TestGetPaginationParamsClampsLimit(t *testing.T) {
	p := GetPaginationParams(paginationContext("page=-2&limit=5000"))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, defaultPageSize, p.PageSize)
}
