package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/practices"+query, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	page, limit, err := ParsePagination(paginationContext(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultLimit, limit)
}

func TestParsePaginationExplicit(t *testing.T) {
	page, limit, err := ParsePagination(paginationContext(t, "?page=3&limit=25"))
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
}

func TestParsePaginationRejectsInvalid(t *testing.T) {
	cases := []string{
		"?page=0",
		"?page=-1",
		"?page=abc",
		"?limit=0",
		"?limit=101",
		"?limit=xyz",
	}
	for _, query := range cases {
		_, _, err := ParsePagination(paginationContext(t, query))
		assert.Error(t, err, "query %q should be rejected", query)
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 50, Offset(3, 25))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 45)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 45, p.Total)
	assert.Equal(t, 5, p.TotalPages)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.TotalPages)
}
