package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalizeDefaults(t *testing.T) {
	var p PaginationQuery
	p.Normalize()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 0, p.Offset())
}

func TestPaginationNormalizeCapsPageSize(t *testing.T) {
	p := PaginationQuery{Page: 3, PageSize: 500}
	p.Normalize()

	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 200, p.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
}
