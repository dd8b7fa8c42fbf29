package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaging(t *testing.T) {
	page, size := NormalizePaging(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, size)

	// defaults kick in for invalid input
	page, size = NormalizePaging(0, 0)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageSize, size)

	_, size = NormalizePaging(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, size)
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(3, 25)
	assert.Equal(t, uint64(50), offset)
	assert.Equal(t, 25, limit)

	_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, int64(45), info.TotalItems)

	info = NewPaginationInfo(0, 1, 20)
	assert.Equal(t, 1, info.TotalPages)

	// page clamped to the last page
	info = NewPaginationInfo(10, 9, 20)
	assert.Equal(t, 1, info.CurrentPage)
}

// An oversized page size must be reported exactly as it is queried, so
// the advertised window always matches the rows returned.
func TestPaginationReportsClampedSize(t *testing.T) {
	_, limit := CalculateOffsetLimit(1, 500)
	info := NewPaginationInfo(45, 1, 500)

	assert.Equal(t, limit, info.PageSize)
	assert.Equal(t, DefaultPageSize, info.PageSize)
	assert.Equal(t, 3, info.TotalPages)
}
