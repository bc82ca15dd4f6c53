package forum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name           string
		requested      int
		size           int
		total          int64
		wantPage       int
		wantTotalPages int
		wantOffset     int
	}{
		{"empty listing clamps to one empty page", 5, 10, 0, 1, 1, 0},
		{"middle page", 2, 5, 12, 2, 3, 5},
		{"past the end clamps to last page", 99, 5, 12, 3, 3, 10},
		{"zero page clamps to first", 0, 5, 12, 1, 3, 0},
		{"negative page clamps to first", -3, 5, 12, 1, 3, 0},
		{"exact multiple of size", 2, 6, 12, 2, 2, 6},
		{"single short page", 1, 10, 3, 1, 1, 0},
		{"non-positive size falls back to default", 2, 0, 12, 2, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, totalPages, offset := ResolvePage(tt.requested, tt.size, tt.total)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantTotalPages, totalPages)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestNormalizePageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NormalizePageSize(0))
	assert.Equal(t, DefaultPageSize, NormalizePageSize(-1))
	assert.Equal(t, 20, NormalizePageSize(20))
	assert.Equal(t, MaxPageSize, NormalizePageSize(MaxPageSize+1))
}
