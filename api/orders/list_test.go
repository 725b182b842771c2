package orders

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/orders", 20, 0},
		{"explicit page", "/orders?page=3&page_size=10", 10, 20},
		{"zero page clamped", "/orders?page=0", 20, 0},
		{"negative page clamped", "/orders?page=-5", 20, 0},
		{"oversized page_size clamped", "/orders?page_size=500", 20, 0},
		{"non-numeric ignored", "/orders?page=abc&page_size=xyz", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			limit, offset := parsePagination(r)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseSortDir(t *testing.T) {
	assert.Equal(t, "desc", parseSortDir(httptest.NewRequest("GET", "/orders", nil)))
	assert.Equal(t, "asc", parseSortDir(httptest.NewRequest("GET", "/orders?sort=asc", nil)))
	assert.Equal(t, "desc", parseSortDir(httptest.NewRequest("GET", "/orders?sort=sideways", nil)))
}
