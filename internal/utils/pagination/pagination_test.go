package pagination

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page        string
		perPage     string
		wantPage    int
		wantPerPage int
	}{
		{name: "defaults when empty", page: "", perPage: "", wantPage: 1, wantPerPage: 10},
		{name: "valid values", page: "3", perPage: "25", wantPage: 3, wantPerPage: 25},
		{name: "non numeric page", page: "abc", perPage: "5", wantPage: 1, wantPerPage: 5},
		{name: "zero and negative", page: "0", perPage: "-4", wantPage: 1, wantPerPage: 10},
		{name: "float is not an int", page: "2.5", perPage: "10", wantPage: 1, wantPerPage: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := Normalize(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(0, 10), "page below 1 is treated as the first page")
}

func TestOffset_SaturatesOnOverflow(t *testing.T) {
	page, perPage := Normalize(strconv.Itoa(math.MaxInt), "10")

	assert.Equal(t, math.MaxInt, page)
	assert.Equal(t, math.MaxInt, Offset(page, perPage))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt/10+2, 10))
	assert.Equal(t, (math.MaxInt/10)*10, Offset(math.MaxInt/10+1, 10), "largest page that still fits")
}
