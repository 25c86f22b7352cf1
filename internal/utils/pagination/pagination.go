package pagination

import (
	"math"
	"strconv"
)

const (
	// DefaultPage is used when the page parameter is missing or not a positive number.
	DefaultPage = 1
	// DefaultPerPage is used when the perPage parameter is missing or not a positive number.
	DefaultPerPage = 10
)

// Normalize coerces raw page/perPage query values into positive integers,
// falling back to the defaults for anything that does not parse.
func Normalize(pageRaw, perPageRaw string) (page, perPage int) {
	return coerce(pageRaw, DefaultPage), coerce(perPageRaw, DefaultPerPage)
}

// Offset returns the number of records to skip for a 1-based page.
// Pages past the addressable range saturate at math.MaxInt so they select an empty window.
func Offset(page, perPage int) int {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

func coerce(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
