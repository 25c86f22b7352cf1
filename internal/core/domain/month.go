package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MonthFilter selects records by month. Raw is matched as a case-insensitive prefix of
// the stored dateOfSale text; Number, when non-zero, also matches records whose parsed
// sale month equals it.
type MonthFilter struct {
	Raw    string
	Number int
}

// ParseMonthFilter builds a MonthFilter from a query parameter such as "March", "mar" or "3".
func ParseMonthFilter(raw string) MonthFilter {
	raw = strings.TrimSpace(raw)
	return MonthFilter{Raw: raw, Number: monthNumber(raw)}
}

// IsEmpty reports whether the filter matches every record.
func (f MonthFilter) IsEmpty() bool {
	return f.Raw == ""
}

// Matches reports whether a record with the given date text and derived month is selected.
func (f MonthFilter) Matches(dateOfSale string, saleMonth int) bool {
	if f.IsEmpty() {
		return true
	}
	if f.Number != 0 && saleMonth == f.Number {
		return true
	}
	return hasPrefixFold(dateOfSale, f.Raw)
}

// hasPrefixFold compares rune by rune under Unicode case folding, so prefixes whose
// folded forms differ in byte width still match.
func hasPrefixFold(s, prefix string) bool {
	for _, pr := range prefix {
		if s == "" {
			return false
		}
		sr, size := utf8.DecodeRuneInString(s)
		if sr != pr && !strings.EqualFold(string(sr), string(pr)) {
			return false
		}
		s = s[size:]
	}
	return true
}

// monthNumber resolves a month name, an unambiguous prefix of at least three letters,
// or a number 1..12. It returns 0 when s names no single month.
func monthNumber(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return n
		}
		return 0
	}
	if len(s) < 3 {
		return 0
	}
	lower := strings.ToLower(s)
	found := 0
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), lower) {
			if found != 0 {
				return 0
			}
			found = int(m)
		}
	}
	return found
}

var saleDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// SaleMonthOf derives the calendar month from a feed date string. Dates that match no
// known layout fall back to a leading month name; anything else yields 0.
func SaleMonthOf(dateOfSale string) int {
	s := strings.TrimSpace(dateOfSale)
	if s == "" {
		return 0
	}
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return int(t.Month())
		}
	}
	word := strings.FieldsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	if len(word) == 0 || !strings.HasPrefix(s, word[0]) {
		return 0
	}
	return monthNumber(word[0])
}
