package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/sales_dashboard/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Statistics summarises the sold and unsold records of a month.
type Statistics struct {
	TotalSold   int64
	TotalUnsold int64
	TotalSales  decimal.Decimal
}

// PriceBucket is an inclusive price interval of the histogram.
type PriceBucket struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Label renders the bucket as "min-max".
func (b PriceBucket) Label() string {
	return fmt.Sprintf("%s-%s", b.Min.String(), b.Max.String())
}

// Contains reports whether price falls inside the bucket, bounds included.
func (b PriceBucket) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(b.Min) && price.LessThanOrEqual(b.Max)
}

// PriceRangeCount is the number of records that fall in one bucket.
type PriceRangeCount struct {
	Bucket PriceBucket
	Count  int64
}

// CategoryCount is the number of records carrying one category label.
type CategoryCount struct {
	Category string
	Count    int64
}

// DefaultPriceBuckets returns the ten buckets 0-100, 101-200, ..., 901-1000.
func DefaultPriceBuckets() []PriceBucket {
	buckets := make([]PriceBucket, 0, 10)
	buckets = append(buckets, PriceBucket{Min: decimal.Zero, Max: decimal.NewFromInt(100)})
	for lower := int64(101); lower < 1000; lower += 100 {
		buckets = append(buckets, PriceBucket{
			Min: decimal.NewFromInt(lower),
			Max: decimal.NewFromInt(lower + 99),
		})
	}
	return buckets
}

// ParsePriceBuckets parses a comma separated list such as "0-100,101-200".
func ParsePriceBuckets(raw string) ([]PriceBucket, error) {
	var buckets []PriceBucket
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, ok := strings.Cut(part, "-")
		if !ok {
			return nil, fmt.Errorf("%w: price bucket %q must look like min-max", apperrors.ErrValidation, part)
		}
		minPrice, err := decimal.NewFromString(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("%w: price bucket %q has invalid min: %v", apperrors.ErrValidation, part, err)
		}
		maxPrice, err := decimal.NewFromString(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("%w: price bucket %q has invalid max: %v", apperrors.ErrValidation, part, err)
		}
		if minPrice.GreaterThan(maxPrice) {
			return nil, fmt.Errorf("%w: price bucket %q has min greater than max", apperrors.ErrValidation, part)
		}
		buckets = append(buckets, PriceBucket{Min: minPrice, Max: maxPrice})
	}
	if len(buckets) == 0 {
		return nil, fmt.Errorf("%w: no price buckets in %q", apperrors.ErrValidation, raw)
	}
	return buckets, nil
}
