package mongodb

import (
	"context"
	"fmt"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type reportingRepository struct {
	collection *mongo.Collection
}

func newReportingRepository(collection *mongo.Collection) portsrepo.ReportingRepository {
	return &reportingRepository{collection: collection}
}

// GetStatistics aggregates sold/unsold counts and the sold price total in one $group stage
func (r *reportingRepository) GetStatistics(ctx context.Context, month domain.MonthFilter) (domain.Statistics, error) {
	zero, _ := primitive.ParseDecimal128("0")
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: combine(monthCondition(month))}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalSold":   bson.M{"$sum": bson.M{"$cond": bson.A{"$sold", 1, 0}}},
			"totalUnsold": bson.M{"$sum": bson.M{"$cond": bson.A{"$sold", 0, 1}}},
			"totalSales":  bson.M{"$sum": bson.M{"$cond": bson.A{"$sold", "$price", zero}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("error aggregating statistics: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalSold   int64                `bson:"totalSold"`
		TotalUnsold int64                `bson:"totalUnsold"`
		TotalSales  primitive.Decimal128 `bson:"totalSales"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return domain.Statistics{}, fmt.Errorf("error decoding statistics: %w", err)
	}

	stats := domain.Statistics{TotalSales: decimal.Zero}
	if len(rows) == 0 {
		return stats, nil
	}
	stats.TotalSold = rows[0].TotalSold
	stats.TotalUnsold = rows[0].TotalUnsold
	if stats.TotalSales, err = fromDecimal128(rows[0].TotalSales); err != nil {
		return domain.Statistics{}, err
	}
	return stats, nil
}

// CountInPriceRange counts the documents of the month whose price lies in the bucket
func (r *reportingRepository) CountInPriceRange(ctx context.Context, month domain.MonthFilter, bucket domain.PriceBucket) (int64, error) {
	lo, err := toDecimal128(bucket.Min)
	if err != nil {
		return 0, err
	}
	hi, err := toDecimal128(bucket.Max)
	if err != nil {
		return 0, err
	}

	query := combine(monthCondition(month), bson.M{"price": bson.M{"$gte": lo, "$lte": hi}})
	count, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("error counting price range %s: %w", bucket.Label(), err)
	}
	return count, nil
}

// GetCategoryBreakdown groups the documents of the month by category, ordered by label
func (r *reportingRepository) GetCategoryBreakdown(ctx context.Context, month domain.MonthFilter) ([]domain.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: combine(monthCondition(month))}},
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating categories: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Category string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding categories: %w", err)
	}

	result := make([]domain.CategoryCount, len(rows))
	for i, row := range rows {
		result[i] = domain.CategoryCount{Category: row.Category, Count: row.Count}
	}
	return result, nil
}
