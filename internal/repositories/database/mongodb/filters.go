package mongodb

import (
	"regexp"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
)

func caseInsensitive(pattern string) bson.M {
	return bson.M{"$regex": pattern, "$options": "i"}
}

func monthCondition(month domain.MonthFilter) bson.M {
	if month.IsEmpty() {
		return nil
	}
	prefix := bson.M{"dateOfSale": caseInsensitive("^" + regexp.QuoteMeta(month.Raw))}
	if month.Number == 0 {
		return prefix
	}
	return bson.M{"$or": bson.A{prefix, bson.M{"saleMonth": month.Number}}}
}

func searchCondition(term string) bson.M {
	if term == "" {
		return nil
	}
	pattern := caseInsensitive(regexp.QuoteMeta(term))
	return bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"description": pattern},
		bson.M{"priceText": pattern},
	}}
}

// combine joins the non-nil conditions with $and. No conditions selects everything.
func combine(conds ...bson.M) bson.M {
	parts := bson.A{}
	for _, c := range conds {
		if c != nil {
			parts = append(parts, c)
		}
	}
	switch len(parts) {
	case 0:
		return bson.M{}
	case 1:
		return parts[0].(bson.M)
	default:
		return bson.M{"$and": parts}
	}
}
