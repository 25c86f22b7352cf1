package pgsql

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereBuilder collects SQL conditions and their positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) month(month domain.MonthFilter) *whereBuilder {
	if month.IsEmpty() {
		return w
	}
	cond := fmt.Sprintf("date_of_sale ILIKE %s", w.arg(likeEscaper.Replace(month.Raw)+"%"))
	if month.Number != 0 {
		cond = fmt.Sprintf("(%s OR sale_month = %s)", cond, w.arg(month.Number))
	}
	w.conds = append(w.conds, cond)
	return w
}

func (w *whereBuilder) search(term string) *whereBuilder {
	if term == "" {
		return w
	}
	p := w.arg("%" + likeEscaper.Replace(term) + "%")
	w.conds = append(w.conds, fmt.Sprintf("(title ILIKE %[1]s OR description ILIKE %[1]s OR price_text ILIKE %[1]s)", p))
	return w
}

func (w *whereBuilder) priceBetween(bucket domain.PriceBucket) *whereBuilder {
	w.conds = append(w.conds, fmt.Sprintf("price >= %s AND price <= %s",
		w.arg(numericFromDecimal(bucket.Min)), w.arg(numericFromDecimal(bucket.Max))))
	return w
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func numericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func decimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(new(big.Int).Set(n.Int), n.Exp)
}
