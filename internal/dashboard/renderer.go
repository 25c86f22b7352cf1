package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/SscSPs/sales_dashboard/internal/dto"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	chartHeight = 200
	barWidth    = 48
	barGap      = 16
)

var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

type bar struct {
	Label  string
	Count  int64
	X      int
	Y      int
	Height int
}

type slice struct {
	Label   string
	Count   int64
	Color   template.CSS
	Percent float64
}

type row struct {
	Title       string
	Description string
	Price       string
	Category    string
	Sold        bool
	DateOfSale  string
}

type view struct {
	Month  string
	Search string

	Rows            []row
	Total           int64
	Page            int
	PerPage         int
	PrevPage        int
	NextPage        int
	TransactionsErr error

	Statistics    *dto.StatisticsResponse
	StatisticsErr error

	Bars        []bar
	ChartWidth  int
	ChartHeight int
	BarWidth    int
	RangesErr   error

	Slices        []slice
	PieGradient   template.CSS
	CategoriesErr error
}

// Renderer turns a loaded Page into HTML.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the dashboard page for p to w.
func (r *Renderer) Render(w io.Writer, p *Page) error {
	return r.tmpl.ExecuteTemplate(w, "dashboard.html", buildView(p))
}

func buildView(p *Page) view {
	v := view{
		Month:           p.Request.Month,
		Search:          p.Request.Search,
		Page:            p.Request.Page,
		PerPage:         p.Request.PerPage,
		TransactionsErr: p.TransactionsErr,
		Statistics:      p.Statistics,
		StatisticsErr:   p.StatisticsErr,
		ChartHeight:     chartHeight,
		BarWidth:        barWidth,
		RangesErr:       p.PriceRangesErr,
		CategoriesErr:   p.CategoriesErr,
	}

	if t := p.Transactions; t != nil {
		v.Total, v.Page, v.PerPage = t.Total, t.Page, t.PerPage
		for _, tr := range t.Transactions {
			v.Rows = append(v.Rows, row{
				Title:       tr.Title,
				Description: tr.Description,
				Price:       fmt.Sprintf("%.2f", tr.Price),
				Category:    tr.Category,
				Sold:        tr.Sold,
				DateOfSale:  tr.DateOfSale,
			})
		}
		if t.Page > 1 {
			v.PrevPage = t.Page - 1
		}
		if int64(t.Page*t.PerPage) < t.Total {
			v.NextPage = t.Page + 1
		}
	}

	v.Bars, v.ChartWidth = buildBars(p.PriceRanges)
	v.Slices, v.PieGradient = buildPie(p.Categories)
	return v
}

func buildBars(ranges []dto.PriceRangeResponse) ([]bar, int) {
	var highest int64
	for _, r := range ranges {
		if r.Count > highest {
			highest = r.Count
		}
	}

	bars := make([]bar, len(ranges))
	for i, r := range ranges {
		h := 0
		if highest > 0 {
			h = int(r.Count * chartHeight / highest)
		}
		bars[i] = bar{
			Label:  r.Range,
			Count:  r.Count,
			X:      barGap + i*(barWidth+barGap),
			Y:      chartHeight - h,
			Height: h,
		}
	}
	return bars, barGap + len(ranges)*(barWidth+barGap)
}

func buildPie(categories []dto.CategoryResponse) ([]slice, template.CSS) {
	var total int64
	for _, c := range categories {
		total += c.Count
	}
	if total == 0 {
		return nil, template.CSS("#e0e0e0")
	}

	slices := make([]slice, len(categories))
	stops := make([]string, len(categories))
	start := 0.0
	for i, c := range categories {
		pct := float64(c.Count) * 100 / float64(total)
		color := palette[i%len(palette)]
		slices[i] = slice{Label: c.Category, Count: c.Count, Color: template.CSS(color), Percent: pct}
		stops[i] = fmt.Sprintf("%s %.2f%% %.2f%%", color, start, start+pct)
		start += pct
	}
	return slices, template.CSS("conic-gradient(" + strings.Join(stops, ", ") + ")")
}
