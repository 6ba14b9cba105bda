// Package table renders product lists as terminal tables.
package table

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/databolaget/databolaget/internal/adapters/driving/tui/styles"
	"github.com/databolaget/databolaget/internal/core/domain"
)

// Placeholder is shown for values that are missing.
const Placeholder = "-"

// Column indexes.
const (
	ColName = iota
	ColCategory
	ColVolume
	ColABV
	ColPrice
	ColAPK
	ColLink
)

// Headers returns the column titles.
func Headers() []string {
	return []string{"Name", "Category", "Volume (ml)", "ABV", "Price", "APK", "Link"}
}

// Row formats a product as table cells.
// When withURL is false the link column shows "View" instead of the URL.
func Row(p domain.Product, withURL bool) []string {
	return []string{
		orPlaceholder(p.ListName()),
		orPlaceholder(p.CategoryTitle()),
		Volume(p),
		ABV(p),
		Price(p),
		APK(p),
		Link(p, withURL),
	}
}

// Volume renders the volume as written in the source.
func Volume(p domain.Product) string {
	if !p.Truthy(domain.FieldVolume) {
		return Placeholder
	}
	return p.String(domain.FieldVolume)
}

// ABV renders the alcohol percentage with a percent sign.
func ABV(p domain.Product) string {
	if !p.Truthy(domain.FieldAlcoholPercentage) {
		return Placeholder
	}
	return p.String(domain.FieldAlcoholPercentage) + "%"
}

// Price renders the price rounded to whole kronor, halves away from zero.
func Price(p domain.Product) string {
	price, ok := p.Float(domain.FieldPrice)
	if !ok || price == 0 {
		return Placeholder
	}
	return strconv.FormatFloat(math.Round(price), 'f', 0, 64) + " kr"
}

// APK renders the metric with two decimals, halves away from zero.
func APK(p domain.Product) string {
	apk, ok := p.APK()
	if !ok || apk == 0 {
		return Placeholder
	}
	return strconv.FormatFloat(math.Round(apk*100)/100, 'f', 2, 64)
}

// Link renders the product page link.
func Link(p domain.Product, withURL bool) string {
	url := p.ProductURL()
	switch {
	case url == "":
		return Placeholder
	case withURL:
		return url
	default:
		return "View"
	}
}

// Options controls Render.
type Options struct {
	// Styles colours the header and the selected row. Nil uses defaults.
	Styles *styles.Styles

	// Selected is the highlighted row, or -1 for none.
	Selected int

	// Width caps the table width. Zero leaves it unconstrained.
	Width int

	// WithURL prints full URLs in the link column.
	WithURL bool

	// Plain disables borders, leaving aligned columns only.
	Plain bool
}

// Render draws products as a table.
// An empty list renders the "no products" message instead.
func Render(products []domain.Product, opts Options) string {
	s := opts.Styles
	if s == nil {
		s = styles.DefaultStyles()
	}
	if len(products) == 0 {
		return s.Muted.Render("No products found matching the criteria.")
	}

	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = Row(p, opts.WithURL)
	}

	t := table.New().
		Headers(Headers()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := s.Cell
			switch {
			case row == table.HeaderRow:
				style = s.Header
			case row == opts.Selected:
				style = s.Selected.Padding(0, 1)
			case col == ColAPK:
				style = s.Value
			}
			if col >= ColVolume && col <= ColAPK {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	if opts.Plain {
		t = t.Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderColumn(false).
			BorderHeader(false)
	} else {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(s.Theme().Border))
	}
	if opts.Width > 0 {
		t = t.Width(opts.Width)
	}

	return trimLines(t.Render())
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
