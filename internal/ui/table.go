package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/muurk/mystore/internal/inventory"
)

// Column caps for the product table. Title and Description take what is
// left of the terminal width after the fixed columns.
const (
	priceColumnMax    = 14
	quantityColumnMax = 8
	categoryColumnMax = 16
	columnGap         = "  "
	ellipsis          = "…"
)

// ProductTable renders products as aligned rows.
type ProductTable struct {
	Products []inventory.Product
	Currency string
	Width    int
	Wrap     bool // Wrap long descriptions onto continuation lines instead of truncating
}

// NewProductTable creates a table sized to the terminal.
func NewProductTable(products []inventory.Product, currency string) *ProductTable {
	return &ProductTable{
		Products: products,
		Currency: currency,
		Width:    GetTerminalWidth(),
	}
}

type tableLayout struct {
	title, price, quantity, category, description int
}

func (t *ProductTable) layout() tableLayout {
	l := tableLayout{
		title:    len("TITLE"),
		price:    len("PRICE"),
		quantity: len("QTY"),
		category: len("CATEGORY"),
	}
	for _, p := range t.Products {
		l.title = max(l.title, lipgloss.Width(p.Title))
		l.price = max(l.price, lipgloss.Width(p.DisplayPrice(t.Currency)))
		l.quantity = max(l.quantity, lipgloss.Width(p.DisplayQuantity()))
		l.category = max(l.category, lipgloss.Width(p.Category))
	}
	l.price = min(l.price, priceColumnMax)
	l.quantity = min(l.quantity, quantityColumnMax)
	l.category = min(l.category, categoryColumnMax)

	width := max(t.Width, MinTerminalWidth)
	rest := width - l.price - l.quantity - l.category - 4*len(columnGap)
	l.title = min(l.title, rest/3)
	l.description = max(rest-l.title, len("DESCRIPTION"))
	return l
}

// Render returns the table, or a muted placeholder when there are no rows.
func (t *ProductTable) Render() string {
	if len(t.Products) == 0 {
		return MutedStyle.Render("  No products match.")
	}

	l := t.layout()
	var b strings.Builder

	header := joinCells(
		cell("TITLE", l.title, TableHeaderStyle),
		cell("PRICE", l.price, TableHeaderStyle),
		cell("QTY", l.quantity, TableHeaderStyle),
		cell("CATEGORY", l.category, TableHeaderStyle),
		TableHeaderStyle.Render("DESCRIPTION"),
	)
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(RenderHorizontalDivider(l.title+l.price+l.quantity+l.category+l.description+4*len(columnGap), "─"))
	b.WriteString("\n")

	for _, p := range t.Products {
		priceStyle := PriceStyle
		if _, ok := p.PriceValue(); !ok {
			priceStyle = UnpricedStyle
		}

		desc := strings.Join(strings.Fields(p.Description), " ")
		var continuation []string
		if t.Wrap {
			lines := strings.Split(wordwrap.String(desc, l.description), "\n")
			desc, continuation = lines[0], lines[1:]
		}

		b.WriteString(joinCells(
			cell(p.Title, l.title, TableCellStyle),
			cell(p.DisplayPrice(t.Currency), l.price, priceStyle),
			cell(p.DisplayQuantity(), l.quantity, TableCellStyle),
			cell(p.Category, l.category, MutedStyle),
			MutedStyle.Render(fit(desc, l.description)),
		))
		b.WriteString("\n")

		indent := strings.Repeat(" ", l.title+l.price+l.quantity+l.category+4*len(columnGap))
		for _, line := range continuation {
			b.WriteString(indent + MutedStyle.Render(line) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// String implements fmt.Stringer
func (t *ProductTable) String() string {
	return t.Render()
}

// cell truncates s to width and pads it so columns line up.
func cell(s string, width int, style lipgloss.Style) string {
	return style.Width(width).Render(fit(s, width))
}

// fit shortens s to width with a trailing ellipsis. reflow's truncate also
// cuts strings that exactly fill width, so those are returned untouched.
func fit(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

func joinCells(cells ...string) string {
	return strings.Join(cells, columnGap)
}
