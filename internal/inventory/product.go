package inventory

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Product is one inventory record. Price and Quantity keep the text the
// user entered.
type Product struct {
	ID          string `yaml:"id,omitempty"`
	Title       string `yaml:"title"`
	Price       string `yaml:"price"`
	Quantity    string `yaml:"quantity"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// Field identifies one editable field of a Product.
type Field int

const (
	FieldTitle Field = iota
	FieldPrice
	FieldQuantity
	FieldCategory
	FieldDescription
)

// Fields lists the editable fields in form order.
var Fields = []Field{FieldTitle, FieldPrice, FieldQuantity, FieldCategory, FieldDescription}

// Label returns the form label for the field.
func (f Field) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldPrice:
		return "Price"
	case FieldQuantity:
		return "Quantity"
	case FieldCategory:
		return "Category"
	case FieldDescription:
		return "Description"
	default:
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
}

// Placeholder returns the hint shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case FieldTitle:
		return "Enter product title"
	case FieldPrice:
		return "Enter product price"
	case FieldQuantity:
		return "Enter quantity"
	case FieldCategory:
		return "Enter product category"
	case FieldDescription:
		return "Enter product description"
	default:
		return ""
	}
}

// Numeric reports whether the field is a number-as-string field.
func (f Field) Numeric() bool {
	return f == FieldPrice || f == FieldQuantity
}

// Get returns the value of field f.
func (p Product) Get(f Field) string {
	switch f {
	case FieldTitle:
		return p.Title
	case FieldPrice:
		return p.Price
	case FieldQuantity:
		return p.Quantity
	case FieldCategory:
		return p.Category
	case FieldDescription:
		return p.Description
	}
	return ""
}

// Set returns a copy of p with field f replaced.
func (p Product) Set(f Field, value string) Product {
	switch f {
	case FieldTitle:
		p.Title = value
	case FieldPrice:
		p.Price = value
	case FieldQuantity:
		p.Quantity = value
	case FieldCategory:
		p.Category = value
	case FieldDescription:
		p.Description = value
	}
	return p
}

// MissingFields returns the required fields that are blank. Every field is
// required; the result is used for marking only and never blocks a save.
func (p Product) MissingFields() []Field {
	var missing []Field
	for _, f := range Fields {
		if strings.TrimSpace(p.Get(f)) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// ParsePrice converts a stored price to a number. ok is false for empty,
// non-numeric and non-finite values.
func ParsePrice(s string) (v float64, ok bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// PriceValue is ParsePrice applied to p.Price.
func (p Product) PriceValue() (float64, bool) {
	return ParsePrice(p.Price)
}

// DisplayPrice formats the price with a currency symbol and thousands
// separators. Unparseable prices are shown as typed.
func (p Product) DisplayPrice(currency string) string {
	v, ok := p.PriceValue()
	if !ok {
		return currency + p.Price
	}
	return currency + humanize.FormatFloat("#,###.##", v)
}

// DisplayQuantity formats whole quantities with thousands separators.
func (p Product) DisplayQuantity() string {
	n, err := strconv.ParseInt(strings.TrimSpace(p.Quantity), 10, 64)
	if err != nil {
		return p.Quantity
	}
	return humanize.Comma(n)
}
