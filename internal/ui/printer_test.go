package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/muurk/mystore/internal/inventory"
)

var sample = []inventory.Product{
	{ID: "p1", Title: "Blue Mug", Price: "12", Quantity: "40", Category: "Kitchen", Description: "Stoneware mug."},
	{ID: "p2", Title: "Claw Hammer", Price: "1234.5", Quantity: "12000", Category: "Tools"},
	{ID: "p3", Title: "Mystery Box", Price: "ask", Quantity: "", Category: ""},
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinTerminalWidth, clampWidth(200, errors.New("not a tty")))
	assert.Equal(t, MinTerminalWidth, clampWidth(10, nil))
	assert.Equal(t, 80, clampWidth(80, nil))
	assert.Equal(t, MaxContentWidth, clampWidth(500, nil))
}

func TestHeader_ParamsKeepOrder(t *testing.T) {
	out := NewHeader("MyStore | Shopping Cart", "mystore list",
		Param{Key: "Search", Value: "mug"},
		Param{Key: "Category", Value: "Kitchen"},
		Param{Key: "Sort", Value: "Low to High"},
	).SetWidth(80).Render()

	assert.Contains(t, out, "MYSTORE | SHOPPING CART")
	assert.Contains(t, out, "mystore list")

	search := strings.Index(out, "Search:")
	category := strings.Index(out, "Category:")
	sort := strings.Index(out, "Sort:")
	require.True(t, search >= 0 && category >= 0 && sort >= 0)
	assert.Less(t, search, category)
	assert.Less(t, category, sort)
}

func TestHeader_NoParams(t *testing.T) {
	out := NewHeader("MyStore", "").SetWidth(80).String()
	assert.Contains(t, out, "MYSTORE")
	assert.NotContains(t, out, ":")
}

func TestProductTable_Rows(t *testing.T) {
	table := NewProductTable(sample, "$")
	table.Width = 100
	out := table.Render()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2+len(sample))
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[0], "DESCRIPTION")

	assert.Contains(t, lines[2], "Blue Mug")
	assert.Contains(t, lines[2], "$12")
	assert.Contains(t, lines[3], "$1,234.5")
	assert.Contains(t, lines[3], "12,000")
	assert.Contains(t, lines[4], "$ask", "unparseable price shown as typed")
}

func TestProductTable_WidestValuesFit(t *testing.T) {
	table := NewProductTable(sample, "$")
	table.Width = 100
	lines := strings.Split(table.Render(), "\n")

	for _, h := range []string{"TITLE", "PRICE", "QTY", "CATEGORY", "DESCRIPTION"} {
		assert.Contains(t, lines[0], h)
	}
	assert.Contains(t, lines[3], "Claw Hammer")
	assert.Contains(t, lines[3], "$1,234.50")
	assert.Contains(t, lines[3], "12,000")
	assert.Contains(t, lines[4], "Mystery Box")
	assert.NotContains(t, strings.Join(lines[:4], "\n"), ellipsis)
}

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
	}{
		{"shorter", "Mug", 8},
		{"exact width", "$1,234.50", 9},
		{"empty", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, fit(tt.in, tt.width))
		})
	}

	got := fit("Mystery Mug", 8)
	assert.True(t, strings.HasSuffix(got, ellipsis))
	assert.True(t, strings.HasPrefix(got, "Myster"))
	assert.LessOrEqual(t, len([]rune(got)), 8)
}

func TestProductTable_Empty(t *testing.T) {
	assert.Contains(t, NewProductTable(nil, "$").Render(), "No products match.")
}

func TestProductTable_TruncatesLongDescription(t *testing.T) {
	long := strings.Repeat("word ", 60)
	table := NewProductTable([]inventory.Product{{Title: "A", Description: long}}, "$")
	table.Width = MinTerminalWidth

	out := table.Render()
	assert.Contains(t, out, ellipsis)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), MinTerminalWidth+len(columnGap))
	}
}

func TestProductTable_WrapsLongDescription(t *testing.T) {
	long := strings.Repeat("word ", 60)
	table := NewProductTable([]inventory.Product{{Title: "A", Description: long}}, "$")
	table.Width = MinTerminalWidth
	table.Wrap = true

	lines := strings.Split(table.Render(), "\n")
	assert.Greater(t, len(lines), 3, "continuation lines emitted")
}

func TestSummary(t *testing.T) {
	assert.Contains(t, Summary{Shown: 2, Total: 3}.Render(), "2 of 3 products")
	assert.Contains(t, Summary{Shown: 1, Total: 1}.Render(), "1 of 1 product")
}

func TestPrinter_PrintProducts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).WithWidth(100)

	p.PrintHeader("MyStore", "mystore list", Param{Key: "Sort", Value: "Select"})
	p.PrintProducts(sample[:2], 3, "€", false)

	out := buf.String()
	assert.Contains(t, out, "MYSTORE")
	assert.Contains(t, out, "€12")
	assert.Contains(t, out, "2 of 3 products")
}

func TestPrinter_PrintError(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).WithWidth(80).PrintError("List products", errors.New("bad sort"), "use low-to-high or high-to-low")

	out := buf.String()
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "bad sort")
	assert.Contains(t, out, "use low-to-high")
}

func TestPrinter_PrintYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).PrintYAML(sample))

	var got []inventory.Product
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestPrinter_PrintYAMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).PrintYAML(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestNewPrinter_DefaultsToStdout(t *testing.T) {
	p := NewPrinter(nil)
	assert.NotNil(t, p.out)
	assert.GreaterOrEqual(t, p.Width(), MinTerminalWidth)
}
