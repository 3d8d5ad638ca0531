package ui

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/muurk/mystore/internal/inventory"
)

// Printer writes one-shot command output. It is what `mystore list` uses
// instead of the interactive program.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// WithWidth overrides the detected terminal width.
func (p *Printer) WithWidth(width int) *Printer {
	p.width = width
	return p
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	h := NewHeader(title, command, params...).SetWidth(p.width)
	p.Println(h.Render())
}

// PrintProducts prints the product table followed by a count summary.
func (p *Printer) PrintProducts(products []inventory.Product, total int, currency string, wrap bool) {
	t := NewProductTable(products, currency)
	t.Width = p.width
	t.Wrap = wrap
	p.Println(t.Render())
	p.Newline()
	p.Println(Summary{Shown: len(products), Total: total}.Render())
}

// PrintError prints an error box with hints
func (p *Printer) PrintError(title string, err error, hints ...string) {
	f := NewFailure(title, err, hints...)
	f.Width = p.width
	p.Println(f.Render())
}

// PrintYAML writes products as a YAML sequence with no styling, for piping
// into other tools.
func (p *Printer) PrintYAML(products []inventory.Product) error {
	if products == nil {
		products = []inventory.Product{}
	}
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(products); err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	return enc.Close()
}
