package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/mystore/internal/inventory"
)

// productForm is the add/edit dialog body. Title, price, quantity and
// category are single-line inputs; the description is a textarea. Focus
// runs over the fields in inventory.Fields order, then the submit button.
type productForm struct {
	inputs      [inventory.FieldDescription]textinput.Model // Indexed by field
	description textarea.Model
	focus       int
}

// submitFocus is the focus index of the submit button.
var submitFocus = len(inventory.Fields)

func newProductForm(p inventory.Product, width int) productForm {
	var f productForm

	for field := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = inventory.Field(field).Placeholder()
		in.Width = width
		in.SetValue(p.Get(inventory.Field(field)))
		f.inputs[field] = in
	}

	f.description = textarea.New()
	f.description.Placeholder = inventory.FieldDescription.Placeholder()
	f.description.ShowLineNumbers = false
	f.description.SetWidth(width)
	f.description.SetHeight(3)
	f.description.SetValue(p.Description)

	f.setFocus(0)
	return f
}

// field returns the field under focus and whether focus is on a field rather
// than the submit button.
func (f *productForm) field() (inventory.Field, bool) {
	if f.focus < 0 || f.focus >= len(inventory.Fields) {
		return 0, false
	}
	return inventory.Fields[f.focus], true
}

func (f *productForm) setFocus(i int) tea.Cmd {
	if field, ok := f.field(); ok {
		if field == inventory.FieldDescription {
			f.description.Blur()
		} else {
			f.inputs[field].Blur()
		}
	}

	f.focus = (i + submitFocus + 1) % (submitFocus + 1)

	field, ok := f.field()
	if !ok {
		return nil
	}
	if field == inventory.FieldDescription {
		return f.description.Focus()
	}
	return f.inputs[field].Focus()
}

func (f *productForm) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *productForm) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// onSubmit reports whether focus is on the submit button.
func (f *productForm) onSubmit() bool { return f.focus == submitFocus }

// onDescription reports whether the textarea has focus. Enter inserts a
// newline there instead of moving on.
func (f *productForm) onDescription() bool {
	field, ok := f.field()
	return ok && field == inventory.FieldDescription
}

// update forwards msg to the focused component.
func (f *productForm) update(msg tea.Msg) tea.Cmd {
	field, ok := f.field()
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	if field == inventory.FieldDescription {
		f.description, cmd = f.description.Update(msg)
		return cmd
	}
	f.inputs[field], cmd = f.inputs[field].Update(msg)
	return cmd
}

// value returns the current text of one field.
func (f *productForm) value(field inventory.Field) string {
	if field == inventory.FieldDescription {
		return f.description.Value()
	}
	if field < 0 || int(field) >= len(f.inputs) {
		return ""
	}
	return f.inputs[field].Value()
}

// product returns the form contents as a record.
func (f *productForm) product() inventory.Product {
	var p inventory.Product
	for _, field := range inventory.Fields {
		p = p.Set(field, f.value(field))
	}
	return p
}

// view renders the labelled fields and the submit button. Required fields
// that are still blank get a red marker; numeric fields that do not parse
// get a hint that they will sort last.
func (f *productForm) view(submitLabel string) string {
	missing := make(map[inventory.Field]bool)
	for _, field := range f.product().MissingFields() {
		missing[field] = true
	}

	rows := make([]string, 0, len(inventory.Fields)*2+1)
	for i, field := range inventory.Fields {
		labelStyle := BlurredInputStyle
		if f.focus == i {
			labelStyle = FocusedInputStyle
		}
		label := labelStyle.Render(field.Label())
		if missing[field] {
			label += " " + RequiredStyle.Render("*")
		} else if field.Numeric() && !isNumber(f.value(field)) {
			label += " " + HintStyle.Render("not a number")
		}

		var input string
		if field == inventory.FieldDescription {
			input = f.description.View()
		} else {
			input = f.inputs[field].View()
		}
		rows = append(rows, label, "  "+input)
	}

	rows = append(rows, "", RenderButton(submitLabel, f.onSubmit(), false))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func isNumber(s string) bool {
	_, ok := inventory.ParsePrice(s)
	return ok
}
