package ui

import (
	"fmt"
	"strings"
)

// Summary is the one-line footer under a product listing.
type Summary struct {
	Shown int // Products after filtering
	Total int // Products in the store
}

// Render returns e.g. "✓ 2 of 3 products".
func (s Summary) Render() string {
	noun := "products"
	if s.Total == 1 {
		noun = "product"
	}
	return PriceStyle.Render(SuccessMarker) + " " +
		MutedStyle.Render(fmt.Sprintf("%d of %d %s", s.Shown, s.Total, noun))
}

// Failure is an error box with optional hints.
type Failure struct {
	Title string
	Err   error
	Hints []string
	Width int
}

// NewFailure creates a failure box sized to the terminal.
func NewFailure(title string, err error, hints ...string) *Failure {
	return &Failure{
		Title: title,
		Err:   err,
		Hints: hints,
		Width: GetTerminalWidth(),
	}
}

// Render returns the styled error box as a string
func (f *Failure) Render() string {
	lines := []string{
		"",
		ErrorTitleStyle.Render(FailureMarker + "  FAILED  ─  " + f.Title),
		"",
	}

	if f.Err != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+f.Err.Error()), "")
	}

	if len(f.Hints) > 0 {
		for _, hint := range f.Hints {
			lines = append(lines, MutedStyle.Render("• "+hint))
		}
		lines = append(lines, "")
	}

	return ErrorBoxStyle(max(f.Width, MinTerminalWidth)).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (f *Failure) String() string {
	return f.Render()
}
