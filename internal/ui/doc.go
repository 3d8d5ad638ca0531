// Package ui renders non-interactive terminal output for mystore commands.
//
// The interactive dashboard lives in package tui. This package covers the
// "print and exit" commands such as `mystore list`, which show the same
// filtered and sorted view without taking over the terminal.
//
// # Components
//
//   - Header: banner with the command and its query parameters
//   - ProductTable: aligned product rows, truncated or wrapped to width
//   - Summary: "N of M products" footer
//   - Failure: error box with hints
//
// Printer ties these together and also writes plain YAML when the output is
// meant for another program.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("MyStore | Shopping Cart", "mystore list",
//	    ui.Param{Key: "Search", Value: "mug"},
//	    ui.Param{Key: "Sort", Value: "Low to High"},
//	)
//	p.PrintProducts(view, store.Len(), "$", false)
//
// Logging is controlled separately through MYSTORE_LOG_LEVEL and goes to a
// file, so it never interleaves with this output.
package ui
