// Package tui implements the interactive terminal interface for mystore.
//
// Built on Bubble Tea, it follows the Elm architecture: AppModel coordinates
// three screens and each screen model owns its own Update and View.
//
// # Screens and routes
//
// The screens are addressed by route path so the CLI can start anywhere:
//
//	/           Login      username and password, not checked
//	/dashboard  Dashboard  the product list and its dialogs
//	anything    NotFound   a 404 page with a way back to Login
//
// ScreenForPath does the lookup. Matching ignores case and a trailing slash.
//
// # Dashboard
//
// DashboardModel is a renderer over dashboard.State. Every key press
// mutates the state and then recomputes the view list, so what is on
// screen always reflects the store, query and open dialog. Products are
// addressed by ID, which keeps edit and delete on the right record while
// the list is filtered or sorted.
//
// Dialogs (add, edit, delete, the update notice and help) are drawn with
// RenderModal and take every key while open. Only one is open at a time.
//
// # Framework Components
//
//   - bubbles/textinput: login fields, search, category filter, form fields
//   - bubbles/textarea: product description
//   - bubbles/viewport: scrolling product cards
//   - bubbles/help and bubbles/key: footer and help dialog
//   - lipgloss: styling and layout
//   - muesli/reflow: word-wrapped descriptions
//   - atotto/clipboard: copying the selected product
//
// # Usage Example
//
//	app := tui.NewAppModel(tui.Options{
//	    StartPath: "/dashboard",
//	    Store:     inventory.NewStore(inventory.WithSeed(settings.Seed...)),
//	})
//	program := tea.NewProgram(app, tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
package tui
