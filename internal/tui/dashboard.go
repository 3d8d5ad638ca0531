package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"github.com/muurk/mystore/internal/dashboard"
	"github.com/muurk/mystore/internal/inventory"
	"github.com/muurk/mystore/internal/logging"
)

// DashboardFocus is the part of the dashboard receiving key presses when no
// dialog is open.
type DashboardFocus int

const (
	FocusList DashboardFocus = iota
	FocusSearch
	FocusCategory
)

// toolbarRows is the number of content rows above the product list: the
// search/filter/sort line, the status line and a divider.
const toolbarRows = 3

// Delete dialog buttons, left to right.
const (
	deleteNo = iota
	deleteYes
)

// dashboardKeyMap defines key bindings for the dashboard screen
type dashboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Search   key.Binding
	Category key.Binding
	Sort     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Logout   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Search, k.Sort, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search, k.Category, k.Sort},
		{k.Add, k.Edit, k.Delete, k.Copy},
		{k.Logout, k.Help, k.Quit},
	}
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by price"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "sign out"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DashboardOptions configures a new DashboardModel.
type DashboardOptions struct {
	Store    *inventory.Store
	Username string
	Sort     inventory.SortMode
	Currency string
}

// DashboardModel renders a dashboard.State: the toolbar, a scrolling list of
// product cards and the add, edit and delete dialogs.
type DashboardModel struct {
	state    *dashboard.State
	username string
	currency string

	// Toolbar
	focus    DashboardFocus
	search   textinput.Model
	category textinput.Model

	// Product list
	viewport    viewport.Model
	products    []inventory.Product // Last computed view list
	cursor      int
	selectedID  string
	cardOffsets []int // First viewport line of each card
	cardHeights []int

	// Dialogs
	form         productForm
	deleteCursor int
	showingHelp  bool

	// Feedback
	status string
	err    error

	logoutRequested bool

	// copyText writes to the system clipboard; replaced in tests.
	copyText func(string) error

	Width  int
	Height int

	Help help.Model
	Keys dashboardKeyMap
}

// NewDashboardModel creates the dashboard over opts.Store.
func NewDashboardModel(opts DashboardOptions) DashboardModel {
	state := dashboard.New(opts.Store)
	state.SetSort(opts.Sort)

	search := textinput.New()
	search.Placeholder = "Search products"
	search.Prompt = "⌕ "
	search.CharLimit = 64
	search.Width = 20

	category := textinput.New()
	category.Placeholder = "Enter category to filter"
	category.Prompt = ""
	category.CharLimit = 64
	category.Width = 20
	category.ShowSuggestions = true

	currency := opts.Currency
	if currency == "" {
		currency = "$"
	}

	m := DashboardModel{
		state:    state,
		username: opts.Username,
		currency: currency,
		search:   search,
		category: category,
		viewport: viewport.New(DefaultWidth-4, DefaultHeight-containerChrome-toolbarRows),
		copyText: clipboard.WriteAll,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Help:     help.New(),
		Keys:     newDashboardKeyMap(),
	}
	m.refresh()
	return m
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// State returns the underlying dashboard state.
func (m DashboardModel) State() *dashboard.State {
	return m.state
}

// Products returns the view list as last rendered.
func (m DashboardModel) Products() []inventory.Product {
	return m.products
}

// Selected returns the product under the cursor.
func (m DashboardModel) Selected() (inventory.Product, bool) {
	if m.cursor < 0 || m.cursor >= len(m.products) {
		return inventory.Product{}, false
	}
	return m.products[m.cursor], true
}

// Focus returns which toolbar control or the list has key focus.
func (m DashboardModel) Focus() DashboardFocus {
	return m.focus
}

// Status returns the last informational message.
func (m DashboardModel) Status() string {
	return m.status
}

// Err returns the last operation error shown in the status line.
func (m DashboardModel) Err() error {
	return m.err
}

// LogoutRequested reports whether the user asked to sign out.
func (m DashboardModel) LogoutRequested() bool {
	return m.logoutRequested
}

// SetSize resizes the dashboard and its list viewport.
func (m *DashboardModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.viewport.Width = max(width-4, 10)
	m.viewport.Height = max(height-containerChrome-toolbarRows, 3)
	m.Help.Width = max(width-6, 10)
	m.refresh()
}

// Update handles messages and updates the model
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	// Dialogs take every key while open
	if m.showingHelp {
		return m.updateHelpModal(msg)
	}
	if m.state.Notice() != "" {
		return m.updateNoticeModal(msg)
	}
	switch m.state.Modal().Kind {
	case dashboard.ModalAdd, dashboard.ModalEdit:
		return m.updateFormModal(msg)
	case dashboard.ModalDelete:
		return m.updateDeleteModal(msg)
	}

	switch m.focus {
	case FocusSearch, FocusCategory:
		return m.updateFilterInput(msg)
	default:
		return m.updateNormalMode(msg)
	}
}

// updateNormalMode handles input when the product list has focus
func (m DashboardModel) updateNormalMode(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		m.status = ""
		m.err = nil

		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Up):
			m.moveCursor(-1)

		case key.Matches(msg, m.Keys.Down):
			m.moveCursor(1)

		case key.Matches(msg, m.Keys.Search):
			m.focus = FocusSearch
			return m, m.search.Focus()

		case key.Matches(msg, m.Keys.Category):
			m.focus = FocusCategory
			return m, m.category.Focus()

		case key.Matches(msg, m.Keys.Sort):
			mode := m.state.CycleSort()
			m.status = "Sort by price: " + mode.Label()

		case key.Matches(msg, m.Keys.Add):
			return m.openAdd()

		case key.Matches(msg, m.Keys.Edit):
			return m.openEdit()

		case key.Matches(msg, m.Keys.Delete):
			return m.openDelete()

		case key.Matches(msg, m.Keys.Copy):
			m.copySelected()

		case key.Matches(msg, m.Keys.Logout):
			m.logoutRequested = true
			return m, nil

		case key.Matches(msg, m.Keys.Help):
			m.showingHelp = true
		}
	}

	m.refresh()
	return m, nil
}

// updateFilterInput handles typing into the search or category input. The
// view list is recomputed on every keystroke.
func (m DashboardModel) updateFilterInput(msg tea.Msg) (DashboardModel, tea.Cmd) {
	input := &m.search
	if m.focus == FocusCategory {
		input = &m.category
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc":
			input.Blur()
			m.focus = FocusList
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)

	m.state.SetSearch(m.search.Value())
	m.state.SetCategory(m.category.Value())
	m.refresh()
	return m, cmd
}

func (m DashboardModel) openAdd() (DashboardModel, tea.Cmd) {
	if err := m.state.OpenAdd(); err != nil {
		m.setError(err)
		return m, nil
	}
	m.form = newProductForm(m.state.Form(), m.formInputWidth())
	return m, textinput.Blink
}

func (m DashboardModel) openEdit() (DashboardModel, tea.Cmd) {
	if m.selectedID == "" {
		m.status = "No product selected"
		return m, nil
	}
	if err := m.state.OpenEdit(m.selectedID); err != nil {
		m.setError(err)
		m.refresh()
		return m, nil
	}
	m.form = newProductForm(m.state.Form(), m.formInputWidth())
	return m, textinput.Blink
}

func (m DashboardModel) openDelete() (DashboardModel, tea.Cmd) {
	if m.selectedID == "" {
		m.status = "No product selected"
		return m, nil
	}
	if err := m.state.OpenDelete(m.selectedID); err != nil {
		m.setError(err)
		m.refresh()
		return m, nil
	}
	m.deleteCursor = deleteNo
	return m, nil
}

// updateFormModal handles the add and edit dialogs
func (m DashboardModel) updateFormModal(msg tea.Msg) (DashboardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		cmd := m.form.update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch keyMsg.String() {
	case "esc":
		m.state.Cancel()
		m.refresh()
		return m, nil

	case "ctrl+s":
		return m.confirmForm()

	case "tab":
		cmd = m.form.next()

	case "shift+tab":
		cmd = m.form.prev()

	case "up", "down":
		if m.form.onDescription() {
			cmd = m.form.update(msg)
		} else if keyMsg.String() == "up" {
			cmd = m.form.prev()
		} else {
			cmd = m.form.next()
		}

	case "enter":
		switch {
		case m.form.onSubmit():
			return m.confirmForm()
		case m.form.onDescription():
			cmd = m.form.update(msg)
		default:
			cmd = m.form.next()
		}

	default:
		cmd = m.form.update(msg)
	}

	m.syncForm()
	return m, cmd
}

// syncForm copies the dialog inputs into the state's form buffer.
func (m *DashboardModel) syncForm() {
	for _, f := range inventory.Fields {
		m.state.SetField(f, m.form.value(f))
	}
}

func (m DashboardModel) confirmForm() (DashboardModel, tea.Cmd) {
	m.syncForm()

	switch m.state.Modal().Kind {
	case dashboard.ModalAdd:
		added, err := m.state.ConfirmAdd()
		if err != nil {
			m.setError(err)
			break
		}
		m.selectedID = added.ID
		m.status = "Added " + displayTitle(added)

	case dashboard.ModalEdit:
		if err := m.state.ConfirmEdit(); err != nil {
			m.setError(err)
		}
	}

	m.refresh()
	return m, nil
}

// updateDeleteModal handles the delete confirmation dialog
func (m DashboardModel) updateDeleteModal(msg tea.Msg) (DashboardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "n":
		m.state.Cancel()

	case "left", "h", "right", "l", "tab", "shift+tab":
		m.deleteCursor = 1 - m.deleteCursor

	case "y":
		m.confirmDelete()

	case "enter", " ":
		if m.deleteCursor == deleteYes {
			m.confirmDelete()
		} else {
			m.state.Cancel()
		}
	}

	m.refresh()
	return m, nil
}

func (m *DashboardModel) confirmDelete() {
	removed, err := m.state.ConfirmDelete()
	if err != nil {
		m.setError(err)
		return
	}
	m.status = "Deleted " + displayTitle(removed)
}

// updateNoticeModal handles the blocking message shown after an update.
// Any key dismisses it.
func (m DashboardModel) updateNoticeModal(msg tea.Msg) (DashboardModel, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.state.DismissNotice()
		m.refresh()
	}
	return m, nil
}

// updateHelpModal closes the help dialog on any key.
func (m DashboardModel) updateHelpModal(msg tea.Msg) (DashboardModel, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.showingHelp = false
	}
	return m, nil
}

func (m *DashboardModel) moveCursor(delta int) {
	if len(m.products) == 0 {
		return
	}
	m.cursor = max(0, min(m.cursor+delta, len(m.products)-1))
	m.selectedID = m.products[m.cursor].ID
}

func (m *DashboardModel) copySelected() {
	p, ok := m.Selected()
	if !ok {
		m.status = "No product selected"
		return
	}
	if err := m.copyText(clipboardText(p, m.currency)); err != nil {
		// Missing clipboard tools are an environment problem, not a failed edit
		logging.Warn("Clipboard unavailable", zap.Error(err))
		m.err = fmt.Errorf("copy to clipboard: %w", err)
		return
	}
	m.status = "Copied " + displayTitle(p) + " to clipboard"
}

func (m *DashboardModel) setError(err error) {
	logging.Error("Dashboard operation failed", zap.Error(err))
	m.err = err
}

// refresh recomputes the view list from the store and rebuilds the card
// list. The cursor follows the selected product when it is still visible.
func (m *DashboardModel) refresh() {
	if m.state == nil {
		return
	}
	m.products = m.state.View()
	m.category.SetSuggestions(m.state.Store().Categories())

	if i := indexOfID(m.products, m.selectedID); i >= 0 {
		m.cursor = i
	}
	m.cursor = max(0, min(m.cursor, len(m.products)-1))
	m.selectedID = ""
	if len(m.products) > 0 {
		m.selectedID = m.products[m.cursor].ID
	}

	m.viewport.SetContent(m.renderCards())
	m.ensureCursorVisible()
}

func (m *DashboardModel) ensureCursorVisible() {
	if m.cursor >= len(m.cardOffsets) {
		m.viewport.GotoTop()
		return
	}
	top := m.cardOffsets[m.cursor]
	bottom := top + m.cardHeights[m.cursor]
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func indexOfID(products []inventory.Product, id string) int {
	if id == "" {
		return -1
	}
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (m DashboardModel) formInputWidth() int {
	return SafeModalWidth(ModalWidth, m.Width) - 8
}

// View renders the dashboard or the open dialog
func (m DashboardModel) View() string {
	if m.showingHelp {
		return RenderModal(m.renderHelpModalContent(), m.Width, m.Height)
	}
	if notice := m.state.Notice(); notice != "" {
		return RenderModal(m.renderNoticeModalContent(notice), m.Width, m.Height)
	}
	switch m.state.Modal().Kind {
	case dashboard.ModalAdd:
		return RenderModal(m.renderFormModalContent("Add Product", "Add Product"), m.Width, m.Height)
	case dashboard.ModalEdit:
		return RenderModal(m.renderFormModalContent("Edit Product", "Update Product"), m.Width, m.Height)
	case dashboard.ModalDelete:
		return RenderModal(m.renderDeleteModalContent(), m.Width, m.Height)
	}

	return m.renderDashboard()
}

// renderDashboard renders the main dashboard view using RenderApplicationContainer
func (m DashboardModel) renderDashboard() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderToolbar(),
		m.renderStatusLine(),
		lipgloss.NewStyle().Foreground(BorderColor).Render(strings.Repeat("─", max(m.Width-4, 0))),
		m.viewport.View(),
	)
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}

func (m DashboardModel) renderToolbar() string {
	label := func(text string, focused bool) string {
		if focused {
			return FocusedInputStyle.Render(text)
		}
		return LabelStyle.Render(text)
	}

	sort := m.state.Query().Sort
	sortValue := ValueStyle.Render(sort.Label())
	if sort != inventory.SortNone {
		sortValue = PriceStyle.Render(sort.Label())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.search.View(),
		"   ",
		label("Category: ", m.focus == FocusCategory),
		m.category.View(),
		"   ",
		label("Sort by Price: ", false),
		sortValue,
	)
}

func (m DashboardModel) renderStatusLine() string {
	if m.err != nil {
		return ErrorStyle.Render("✗ " + m.err.Error())
	}
	if m.status != "" {
		return StatusStyle.Render("✓ " + m.status)
	}

	total := m.state.Store().Len()
	line := fmt.Sprintf("%d of %d products", len(m.products), total)
	if m.username != "" {
		line = "Signed in as " + m.username + " • " + line
	}
	return SubtitleStyle.Render(line)
}

// renderCards renders one bordered card per product and records where each
// card starts so the cursor can be kept in view.
func (m *DashboardModel) renderCards() string {
	m.cardOffsets = make([]int, 0, len(m.products))
	m.cardHeights = make([]int, 0, len(m.products))

	if len(m.products) == 0 {
		msg := "No products yet. Press a to add one."
		if !m.state.Query().IsZero() && m.state.Store().Len() > 0 {
			msg = "No products match the current search and filter."
		}
		return SubtitleStyle.Render(msg)
	}

	cardWidth := max(m.viewport.Width-2, 20)
	cards := make([]string, 0, len(m.products))
	line := 0
	for i, p := range m.products {
		card := renderCard(p, m.currency, cardWidth, i == m.cursor)
		h := lipgloss.Height(card)
		m.cardOffsets = append(m.cardOffsets, line)
		m.cardHeights = append(m.cardHeights, h)
		line += h
		cards = append(cards, card)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard renders one product. width is the card's outer width.
func renderCard(p inventory.Product, currency string, width int, selected bool) string {
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	// Border and horizontal padding
	inner := max(width-4, 10)

	title := lipgloss.NewStyle().Foreground(TextColor).Bold(true).Render(displayTitle(p))
	price := PriceStyle.Render(p.DisplayPrice(currency))
	if _, ok := p.PriceValue(); !ok {
		price = HintStyle.Render(p.DisplayPrice(currency))
	}
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(price), 1)
	heading := title + strings.Repeat(" ", gap) + price

	details := LabelStyle.Render("Quantity: ") + ValueStyle.Render(p.DisplayQuantity()) +
		"   " + LabelStyle.Render("Category: ") + ValueStyle.Render(p.Category)

	rows := []string{heading, details}
	if desc := strings.TrimSpace(p.Description); desc != "" {
		rows = append(rows, SubtitleStyle.Render(wordwrap.String(desc, inner)))
	}

	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func displayTitle(p inventory.Product) string {
	if strings.TrimSpace(p.Title) == "" {
		return "(untitled)"
	}
	return p.Title
}

// clipboardText is the plain-text form of a product copied with the Copy key.
func clipboardText(p inventory.Product, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", displayTitle(p))
	fmt.Fprintf(&b, "Price: %s\n", p.DisplayPrice(currency))
	fmt.Fprintf(&b, "Quantity: %s\n", p.DisplayQuantity())
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	fmt.Fprintf(&b, "Description: %s", p.Description)
	return b.String()
}

func (m DashboardModel) renderFormModalContent(title, submitLabel string) string {
	help := lipgloss.NewStyle().Foreground(SubtleColor).
		Render("tab/↓: Next  •  shift+tab/↑: Back  •  ctrl+s: Save  •  esc: Cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderTitle(title),
		"",
		m.form.view(submitLabel),
		"",
		help,
	)
	return ModalStyle(SafeModalWidth(ModalWidth, m.Width), PrimaryColor).Render(content)
}

func (m DashboardModel) renderDeleteModalContent() string {
	target, _ := m.state.Target()

	buttons := lipgloss.JoinHorizontal(lipgloss.Left,
		RenderButton("No", m.deleteCursor == deleteNo, false),
		RenderButton("Yes, Delete", m.deleteCursor == deleteYes, true),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(ErrorColor).Bold(true).Render("Confirm Deletion"),
		"",
		ValueStyle.Render("Are you sure you want to delete this product?"),
		SubtitleStyle.Render(displayTitle(target)),
		"",
		buttons,
		"",
		lipgloss.NewStyle().Foreground(SubtleColor).Render("←/→: Choose  •  Enter: Confirm  •  Esc: No"),
	)
	return ModalStyle(SafeModalWidth(ModalWidth, m.Width), ErrorColor).Render(content)
}

func (m DashboardModel) renderNoticeModalContent(notice string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		PriceStyle.Render("✓ "+notice),
		"",
		lipgloss.NewStyle().Foreground(SubtleColor).Render("Press any key to continue"),
	)
	return ModalStyle(SafeModalWidth(48, m.Width), SecondaryColor).Render(content)
}

func (m DashboardModel) renderHelpModalContent() string {
	subtitle := lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true)

	sorting := lipgloss.JoinVertical(lipgloss.Left,
		subtitle.Render("Searching and sorting:"),
		"  Search matches any part of the title, ignoring case.",
		"  Category must match the whole category, ignoring case.",
		"  Prices that are not numbers sort last in both directions.",
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderTitle("DASHBOARD HELP"),
		"",
		subtitle.Render("Keys:"),
		m.Help.FullHelpView(m.Keys.FullHelp()),
		"",
		sorting,
		"",
		"Press any key to close this help screen",
	)
	return ModalStyle(SafeModalWidth(70, m.Width), PrimaryColor).Render(content)
}
