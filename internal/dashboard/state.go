// Package dashboard holds the dashboard's state transitions independently of
// any renderer.
//
// A State owns the product store, the search/filter/sort query, the single
// form buffer shared by the add and edit dialogs, and the open dialog. The
// dialog is one tagged value, so at most one of add, edit and delete is open
// at a time. View recomputes the filter/sort pipeline from the current store
// every time it is called; the TUI calls it once per render and tests call
// it directly.
package dashboard

import (
	"errors"
	"fmt"

	"github.com/muurk/mystore/internal/inventory"
	"github.com/muurk/mystore/internal/logging"
)

var (
	// ErrModalOpen is returned when opening a dialog while another is open.
	ErrModalOpen = errors.New("another dialog is already open")
	// ErrNoModal is returned when confirming a dialog that is not open.
	ErrNoModal = errors.New("dialog is not open")
)

// UpdateNotice is shown after an edit is saved.
const UpdateNotice = "Product Updated Successfully!"

// ModalKind identifies which dialog is open.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalAdd
	ModalEdit
	ModalDelete
)

func (k ModalKind) String() string {
	switch k {
	case ModalAdd:
		return "add"
	case ModalEdit:
		return "edit"
	case ModalDelete:
		return "delete"
	default:
		return "none"
	}
}

// Modal is the open dialog. ID is set for edit and delete.
type Modal struct {
	Kind ModalKind
	ID   string
}

// IsOpen reports whether any dialog is open.
func (m Modal) IsOpen() bool {
	return m.Kind != ModalNone
}

// State is the dashboard's state. It is not safe for concurrent use; the
// TUI drives it from its update loop.
type State struct {
	store  *inventory.Store
	query  inventory.Query
	form   inventory.Product
	modal  Modal
	notice string
}

// New creates a dashboard over store.
func New(store *inventory.Store) *State {
	if store == nil {
		store = inventory.NewStore()
	}
	return &State{store: store}
}

// Store returns the underlying product store.
func (s *State) Store() *inventory.Store { return s.store }

// Query returns the current search/filter/sort inputs.
func (s *State) Query() inventory.Query { return s.query }

// SetSearch sets the title search term.
func (s *State) SetSearch(term string) { s.query.Search = term }

// SetCategory sets the category filter. Empty disables it.
func (s *State) SetCategory(category string) { s.query.Category = category }

// SetSort sets the price sort mode.
func (s *State) SetSort(mode inventory.SortMode) { s.query.Sort = mode }

// CycleSort advances the sort mode and returns the new one.
func (s *State) CycleSort() inventory.SortMode {
	s.query.Sort = s.query.Sort.Next()
	return s.query.Sort
}

// Modal returns the open dialog.
func (s *State) Modal() Modal { return s.modal }

// Form returns the form buffer.
func (s *State) Form() inventory.Product { return s.form }

// Notice returns the pending confirmation message, if any.
func (s *State) Notice() string { return s.notice }

// DismissNotice clears the confirmation message.
func (s *State) DismissNotice() { s.notice = "" }

// MissingFields returns the blank required fields of the form buffer.
func (s *State) MissingFields() []inventory.Field { return s.form.MissingFields() }

// SetField writes one field of the form buffer.
func (s *State) SetField(f inventory.Field, value string) {
	s.form = s.form.Set(f, value)
}

// View returns the filtered and sorted list for the current query.
func (s *State) View() []inventory.Product {
	all := s.store.All()
	view := inventory.Apply(all, s.query)
	logging.LogViewRecompute(s.query.Search, s.query.Category, s.query.Sort.Label(), len(all), len(view))
	return view
}

// Target returns the record the open edit or delete dialog refers to.
func (s *State) Target() (inventory.Product, bool) {
	if s.modal.ID == "" {
		return inventory.Product{}, false
	}
	return s.store.Get(s.modal.ID)
}

// OpenAdd opens the add dialog with an empty form buffer.
func (s *State) OpenAdd() error {
	if s.modal.IsOpen() {
		return ErrModalOpen
	}
	s.form = inventory.Product{}
	s.modal = Modal{Kind: ModalAdd}
	return nil
}

// ConfirmAdd appends the form buffer to the store, clears the buffer and
// closes the dialog. Blank fields are allowed.
func (s *State) ConfirmAdd() (inventory.Product, error) {
	if s.modal.Kind != ModalAdd {
		return inventory.Product{}, fmt.Errorf("confirm add: %w", ErrNoModal)
	}
	added := s.store.Add(s.form)
	s.form = inventory.Product{}
	s.modal = Modal{}
	return added, nil
}

// OpenEdit loads the record with id into the form buffer and opens the edit
// dialog.
func (s *State) OpenEdit(id string) error {
	if s.modal.IsOpen() {
		return ErrModalOpen
	}
	p, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("open edit: %w", inventory.ErrNotFound)
	}
	s.form = p
	s.modal = Modal{Kind: ModalEdit, ID: id}
	return nil
}

// ConfirmEdit writes the form buffer back to the record under edit, closes
// the dialog and sets UpdateNotice.
func (s *State) ConfirmEdit() error {
	if s.modal.Kind != ModalEdit {
		return fmt.Errorf("confirm edit: %w", ErrNoModal)
	}
	id := s.modal.ID
	form := s.form
	s.form = inventory.Product{}
	s.modal = Modal{}

	if err := s.store.Update(id, form); err != nil {
		return fmt.Errorf("confirm edit: %w", err)
	}
	s.notice = UpdateNotice
	return nil
}

// OpenDelete opens the delete confirmation for the record with id.
func (s *State) OpenDelete(id string) error {
	if s.modal.IsOpen() {
		return ErrModalOpen
	}
	if _, ok := s.store.Get(id); !ok {
		return fmt.Errorf("open delete: %w", inventory.ErrNotFound)
	}
	s.modal = Modal{Kind: ModalDelete, ID: id}
	return nil
}

// ConfirmDelete removes the record under confirmation and closes the dialog.
func (s *State) ConfirmDelete() (inventory.Product, error) {
	if s.modal.Kind != ModalDelete {
		return inventory.Product{}, fmt.Errorf("confirm delete: %w", ErrNoModal)
	}
	id := s.modal.ID
	s.modal = Modal{}

	removed, err := s.store.Remove(id)
	if err != nil {
		return inventory.Product{}, fmt.Errorf("confirm delete: %w", err)
	}
	return removed, nil
}

// Cancel closes any open dialog and discards the form buffer.
func (s *State) Cancel() {
	s.modal = Modal{}
	s.form = inventory.Product{}
}
