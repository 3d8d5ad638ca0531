package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/mystore/internal/inventory"
)

func newState(products ...inventory.Product) *State {
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
	return New(inventory.NewStore(inventory.WithIDFunc(ids), inventory.WithSeed(products...)))
}

func fillForm(s *State, p inventory.Product) {
	for _, f := range inventory.Fields {
		s.SetField(f, p.Get(f))
	}
}

func TestNew_NilStore(t *testing.T) {
	s := New(nil)
	require.NotNil(t, s.Store())
	assert.Empty(t, s.View())
}

func TestAddFlow(t *testing.T) {
	s := newState(inventory.Product{Title: "A"})

	require.NoError(t, s.OpenAdd())
	assert.Equal(t, Modal{Kind: ModalAdd}, s.Modal())

	fillForm(s, inventory.Product{Title: "Mug", Price: "4", Quantity: "10", Category: "Kitchen", Description: "Blue"})
	added, err := s.ConfirmAdd()
	require.NoError(t, err)

	assert.Equal(t, "Mug", added.Title)
	assert.Equal(t, 2, s.Store().Len())
	all := s.Store().All()
	assert.Equal(t, added, all[len(all)-1])

	assert.False(t, s.Modal().IsOpen())
	assert.Equal(t, inventory.Product{}, s.Form(), "buffer reset after add")
}

func TestAddFlow_BlankFieldsAllowed(t *testing.T) {
	s := newState()

	require.NoError(t, s.OpenAdd())
	assert.Len(t, s.MissingFields(), len(inventory.Fields))

	_, err := s.ConfirmAdd()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Store().Len())
}

func TestAddFlow_CancelDiscardsBuffer(t *testing.T) {
	s := newState()

	require.NoError(t, s.OpenAdd())
	s.SetField(inventory.FieldTitle, "draft")
	s.Cancel()

	assert.False(t, s.Modal().IsOpen())
	assert.Equal(t, inventory.Product{}, s.Form())
	assert.Equal(t, 0, s.Store().Len())
}

func TestOpenAdd_ClearsLeftoverBuffer(t *testing.T) {
	s := newState()
	s.SetField(inventory.FieldTitle, "leftover")

	require.NoError(t, s.OpenAdd())
	assert.Empty(t, s.Form().Title)
}

func TestEditFlow(t *testing.T) {
	s := newState(
		inventory.Product{Title: "A", Price: "10"},
		inventory.Product{Title: "B", Price: "5"},
	)

	require.NoError(t, s.OpenEdit("p2"))
	assert.Equal(t, Modal{Kind: ModalEdit, ID: "p2"}, s.Modal())
	assert.Equal(t, "B", s.Form().Title, "record loaded into buffer")

	target, ok := s.Target()
	require.True(t, ok)
	assert.Equal(t, "B", target.Title)

	s.SetField(inventory.FieldPrice, "7")
	require.NoError(t, s.ConfirmEdit())

	assert.Equal(t, UpdateNotice, s.Notice())
	assert.False(t, s.Modal().IsOpen())
	assert.Equal(t, 2, s.Store().Len())

	all := s.Store().All()
	assert.Equal(t, inventory.Product{ID: "p1", Title: "A", Price: "10"}, all[0], "other records untouched")
	assert.Equal(t, "7", all[1].Price)
	assert.Equal(t, "p2", all[1].ID)

	s.DismissNotice()
	assert.Empty(t, s.Notice())
}

func TestEditFlow_CancelLeavesStore(t *testing.T) {
	s := newState(inventory.Product{Title: "A"})

	require.NoError(t, s.OpenEdit("p1"))
	s.SetField(inventory.FieldTitle, "changed")
	s.Cancel()

	assert.Equal(t, "A", s.Store().All()[0].Title)
	assert.Empty(t, s.Notice())
}

func TestEditTargetsRecordNotViewPosition(t *testing.T) {
	s := newState(
		inventory.Product{Title: "A", Price: "10"},
		inventory.Product{Title: "B", Price: "5"},
	)
	s.SetSort(inventory.SortAsc)

	view := s.View()
	require.Equal(t, "B", view[0].Title)

	require.NoError(t, s.OpenEdit(view[0].ID))
	s.SetField(inventory.FieldTitle, "B-edited")
	require.NoError(t, s.ConfirmEdit())

	all := s.Store().All()
	assert.Equal(t, "A", all[0].Title)
	assert.Equal(t, "B-edited", all[1].Title)
}

func TestDeleteFlow(t *testing.T) {
	s := newState(
		inventory.Product{Title: "A"},
		inventory.Product{Title: "B"},
		inventory.Product{Title: "C"},
	)

	require.NoError(t, s.OpenDelete("p2"))
	assert.Equal(t, ModalDelete, s.Modal().Kind)

	removed, err := s.ConfirmDelete()
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Title)
	assert.Equal(t, 2, s.Store().Len())
	for _, p := range s.Store().All() {
		assert.NotEqual(t, "B", p.Title)
	}
	assert.False(t, s.Modal().IsOpen())
}

func TestDeleteFlow_NoIsPureCancel(t *testing.T) {
	s := newState(inventory.Product{Title: "A"})

	require.NoError(t, s.OpenDelete("p1"))
	s.Cancel()

	assert.Equal(t, 1, s.Store().Len())
	assert.False(t, s.Modal().IsOpen())
}

func TestDeleteFromFilteredView(t *testing.T) {
	s := newState(
		inventory.Product{Title: "Hammer", Category: "Tools"},
		inventory.Product{Title: "Mug", Category: "Kitchen"},
		inventory.Product{Title: "Saw", Category: "Tools"},
	)
	s.SetCategory("tools")

	view := s.View()
	require.Len(t, view, 2)
	require.NoError(t, s.OpenDelete(view[1].ID))
	_, err := s.ConfirmDelete()
	require.NoError(t, err)

	s.SetCategory("")
	got := make([]string, 0)
	for _, p := range s.View() {
		got = append(got, p.Title)
	}
	assert.Equal(t, []string{"Hammer", "Mug"}, got)
}

func TestModalsAreMutuallyExclusive(t *testing.T) {
	s := newState(inventory.Product{Title: "A"})

	require.NoError(t, s.OpenAdd())
	assert.ErrorIs(t, s.OpenEdit("p1"), ErrModalOpen)
	assert.ErrorIs(t, s.OpenDelete("p1"), ErrModalOpen)
	assert.ErrorIs(t, s.OpenAdd(), ErrModalOpen)
	assert.Equal(t, ModalAdd, s.Modal().Kind)
}

func TestConfirmWithoutOpenModal(t *testing.T) {
	s := newState(inventory.Product{Title: "A"})

	_, err := s.ConfirmAdd()
	assert.ErrorIs(t, err, ErrNoModal)
	assert.ErrorIs(t, s.ConfirmEdit(), ErrNoModal)
	_, err = s.ConfirmDelete()
	assert.ErrorIs(t, err, ErrNoModal)

	require.NoError(t, s.OpenDelete("p1"))
	assert.ErrorIs(t, s.ConfirmEdit(), ErrNoModal, "wrong dialog")
	assert.Equal(t, 1, s.Store().Len())
}

func TestOpenUnknownRecord(t *testing.T) {
	s := newState()

	assert.ErrorIs(t, s.OpenEdit("missing"), inventory.ErrNotFound)
	assert.ErrorIs(t, s.OpenDelete("missing"), inventory.ErrNotFound)
	assert.False(t, s.Modal().IsOpen())
}

func TestConfirmAfterRecordVanished(t *testing.T) {
	s := newState(inventory.Product{Title: "A"})

	require.NoError(t, s.OpenEdit("p1"))
	_, err := s.Store().Remove("p1")
	require.NoError(t, err)

	err = s.ConfirmEdit()
	assert.ErrorIs(t, err, inventory.ErrNotFound)
	assert.False(t, s.Modal().IsOpen())
	assert.Empty(t, s.Notice())
}

func TestQuerySetters(t *testing.T) {
	s := newState()

	s.SetSearch("mug")
	s.SetCategory("Kitchen")
	assert.Equal(t, inventory.SortAsc, s.CycleSort())
	assert.Equal(t, inventory.SortDesc, s.CycleSort())

	assert.Equal(t, inventory.Query{Search: "mug", Category: "Kitchen", Sort: inventory.SortDesc}, s.Query())
}

func TestView_RecomputedAfterMutation(t *testing.T) {
	s := newState(inventory.Product{Title: "A", Price: "10", Category: "X"})
	s.SetSort(inventory.SortAsc)
	assert.Len(t, s.View(), 1)

	require.NoError(t, s.OpenAdd())
	fillForm(s, inventory.Product{Title: "B", Price: "5", Category: "Y"})
	_, err := s.ConfirmAdd()
	require.NoError(t, err)

	view := s.View()
	require.Len(t, view, 2)
	assert.Equal(t, "B", view[0].Title)
	assert.Equal(t, "A", view[1].Title)
}

func TestModalKindString(t *testing.T) {
	assert.Equal(t, "none", ModalNone.String())
	assert.Equal(t, "add", ModalAdd.String())
	assert.Equal(t, "edit", ModalEdit.String())
	assert.Equal(t, "delete", ModalDelete.String())
}
