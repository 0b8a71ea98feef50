package components

import (
	"testing"

	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/fxrdhan/bookshelf/internal/tui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid() ShelfGrid {
	g := NewShelfGrid(2, domain.ViewModeGrid, styles.Dark())
	g.SetBooks([]domain.Book{
		{ID: "a", Title: "Bumi"},
		{ID: "b", Title: "Moon"},
		{ID: "c", Title: "Matahari"},
		{ID: "d", Title: "Nebula"},
	})
	return g
}

func TestSelectJumpsBackward(t *testing.T) {
	g := testGrid()
	g.MoveRight()
	g.MoveRight()
	g.MoveRight()

	sel, ok := g.Selected()
	require.True(t, ok)
	require.Equal(t, "d", sel.ID)

	// The target sits before the cursor
	require.True(t, g.Select("a"))
	sel, ok = g.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.ID)
}

func TestSelectUnknownIDKeepsCursor(t *testing.T) {
	g := testGrid()
	g.MoveRight()

	assert.False(t, g.Select("ghost"))
	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", sel.ID)
}

func TestSetBooksClampsCursor(t *testing.T) {
	g := testGrid()
	g.MoveDown()
	g.MoveRight() // cursor on the last book

	g.SetBooks([]domain.Book{{ID: "a", Title: "Bumi"}})
	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.ID)

	g.SetBooks(nil)
	_, ok = g.Selected()
	assert.False(t, ok)
}
