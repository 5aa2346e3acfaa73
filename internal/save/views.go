package save

import (
	"github.com/retroenv/bndata/internal/rom"
)

// Chip is a chip placed in a folder.
type Chip struct {
	ID   int
	Code byte
}

// ChipsView reads the chip folders.
type ChipsView interface {
	NumFolders() int
	ChipsPerFolder() int
	EquippedFolderIndex() int
	// RegularChipIndex returns false when the folder has no regular chip.
	RegularChipIndex(folder int) (int, bool)
	// Chip returns false for out of range indexes and empty slots.
	Chip(folder, index int) (Chip, bool)
}

// ChipsViewMut edits the chip folders.
type ChipsViewMut interface {
	SetEquippedFolderIndex(folder int) bool
	SetRegularChipIndex(folder int, index int, ok bool) bool
	SetChip(folder, index int, chip Chip) bool
}

// NavicustPart is a part placed on the navicust grid.
type NavicustPart struct {
	ID         int
	Variant    int
	Col        int
	Row        int
	Rot        int
	Compressed bool
}

// NavicustView reads the navicust placement data.
type NavicustView interface {
	Width() int
	Height() int
	Count() int
	// NavicustPart returns false for out of range and empty slots.
	NavicustPart(i int) (NavicustPart, bool)
	// Precomposed returns the composition cache stored in the save.
	Precomposed() (Grid, bool)
}

// NavicustViewMut edits the navicust placement data.
type NavicustViewMut interface {
	SetNavicustPart(i int, part NavicustPart, ok bool) bool
}

// Grid is a dense navicust composition: every cell holds the index of the
// placed part covering it, or -1.
type Grid struct {
	Width  int
	Height int
	Cells  []int
}

// NewGrid returns an empty grid.
func NewGrid(width, height int) Grid {
	cells := make([]int, width*height)
	for i := range cells {
		cells[i] = -1
	}
	return Grid{Width: width, Height: height, Cells: cells}
}

// At returns the part index at the cell, or -1.
func (g Grid) At(row, col int) int {
	return g.Cells[row*g.Width+col]
}

// Set stores a part index at the cell.
func (g Grid) Set(row, col, v int) {
	g.Cells[row*g.Width+col] = v
}

// PatchCard is an installed patch card (mod card).
type PatchCard struct {
	ID      int
	Enabled bool
}

// PatchCardsView reads the installed patch cards.
type PatchCardsView interface {
	NumSlots() int
	PatchCard(slot int) (PatchCard, bool)
}

// PatchCardsViewMut edits the installed patch cards.
type PatchCardsViewMut interface {
	SetPatchCard(slot int, card PatchCard, ok bool) bool
}

// AutoBattleDataView reads the chip usage statistics.
type AutoBattleDataView interface {
	NumChips() int
	ChipUseCount(id int) (int, bool)
	SecondaryChipUseCount(id int) (int, bool)
	// Materialized returns the selection cache stored in the save.
	Materialized() []int
}

// AutoBattleDataViewMut edits the chip usage statistics.
type AutoBattleDataViewMut interface {
	SetChipUseCount(id, count int) bool
	SetSecondaryChipUseCount(id, count int) bool
}

// Save is the surface a decoded save offers to hosts. Views a format does not
// have are nil.
type Save interface {
	Buffer() *Buffer
	ChipsView() ChipsView
	NavicustView() NavicustView
	PatchCardsView() PatchCardsView
	AutoBattleDataView() AutoBattleDataView
	// Rebuild recomputes every derived field and then the checksum.
	Rebuild(assets rom.Assets)
	// ComputeChecksum returns the checksum the game expects for the current contents.
	ComputeChecksum() uint32
}
