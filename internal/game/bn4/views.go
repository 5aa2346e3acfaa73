package bn4

import (
	"bytes"

	"github.com/retroenv/bndata/internal/abd"
	"github.com/retroenv/bndata/internal/save"
)

const (
	equippedFolderOffset = 0x2132
	regularChipOffset    = 0x214d
	folderOffset         = 0x262c
	chipsPerFolder       = 30

	navicustWidth     = 5
	navicustHeight    = 5
	navicustCount     = 25
	navicustOffset    = 0x4564
	navicustEntrySize = 8
	precomposedOffset = 0x4540
	precomposedSize   = 0x24

	patchCardsOffset        = 0x464c
	patchCardsDisabledDelta = 7
	numPatchCardSlots       = 6
	patchCardEmpty          = 0x85

	numAutoBattleDataChips  = 350
	chipUseCountOffset      = 0x6f50
	secondaryUseCountOffset = 0x1bb0
	materializedOffset      = 0x5064
	materializedEmpty       = 0xffff
	maxChipUseCount         = 0xffff
	maxChipID               = 0x1ff
	chipCodeShift           = 9
)

// ChipCodes lists the chip codes by their index in the save.
var ChipCodes = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ*")

// ChipsView returns the chip folder view.
func (s *Save) ChipsView() save.ChipsView {
	return &chipsView{s: s}
}

// ChipsViewMut returns the editable chip folder view.
func (s *Save) ChipsViewMut() save.ChipsViewMut {
	return &chipsView{s: s}
}

type chipsView struct {
	s *Save
}

func (v *chipsView) NumFolders() int {
	return v.s.config.NumFolders
}

func (v *chipsView) ChipsPerFolder() int {
	return chipsPerFolder
}

func (v *chipsView) EquippedFolderIndex() int {
	return int(v.s.buf.U8(equippedFolderOffset))
}

func (v *chipsView) RegularChipIndex(folder int) (int, bool) {
	if folder < 0 || folder >= v.NumFolders() {
		return 0, false
	}
	idx := v.s.buf.U8(regularChipOffset + folder)
	if idx >= chipsPerFolder {
		return 0, false
	}
	return int(idx), true
}

func (v *chipsView) Chip(folder, index int) (save.Chip, bool) {
	if folder < 0 || folder >= v.NumFolders() || index < 0 || index >= chipsPerFolder {
		return save.Chip{}, false
	}

	raw := v.s.buf.U16(chipOffset(folder, index))
	code := int(raw >> chipCodeShift)
	if code >= len(ChipCodes) {
		return save.Chip{}, false
	}
	return save.Chip{
		ID:   int(raw & maxChipID),
		Code: ChipCodes[code],
	}, true
}

func (v *chipsView) SetEquippedFolderIndex(folder int) bool {
	if folder < 0 || folder >= v.NumFolders() {
		return false
	}
	v.s.buf.SetU8(equippedFolderOffset, byte(folder))
	return true
}

func (v *chipsView) SetRegularChipIndex(folder, index int, ok bool) bool {
	if folder < 0 || folder >= v.NumFolders() {
		return false
	}
	if !ok {
		v.s.buf.SetU8(regularChipOffset+folder, 0xff)
		return true
	}
	if index < 0 || index >= chipsPerFolder {
		return false
	}
	v.s.buf.SetU8(regularChipOffset+folder, byte(index))
	return true
}

func (v *chipsView) SetChip(folder, index int, chip save.Chip) bool {
	if folder < 0 || folder >= v.NumFolders() || index < 0 || index >= chipsPerFolder {
		return false
	}
	code := bytes.IndexByte(ChipCodes, chip.Code)
	if code < 0 || chip.ID < 0 || chip.ID > maxChipID {
		return false
	}
	v.s.buf.SetU16(chipOffset(folder, index), uint16(chip.ID)|uint16(code)<<chipCodeShift)
	return true
}

func chipOffset(folder, index int) int {
	return folderOffset + folder*chipsPerFolder*2 + index*2
}

// NavicustView returns the navicust view.
func (s *Save) NavicustView() save.NavicustView {
	return &navicustView{s: s}
}

// NavicustViewMut returns the editable navicust view.
func (s *Save) NavicustViewMut() save.NavicustViewMut {
	return &navicustView{s: s}
}

type navicustView struct {
	s *Save
}

func (v *navicustView) Width() int {
	return navicustWidth
}

func (v *navicustView) Height() int {
	return navicustHeight
}

func (v *navicustView) Count() int {
	return navicustCount
}

func (v *navicustView) NavicustPart(i int) (save.NavicustPart, bool) {
	if i < 0 || i >= v.Count() {
		return save.NavicustPart{}, false
	}

	buf := v.s.buf.Region(navicustOffset+i*navicustEntrySize, navicustEntrySize)
	raw := buf[0]
	if raw == 0 {
		return save.NavicustPart{}, false
	}
	return save.NavicustPart{
		ID:         int(raw / 4),
		Variant:    int(raw % 4),
		Col:        int(buf[2]),
		Row:        int(buf[3]),
		Rot:        int(buf[4]),
		Compressed: buf[5] != 0,
	}, true
}

func (v *navicustView) Precomposed() (save.Grid, bool) {
	grid := save.NewGrid(navicustWidth, navicustHeight)
	raw := v.s.buf.Region(precomposedOffset, navicustWidth*navicustHeight)
	for i, b := range raw {
		grid.Cells[i] = int(b) - 1
	}
	return grid, true
}

func (v *navicustView) SetNavicustPart(i int, part save.NavicustPart, ok bool) bool {
	if i < 0 || i >= v.Count() {
		return false
	}
	buf := v.s.buf.Region(navicustOffset+i*navicustEntrySize, navicustEntrySize)
	if !ok {
		for j := range buf {
			buf[j] = 0
		}
		return true
	}

	raw := part.ID*4 + part.Variant
	if part.Variant < 0 || part.Variant >= 4 || raw <= 0 || raw > 0xff ||
		part.Col < 0 || part.Col > 0xff || part.Row < 0 || part.Row > 0xff || part.Rot < 0 || part.Rot > 3 {
		return false
	}
	buf[0] = byte(raw)
	buf[2] = byte(part.Col)
	buf[3] = byte(part.Row)
	buf[4] = byte(part.Rot)
	buf[5] = 0
	if part.Compressed {
		buf[5] = 1
	}
	return true
}

// PatchCardsView returns the installed patch card view.
func (s *Save) PatchCardsView() save.PatchCardsView {
	return &patchCardsView{s: s}
}

// PatchCardsViewMut returns the editable patch card view.
func (s *Save) PatchCardsViewMut() save.PatchCardsViewMut {
	return &patchCardsView{s: s}
}

type patchCardsView struct {
	s *Save
}

func (v *patchCardsView) NumSlots() int {
	return numPatchCardSlots
}

func (v *patchCardsView) PatchCard(slot int) (save.PatchCard, bool) {
	if slot < 0 || slot >= v.NumSlots() {
		return save.PatchCard{}, false
	}

	if id := v.s.buf.U8(patchCardsOffset + slot); id < patchCardEmpty {
		return save.PatchCard{ID: int(id), Enabled: true}, true
	}
	if id := v.s.buf.U8(patchCardsOffset + patchCardsDisabledDelta + slot); id < patchCardEmpty {
		return save.PatchCard{ID: int(id), Enabled: false}, true
	}
	return save.PatchCard{}, false
}

func (v *patchCardsView) SetPatchCard(slot int, card save.PatchCard, ok bool) bool {
	if slot < 0 || slot >= v.NumSlots() {
		return false
	}
	if ok && (card.ID < 0 || card.ID >= patchCardEmpty) {
		return false
	}

	v.s.buf.SetU8(patchCardsOffset+slot, 0xff)
	v.s.buf.SetU8(patchCardsOffset+patchCardsDisabledDelta+slot, 0xff)
	if !ok {
		return true
	}

	offset := patchCardsOffset + slot
	if !card.Enabled {
		offset += patchCardsDisabledDelta
	}
	v.s.buf.SetU8(offset, byte(card.ID))
	return true
}

// AutoBattleDataView returns the chip usage view.
func (s *Save) AutoBattleDataView() save.AutoBattleDataView {
	return &autoBattleDataView{s: s}
}

// AutoBattleDataViewMut returns the editable chip usage view.
func (s *Save) AutoBattleDataViewMut() save.AutoBattleDataViewMut {
	return &autoBattleDataView{s: s}
}

type autoBattleDataView struct {
	s *Save
}

func (v *autoBattleDataView) NumChips() int {
	return numAutoBattleDataChips
}

// the use counters are not relative to the shift
func (v *autoBattleDataView) ChipUseCount(id int) (int, bool) {
	if id < 0 || id >= numAutoBattleDataChips {
		return 0, false
	}
	return int(v.s.buf.AbsU16(chipUseCountOffset + id*2)), true
}

func (v *autoBattleDataView) SecondaryChipUseCount(id int) (int, bool) {
	if id < 0 || id >= numAutoBattleDataChips {
		return 0, false
	}
	return int(v.s.buf.AbsU16(secondaryUseCountOffset + id*2)), true
}

func (v *autoBattleDataView) Materialized() []int {
	out := make([]int, abd.Size)
	for i := range out {
		raw := v.s.buf.U16(materializedOffset + i*2)
		out[i] = int(raw)
		if raw == materializedEmpty {
			out[i] = abd.None
		}
	}
	return out
}

func (v *autoBattleDataView) SetChipUseCount(id, count int) bool {
	if id < 0 || id >= numAutoBattleDataChips || count < 0 || count > maxChipUseCount {
		return false
	}
	v.s.buf.SetAbsU16(chipUseCountOffset+id*2, uint16(count))
	return true
}

func (v *autoBattleDataView) SetSecondaryChipUseCount(id, count int) bool {
	if id < 0 || id >= numAutoBattleDataChips || count < 0 || count > maxChipUseCount {
		return false
	}
	v.s.buf.SetAbsU16(secondaryUseCountOffset+id*2, uint16(count))
	return true
}
