// Package writer writes a plain text report of the contents of a save.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/bndata/internal/rom"
	"github.com/retroenv/bndata/internal/save"
)

// Writer writes save reports. Chip and part names are resolved when assets
// are given.
type Writer struct {
	save   save.Save
	assets rom.Assets
	writer io.Writer
}

// New creates a new report writer. assets can be nil.
func New(s save.Save, assets rom.Assets, writer io.Writer) *Writer {
	return &Writer{
		save:   s,
		assets: assets,
		writer: writer,
	}
}

// Write writes every section that the save format supports.
func (w Writer) Write() error {
	sections := []func() error{
		w.writeHeader,
		w.writeFolders,
		w.writeNavicust,
		w.writePatchCards,
		w.writeAutoBattleData,
	}
	for _, section := range sections {
		if err := section(); err != nil {
			return err
		}
	}
	return nil
}

func (w Writer) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(w.writer, format, args...); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func (w Writer) writeHeader() error {
	buf := w.save.Buffer()
	return w.printf("; %s save, shift 0x%03x, checksum 0x%08x\n",
		buf.Layout().Name, buf.Shift(), buf.Checksum())
}

func (w Writer) chipName(id int) string {
	if w.assets == nil {
		return ""
	}
	chip, ok := w.assets.Chip(id)
	if !ok {
		return ""
	}
	return chip.Name()
}

func (w Writer) writeFolders() error {
	view := w.save.ChipsView()
	if view == nil {
		return nil
	}

	for folder := 0; folder < view.NumFolders(); folder++ {
		marker := ""
		if folder == view.EquippedFolderIndex() {
			marker = " (equipped)"
		}
		if err := w.printf("\n[folder %d]%s\n", folder, marker); err != nil {
			return err
		}

		regular, hasRegular := view.RegularChipIndex(folder)
		for i := 0; i < view.ChipsPerFolder(); i++ {
			chip, ok := view.Chip(folder, i)
			if !ok {
				continue
			}
			line := fmt.Sprintf("%2d  %3d %c", i, chip.ID, chip.Code)
			if name := w.chipName(chip.ID); name != "" {
				line += "  " + name
			}
			if hasRegular && regular == i {
				line += "  [regular]"
			}
			if err := w.printf("%s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w Writer) writeNavicust() error {
	view := w.save.NavicustView()
	if view == nil {
		return nil
	}

	if err := w.printf("\n[navicust]\n"); err != nil {
		return err
	}
	for i := 0; i < view.Count(); i++ {
		part, ok := view.NavicustPart(i)
		if !ok {
			continue
		}
		name := ""
		if w.assets != nil {
			if info, ok := w.assets.NavicustPart(part.ID, part.Variant); ok {
				name = "  " + info.Name()
			}
		}
		if err := w.printf("%2d  %3d/%d at %d,%d rot %d compressed %t%s\n",
			i, part.ID, part.Variant, part.Col, part.Row, part.Rot, part.Compressed, name); err != nil {
			return err
		}
	}

	grid, ok := view.Precomposed()
	if !ok {
		return nil
	}
	for y := 0; y < grid.Height; y++ {
		cells := make([]string, grid.Width)
		for x := range cells {
			cells[x] = " ."
			if v := grid.At(y, x); v >= 0 {
				cells[x] = fmt.Sprintf("%2d", v)
			}
		}
		if err := w.printf("    %s\n", strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (w Writer) writePatchCards() error {
	view := w.save.PatchCardsView()
	if view == nil {
		return nil
	}

	if err := w.printf("\n[patch cards]\n"); err != nil {
		return err
	}
	for slot := 0; slot < view.NumSlots(); slot++ {
		card, ok := view.PatchCard(slot)
		if !ok {
			continue
		}
		state := "enabled"
		if !card.Enabled {
			state = "disabled"
		}
		if err := w.printf("%d  0x%02x %s\n", slot, card.ID, state); err != nil {
			return err
		}
	}
	return nil
}

func (w Writer) writeAutoBattleData() error {
	view := w.save.AutoBattleDataView()
	if view == nil {
		return nil
	}

	if err := w.printf("\n[auto battle data]\n"); err != nil {
		return err
	}
	for i, id := range view.Materialized() {
		if id < 0 {
			continue
		}
		line := fmt.Sprintf("%2d  %3d", i, id)
		if name := w.chipName(id); name != "" {
			line += "  " + name
		}
		if err := w.printf("%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
