// Package abd derives the auto battle data selection cache from chip usage
// statistics.
package abd

import (
	"golang.org/x/exp/slices"

	"github.com/retroenv/bndata/internal/rom"
	"github.com/retroenv/bndata/internal/save"
)

// Slot ranges of the selection cache.
const (
	StandardStart       = 0
	StandardCount       = 30
	MegaStart           = StandardStart + StandardCount
	MegaCount           = 5
	GigaStart           = MegaStart + MegaCount
	GigaCount           = 1
	ComboStart          = GigaStart + GigaCount
	ComboCount          = 4
	ProgramAdvanceStart = ComboStart + ComboCount
	ProgramAdvanceCount = 1
	DarkStart           = ProgramAdvanceStart + ProgramAdvanceCount
	DarkCount           = 1

	// Size is the number of cache entries.
	Size = DarkStart + DarkCount
)

// None marks an empty cache entry.
const None = -1

// Materialized is the selection cache, one chip id or None per entry.
type Materialized [Size]int

// Empty returns a cache without any selection.
func Empty() Materialized {
	var m Materialized
	for i := range m {
		m[i] = None
	}
	return m
}

type usage struct {
	id        int
	count     int
	sortOrder int
}

// Materialize selects the most used chips of each category the way the game
// does when it fills the cache.
func Materialize(view save.AutoBattleDataView, assets rom.Assets) Materialized {
	m := Empty()

	var standard, mega, giga, dark []usage
	for id := 0; id < assets.NumChips(); id++ {
		count := useCount(view, id)
		if count == 0 {
			continue
		}
		chip, ok := assets.Chip(id)
		if !ok {
			continue
		}

		sortOrder, ok := chip.LibrarySortOrder()
		if !ok {
			sortOrder = id
		}
		u := usage{id: id, count: count, sortOrder: sortOrder}

		switch {
		case chip.Dark():
			dark = append(dark, u)
		case chip.Class() == rom.ChipClassStandard:
			standard = append(standard, u)
		case chip.Class() == rom.ChipClassMega:
			mega = append(mega, u)
		case chip.Class() == rom.ChipClassGiga:
			giga = append(giga, u)
		}
	}

	fill(m[StandardStart:StandardStart+StandardCount], standard)
	fill(m[MegaStart:MegaStart+MegaCount], mega)
	fill(m[GigaStart:GigaStart+GigaCount], giga)
	fill(m[DarkStart:DarkStart+DarkCount], dark)
	return m
}

func useCount(view save.AutoBattleDataView, id int) int {
	primary, _ := view.ChipUseCount(id)
	secondary, _ := view.SecondaryChipUseCount(id)
	return primary + secondary
}

func fill(slots []int, candidates []usage) {
	slices.SortStableFunc(candidates, func(a, b usage) bool {
		if a.count != b.count {
			return a.count > b.count
		}
		if a.sortOrder != b.sortOrder {
			return a.sortOrder < b.sortOrder
		}
		return a.id < b.id
	})

	for i := range slots {
		if i >= len(candidates) {
			return
		}
		slots[i] = candidates[i].id
	}
}
