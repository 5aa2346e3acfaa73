// Package navicust projects navicust part placements onto the dense grid the
// game caches in the save.
package navicust

import (
	"github.com/retroenv/bndata/internal/rom"
	"github.com/retroenv/bndata/internal/save"
)

// Compose places every part in slot order. A part covers the set cells of its
// bitmap, compressed or not, turned rot quarter turns clockwise and centred on
// its column and row. Cells covered by several parts belong to the last one
// placed; cells outside the grid are dropped.
func Compose(view save.NavicustView, assets rom.Assets) save.Grid {
	grid := save.NewGrid(view.Width(), view.Height())

	for i := 0; i < view.Count(); i++ {
		part, ok := view.NavicustPart(i)
		if !ok {
			continue
		}
		info, ok := assets.NavicustPart(part.ID, part.Variant)
		if !ok {
			continue
		}

		bitmap := info.UncompressedBitmap()
		if part.Compressed {
			bitmap = info.CompressedBitmap()
		}
		for r := 0; r < part.Rot%4; r++ {
			bitmap = bitmap.Rotate()
		}

		top := part.Row - bitmap.Height()/2
		left := part.Col - bitmap.Width()/2
		for y, row := range bitmap {
			for x, set := range row {
				if !set {
					continue
				}
				gy, gx := top+y, left+x
				if gy < 0 || gy >= grid.Height || gx < 0 || gx >= grid.Width {
					continue
				}
				grid.Set(gy, gx, i)
			}
		}
	}

	return grid
}
