// Package mocks provides in memory asset implementations for tests.
package mocks

import (
	"image"

	"github.com/retroenv/bndata/internal/rom"
)

// Chip is a chip record with fixed values.
type Chip struct {
	ChipName    string
	ChipClass   rom.ChipClass
	IsDark      bool
	SortOrder   int
	HasSort     bool
	ChipCodes   []byte
	ChipElement int
	ChipMB      int
	ChipDamage  int
}

func (c *Chip) Name() string                  { return c.ChipName }
func (c *Chip) Description() string           { return "" }
func (c *Chip) Icon() *image.NRGBA            { return image.NewNRGBA(image.Rect(0, 0, 16, 16)) }
func (c *Chip) Image() *image.NRGBA           { return image.NewNRGBA(image.Rect(0, 0, 64, 56)) }
func (c *Chip) Codes() []byte                 { return c.ChipCodes }
func (c *Chip) Element() int                  { return c.ChipElement }
func (c *Chip) Class() rom.ChipClass          { return c.ChipClass }
func (c *Chip) Dark() bool                    { return c.IsDark }
func (c *Chip) MB() int                       { return c.ChipMB }
func (c *Chip) Damage() int                   { return c.ChipDamage }
func (c *Chip) LibrarySortOrder() (int, bool) { return c.SortOrder, c.HasSort }

// NavicustPart is a navicust part record with fixed bitmaps.
type NavicustPart struct {
	PartName     string
	PartColor    rom.NavicustPartColor
	Solid        bool
	Uncompressed rom.Bitmap
	Compressed   rom.Bitmap
}

func (p *NavicustPart) Name() string                   { return p.PartName }
func (p *NavicustPart) Description() string            { return "" }
func (p *NavicustPart) Color() rom.NavicustPartColor   { return p.PartColor }
func (p *NavicustPart) IsSolid() bool                  { return p.Solid }
func (p *NavicustPart) UncompressedBitmap() rom.Bitmap { return p.Uncompressed }
func (p *NavicustPart) CompressedBitmap() rom.Bitmap   { return p.Compressed }

// PartKey identifies a navicust part variant.
type PartKey struct {
	ID      int
	Variant int
}

// Assets serves chips by id and navicust parts by id and variant.
type Assets struct {
	Chips []*Chip
	Parts map[PartKey]*NavicustPart
}

var _ rom.Assets = &Assets{}

func (a *Assets) NumChips() int {
	return len(a.Chips)
}

func (a *Assets) Chip(id int) (rom.Chip, bool) {
	if id < 0 || id >= len(a.Chips) || a.Chips[id] == nil {
		return nil, false
	}
	return a.Chips[id], true
}

func (a *Assets) ChipsHaveMB() bool {
	return true
}

func (a *Assets) ElementIcon(int) (*image.NRGBA, bool) {
	return nil, false
}

func (a *Assets) NumNavicustParts() int {
	return len(a.Parts)
}

func (a *Assets) NavicustPart(id, variant int) (rom.NavicustPart, bool) {
	p, ok := a.Parts[PartKey{ID: id, Variant: variant}]
	if !ok {
		return nil, false
	}
	return p, true
}

// ParseBitmap builds a bitmap from rows of '#' and '.' characters.
func ParseBitmap(rows ...string) rom.Bitmap {
	b := make(rom.Bitmap, len(rows))
	for y, row := range rows {
		b[y] = make([]bool, len(row))
		for x, c := range row {
			b[y][x] = c == '#'
		}
	}
	return b
}
