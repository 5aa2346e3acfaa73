// Package rom defines the read only views over the assets stored in a
// cartridge image.
package rom

import (
	"image"
)

// ChipClass is the category a chip belongs to.
type ChipClass int

const (
	ChipClassStandard ChipClass = iota
	ChipClassMega
	ChipClassGiga
	ChipClassNone
	ChipClassProgramAdvance
)

func (c ChipClass) String() string {
	switch c {
	case ChipClassStandard:
		return "standard"
	case ChipClassMega:
		return "mega"
	case ChipClassGiga:
		return "giga"
	case ChipClassProgramAdvance:
		return "program advance"
	default:
		return "none"
	}
}

// Chip is a single battle chip record.
type Chip interface {
	Name() string
	Description() string
	// Icon is the 16x16 menu icon.
	Icon() *image.NRGBA
	// Image is the 64x56 artwork.
	Image() *image.NRGBA
	Codes() []byte
	Element() int
	Class() ChipClass
	Dark() bool
	MB() int
	Damage() int
	LibrarySortOrder() (int, bool)
}

// NavicustPartColor is the display color of a navicust part.
type NavicustPartColor int

const (
	NavicustPartColorNone NavicustPartColor = iota
	NavicustPartColorWhite
	NavicustPartColorPink
	NavicustPartColorYellow
	NavicustPartColorRed
	NavicustPartColorBlue
	NavicustPartColorGreen
	NavicustPartColorOrange
	NavicustPartColorPurple
	NavicustPartColorGray
)

// Bitmap is the footprint of a navicust part, indexed [row][col].
type Bitmap [][]bool

// Height returns the number of rows.
func (b Bitmap) Height() int {
	return len(b)
}

// Width returns the number of columns.
func (b Bitmap) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Rotate returns the bitmap turned 90 degrees clockwise.
func (b Bitmap) Rotate() Bitmap {
	h, w := b.Height(), b.Width()
	out := make(Bitmap, w)
	for y := range out {
		out[y] = make([]bool, h)
		for x := range out[y] {
			out[y][x] = b[h-1-x][y]
		}
	}
	return out
}

// NavicustPart is a navicust program record in one of its color variants.
type NavicustPart interface {
	Name() string
	Description() string
	Color() NavicustPartColor
	IsSolid() bool
	UncompressedBitmap() Bitmap
	CompressedBitmap() Bitmap
}

// Assets gives access to the records of one cartridge image. Implementations
// are immutable and safe for concurrent use.
type Assets interface {
	NumChips() int
	// Chip returns false for ids outside [0, NumChips).
	Chip(id int) (Chip, bool)
	ChipsHaveMB() bool
	ElementIcon(id int) (*image.NRGBA, bool)
	NumNavicustParts() int
	NavicustPart(id, variant int) (NavicustPart, bool)
}
