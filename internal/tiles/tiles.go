// Package tiles decodes 4 bit per pixel tile graphics and BGR555 palettes.
package tiles

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const (
	TileWidth   = 8
	TileHeight  = 8
	TilePixels  = TileWidth * TileHeight
	TileBytes   = TilePixels / 2
	PaletteSize = 16
	// PaletteBytes is the size of a raw palette of 16 BGR555 words.
	PaletteBytes = PaletteSize * 2
)

var (
	// ErrTileData is returned for tile data that is not a whole number of tiles or rows.
	ErrTileData = errors.New("invalid tile data length")
	// ErrPaletteData is returned for palettes that are not 16 colors.
	ErrPaletteData = errors.New("invalid palette data length")
)

// BGR555ToNRGBA converts a 15 bit GBA color.
func BGR555ToNRGBA(c uint16) color.NRGBA {
	return color.NRGBA{
		R: scale5(c & 0x1f),
		G: scale5(c >> 5 & 0x1f),
		B: scale5(c >> 10 & 0x1f),
		A: 0xff,
	}
}

func scale5(v uint16) uint8 {
	return uint8((uint32(v)*0xff + 15) / 31)
}

// ReadPalette decodes 16 BGR555 colors. Index 0 is made fully transparent.
func ReadPalette(raw []byte) (color.Palette, error) {
	if len(raw) != PaletteBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrPaletteData, len(raw))
	}

	palette := make(color.Palette, PaletteSize)
	for i := range palette {
		c := BGR555ToNRGBA(binary.LittleEndian.Uint16(raw[i*2:]))
		if i == 0 {
			c.A = 0
		}
		palette[i] = c
	}
	return palette, nil
}

// ReadTile decodes a single tile into palette indexes, low nibble first.
func ReadTile(raw []byte) (*image.Paletted, error) {
	if len(raw) != TileBytes {
		return nil, fmt.Errorf("%w: %d bytes for a single tile", ErrTileData, len(raw))
	}

	img := image.NewPaletted(image.Rect(0, 0, TileWidth, TileHeight), nil)
	untile(img, raw, 0, 0)
	return img, nil
}

// ReadMergedTiles decodes consecutive tiles and lays them out row major,
// cols tiles per row.
func ReadMergedTiles(raw []byte, cols int) (*image.Paletted, error) {
	if cols <= 0 || len(raw) == 0 || len(raw)%TileBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTileData, len(raw))
	}
	count := len(raw) / TileBytes
	if count%cols != 0 {
		return nil, fmt.Errorf("%w: %d tiles do not fill rows of %d", ErrTileData, count, cols)
	}
	rows := count / cols

	img := image.NewPaletted(image.Rect(0, 0, cols*TileWidth, rows*TileHeight), nil)
	for i := 0; i < count; i++ {
		x := i % cols * TileWidth
		y := i / cols * TileHeight
		untile(img, raw[i*TileBytes:(i+1)*TileBytes], x, y)
	}
	return img, nil
}

func untile(img *image.Paletted, raw []byte, x, y int) {
	i := 0
	for ty := 0; ty < TileHeight; ty++ {
		for tx := 0; tx < TileWidth; tx, i = tx+2, i+1 {
			di := img.PixOffset(x+tx, y+ty)
			img.Pix[di+0] = raw[i] & 0xf
			img.Pix[di+1] = raw[i] >> 4
		}
	}
}

// ApplyPalette renders palette indexes into a color image.
func ApplyPalette(img *image.Paletted, palette color.Palette) *image.NRGBA {
	src := *img
	src.Palette = palette

	dst := image.NewNRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), &src, img.Bounds().Min, draw.Src)
	return dst
}

// Blank returns a fully transparent image of the given tile dimensions.
func Blank(cols, rows int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, cols*TileWidth, rows*TileHeight))
}
