package rom

import (
	"fmt"
	"image"
	"image/color"

	"github.com/retroenv/bndata/internal/mapper"
	"github.com/retroenv/bndata/internal/text"
	"github.com/retroenv/bndata/internal/tiles"
	"github.com/retroenv/retrogolib/log"
)

// Reader decodes strings and graphics out of a mapped cartridge. Decoding
// failures of single records are logged and replaced by placeholders so that
// one broken record does not hide the rest.
type Reader struct {
	logger *log.Logger
	mapper *mapper.Mapper
	text   *text.Options
	layout text.Layout
}

// NewReader returns a reader using the given text options and archive layout.
func NewReader(logger *log.Logger, m *mapper.Mapper, opts *text.Options, layout text.Layout) *Reader {
	return &Reader{
		logger: logger,
		mapper: m,
		text:   opts,
		layout: layout,
	}
}

// Mapper returns the underlying memory mapper.
func (r *Reader) Mapper() *mapper.Mapper {
	return r.mapper
}

// Parts decodes entry id of the archive the pointer at archivePointer refers to.
func (r *Reader) Parts(archivePointer uint32, id int) ([]text.Part, error) {
	archive, err := r.mapper.DerefAll(archivePointer)
	if err != nil {
		return nil, fmt.Errorf("resolving text archive: %w", err)
	}
	parts, err := text.ParseEntry(archive, id, r.layout, r.text)
	if err != nil {
		return nil, fmt.Errorf("decoding text entry: %w", err)
	}
	return parts, nil
}

// String is like Parts but flattens the result, returning the placeholder
// on failure.
func (r *Reader) String(archivePointer uint32, id int, what string) string {
	parts, err := r.Parts(archivePointer, id)
	if err != nil {
		r.logger.Debug("Using placeholder for undecodable text",
			log.String("record", what),
			log.Int("id", id),
			log.Hex("archive_pointer", archivePointer),
			log.Err(err))
		return text.Placeholder
	}
	return text.Flatten(parts)
}

// Palette decodes the 16 color palette at the address.
func (r *Reader) Palette(address uint32) (color.Palette, error) {
	raw, err := r.mapper.Slice(address, tiles.PaletteBytes)
	if err != nil {
		return nil, err
	}
	return tiles.ReadPalette(raw)
}

// PalettePointer decodes the palette the pointer at the address refers to.
func (r *Reader) PalettePointer(address uint32) (color.Palette, error) {
	raw, err := r.mapper.Deref(address, tiles.PaletteBytes)
	if err != nil {
		return nil, err
	}
	return tiles.ReadPalette(raw)
}

// FallbackPalette returns the palette at the pointer, or an all transparent
// palette when it can not be decoded.
func (r *Reader) FallbackPalette(address uint32, what string) color.Palette {
	palette, err := r.PalettePointer(address)
	if err != nil {
		r.logger.Warn("Using blank palette",
			log.String("palette", what),
			log.Hex("pointer", address),
			log.Err(err))
		return blankPalette()
	}
	return palette
}

// Image decodes count tiles at the address laid out cols tiles per row.
func (r *Reader) Image(address uint32, count, cols int, palette color.Palette) (*image.NRGBA, error) {
	raw, err := r.mapper.Slice(address, count*tiles.TileBytes)
	if err != nil {
		return nil, err
	}
	img, err := tiles.ReadMergedTiles(raw, cols)
	if err != nil {
		return nil, err
	}
	return tiles.ApplyPalette(img, palette), nil
}

// FallbackImage is like Image but returns a blank image of the expected size
// on failure.
func (r *Reader) FallbackImage(address uint32, count, cols int, palette color.Palette, what string, id int) *image.NRGBA {
	img, err := r.Image(address, count, cols, palette)
	if err != nil {
		r.logger.Debug("Using blank image for undecodable graphics",
			log.String("record", what),
			log.Int("id", id),
			log.Hex("address", address),
			log.Err(err))
		return tiles.Blank(cols, count/cols)
	}
	return img
}

func blankPalette() color.Palette {
	palette := make(color.Palette, tiles.PaletteSize)
	for i := range palette {
		palette[i] = color.NRGBA{}
	}
	return palette
}
