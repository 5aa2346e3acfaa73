package bn4

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/retroenv/bndata/internal/mapper"
	"github.com/retroenv/bndata/internal/rom"
	"github.com/retroenv/bndata/internal/text"
	"github.com/retroenv/bndata/internal/tiles"
	"github.com/retroenv/retrogolib/log"
)

const (
	// NumChips is the number of chip records.
	NumChips = numAutoBattleDataChips
	// NumElements is the number of element icons.
	NumElements = 13
	// NumNavicustParts is the number of navicust programs.
	NumNavicustParts = 47
	// NumNavicustPartVariants is the number of color variants per program.
	NumNavicustPartVariants = 4

	chipRecordSize     = 0x2c
	ncpRecordSize      = 0x10
	ncpBitmapSize      = 7
	chipNamesSplit     = 0x100
	noLibrarySortOrder = 0xffff
	darkChipFlag       = 0x20

	iconTiles  = 4
	iconCols   = 2
	imageTiles = 8 * 7
	imageCols  = 8
)

// TextOptions returns the decoder configuration for the given charset.
func TextOptions(charset []string) *text.Options {
	return &text.Options{
		Charset:      charset,
		ExtensionOps: text.OpRange{First: 0xe4, Count: 1},
		EOF:          0xe6,
		NewLine:      0xe9,
		Commands: map[byte]int{
			0xe7: 0,
			0xe8: 0,
			0xea: 3,
			0xeb: 0,
			0xec: 2,
			0xed: 3,
			0xee: 3,
			0xf0: 2,
		},
	}
}

// Assets gives access to the records of a cartridge image. It is immutable
// and safe for concurrent use.
type Assets struct {
	offsets *Offsets
	reader  *rom.Reader

	chipIconPalette    color.Palette
	elementIconPalette color.Palette
}

// NewAssets creates the asset view. Palettes that can not be decoded are
// logged and replaced by a transparent palette.
func NewAssets(logger *log.Logger, offsets *Offsets, charset []string, romData, wram []byte) *Assets {
	reader := rom.NewReader(logger, mapper.New(romData, wram), TextOptions(charset), text.Indexed)

	return &Assets{
		offsets:            offsets,
		reader:             reader,
		chipIconPalette:    reader.FallbackPalette(offsets.ChipIconPalettePointer, "chip icon"),
		elementIconPalette: reader.FallbackPalette(offsets.ElementIconPalettePointer, "element icon"),
	}
}

var _ rom.Assets = &Assets{}

func (a *Assets) NumChips() int {
	return NumChips
}

func (a *Assets) Chip(id int) (rom.Chip, bool) {
	if id < 0 || id >= NumChips {
		return nil, false
	}
	return &chip{id: id, assets: a}, true
}

func (a *Assets) ChipsHaveMB() bool {
	return true
}

func (a *Assets) ElementIcon(id int) (*image.NRGBA, bool) {
	if id < 0 || id >= NumElements {
		return nil, false
	}

	base, err := a.reader.Mapper().ReadU32(a.offsets.ElementIconsPointer)
	if err != nil {
		return tiles.Blank(iconCols, iconTiles/iconCols), true
	}
	address := base + uint32(id*iconTiles*tiles.TileBytes)
	return a.reader.FallbackImage(address, iconTiles, iconCols, a.elementIconPalette, "element icon", id), true
}

func (a *Assets) NumNavicustParts() int {
	return NumNavicustParts
}

func (a *Assets) NavicustPart(id, variant int) (rom.NavicustPart, bool) {
	if id < 0 || id >= NumNavicustParts || variant < 0 || variant >= NumNavicustPartVariants {
		return nil, false
	}
	return &navicustPart{id: id, variant: variant, assets: a}, true
}

// record returns size bytes at base+index*size, a record that can not be
// read decodes as all zero.
func (a *Assets) record(base uint32, index, size int) []byte {
	buf, err := a.reader.Mapper().Slice(base+uint32(index*size), size)
	if err != nil {
		return make([]byte, size)
	}
	return buf
}

type chip struct {
	id     int
	assets *Assets
}

func (c *chip) raw() []byte {
	return c.assets.record(c.assets.offsets.ChipData, c.id, chipRecordSize)
}

// split returns the archive pointer and entry of the chip, names and
// descriptions are stored in two archives.
func (c *chip) split(pointers [2]uint32) (uint32, int) {
	if c.id < chipNamesSplit {
		return pointers[0], c.id
	}
	return pointers[1], c.id - chipNamesSplit
}

func (c *chip) Name() string {
	pointer, id := c.split(c.assets.offsets.ChipNamesPointers)
	return c.assets.reader.String(pointer, id, "chip name")
}

func (c *chip) Description() string {
	pointer, id := c.split(c.assets.offsets.ChipDescriptionsPointers)
	return c.assets.reader.String(pointer, id, "chip description")
}

func (c *chip) Icon() *image.NRGBA {
	address := binary.LittleEndian.Uint32(c.raw()[0x20:])
	return c.assets.reader.FallbackImage(address, iconTiles, iconCols, c.assets.chipIconPalette, "chip icon", c.id)
}

func (c *chip) Image() *image.NRGBA {
	raw := c.raw()
	palette, err := c.assets.reader.Palette(binary.LittleEndian.Uint32(raw[0x28:]))
	if err != nil {
		return tiles.Blank(imageCols, imageTiles/imageCols)
	}
	address := binary.LittleEndian.Uint32(raw[0x24:])
	return c.assets.reader.FallbackImage(address, imageTiles, imageCols, palette, "chip image", c.id)
}

func (c *chip) Codes() []byte {
	var codes []byte
	for _, code := range c.raw()[0x00:0x04] {
		if code == 0xff || int(code) >= len(ChipCodes) {
			continue
		}
		codes = append(codes, ChipCodes[code])
	}
	return codes
}

func (c *chip) Element() int {
	return int(c.raw()[0x06])
}

func (c *chip) Class() rom.ChipClass {
	switch c.raw()[0x07] {
	case 0:
		return rom.ChipClassStandard
	case 1:
		return rom.ChipClassMega
	case 2:
		return rom.ChipClassGiga
	case 4:
		return rom.ChipClassProgramAdvance
	default:
		return rom.ChipClassNone
	}
}

func (c *chip) Dark() bool {
	return c.raw()[0x09]&darkChipFlag != 0
}

func (c *chip) MB() int {
	return int(c.raw()[0x08])
}

func (c *chip) Damage() int {
	return int(binary.LittleEndian.Uint16(c.raw()[0x1a:]))
}

func (c *chip) LibrarySortOrder() (int, bool) {
	order := binary.LittleEndian.Uint16(c.raw()[0x1c:])
	if order == noLibrarySortOrder {
		return 0, false
	}
	return int(order), true
}

type navicustPart struct {
	id      int
	variant int
	assets  *Assets
}

func (p *navicustPart) raw() []byte {
	index := p.id*NumNavicustPartVariants + p.variant
	return p.assets.record(p.assets.offsets.NavicustPartData, index, ncpRecordSize)
}

func (p *navicustPart) Name() string {
	return p.assets.reader.String(p.assets.offsets.NavicustPartNamesPointer, p.id, "navicust part name")
}

func (p *navicustPart) Description() string {
	return p.assets.reader.String(p.assets.offsets.NavicustPartDescsPointer, p.id, "navicust part description")
}

func (p *navicustPart) Color() rom.NavicustPartColor {
	c := rom.NavicustPartColor(p.raw()[0x03])
	if c > rom.NavicustPartColorGray {
		return rom.NavicustPartColorNone
	}
	return c
}

func (p *navicustPart) IsSolid() bool {
	return p.raw()[0x01] == 0
}

func (p *navicustPart) UncompressedBitmap() rom.Bitmap {
	return p.bitmap(binary.LittleEndian.Uint32(p.raw()[0x08:]))
}

func (p *navicustPart) CompressedBitmap() rom.Bitmap {
	return p.bitmap(binary.LittleEndian.Uint32(p.raw()[0x0c:]))
}

// bitmap decodes a square footprint of one byte per cell. An unreadable
// footprint decodes as empty.
func (p *navicustPart) bitmap(address uint32) rom.Bitmap {
	bitmap := make(rom.Bitmap, ncpBitmapSize)
	raw, err := p.assets.reader.Mapper().Slice(address, ncpBitmapSize*ncpBitmapSize)
	for y := range bitmap {
		bitmap[y] = make([]bool, ncpBitmapSize)
		if err != nil {
			continue
		}
		for x := range bitmap[y] {
			bitmap[y][x] = raw[y*ncpBitmapSize+x] != 0
		}
	}
	return bitmap
}
