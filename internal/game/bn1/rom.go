// Package bn1 implements the cartridge assets of Rockman EXE / Mega Man
// Battle Network.
package bn1

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
	NumChips = 240
	// NumElements is the number of element icons.
	NumElements = 5

	chipRecordSize = 0x1c
	iconTiles      = 4
	iconCols       = 2
	imageTiles     = 8 * 7
	imageCols      = 8
)

// Offsets lists the cartridge addresses of one revision.
type Offsets struct {
	ChipData                  uint32
	ChipNamesPointer          uint32
	ChipDescriptionsPointer   uint32
	ChipIconPalettePointer    uint32
	ElementIconPalettePointer uint32
	ElementIconsPointer       uint32
}

// AREE_00 is the US release, named after its game code and revision.
var AREE_00 = Offsets{ //nolint:revive,stylecheck
	ChipData:                  0x08007d70,
	ChipNamesPointer:          0x080145f4,
	ChipDescriptionsPointer:   0x08016104,
	ElementIconsPointer:       0x0801a688,
	ElementIconPalettePointer: 0x08005a1c,
	ChipIconPalettePointer:    0x08015ebc,
}

// AREJ_00 is the Japanese release.
var AREJ_00 = Offsets{ //nolint:revive,stylecheck
	ChipData:                  0x08007d3c,
	ChipNamesPointer:          0x08014578,
	ChipDescriptionsPointer:   0x08016088,
	ElementIconsPointer:       0x0801a5a4,
	ElementIconPalettePointer: 0x08005a0c,
	ChipIconPalettePointer:    0x08015e40,
}

// Revisions maps revision keys to their offset tables.
var Revisions = map[string]*Offsets{
	"AREE_00": &AREE_00,
	"AREJ_00": &AREJ_00,
}

// TextOptions returns the decoder configuration for the given charset.
func TextOptions(charset []string) *text.Options {
	return &text.Options{
		Charset:      charset,
		ExtensionOps: text.OpRange{First: 0xe5, Count: 2},
		EOF:          0xe7,
		NewLine:      0xe8,
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

// New creates the asset view. Palettes that can not be decoded are logged
// and replaced by a transparent palette.
func New(logger *log.Logger, offsets *Offsets, charset []string, romData, wram []byte) *Assets {
	reader := rom.NewReader(logger, mapper.New(romData, wram), TextOptions(charset), text.Delimited)

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
	return false
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
	return 0
}

func (a *Assets) NavicustPart(int, int) (rom.NavicustPart, bool) {
	return nil, false
}

type chip struct {
	id     int
	assets *Assets
}

// raw returns the record bytes, a record that can not be read decodes as
// all zero.
func (c *chip) raw() []byte {
	m := c.assets.reader.Mapper()
	buf, err := m.Slice(c.assets.offsets.ChipData+uint32(c.id*chipRecordSize), chipRecordSize)
	if err != nil {
		return make([]byte, chipRecordSize)
	}
	return buf
}

func (c *chip) Name() string {
	return c.assets.reader.String(c.assets.offsets.ChipNamesPointer, c.id, "chip name")
}

func (c *chip) Description() string {
	return c.assets.reader.String(c.assets.offsets.ChipDescriptionsPointer, c.id, "chip description")
}

func (c *chip) Icon() *image.NRGBA {
	address := binary.LittleEndian.Uint32(c.raw()[0x10:])
	return c.assets.reader.FallbackImage(address, iconTiles, iconCols, c.assets.chipIconPalette, "chip icon", c.id)
}

func (c *chip) Image() *image.NRGBA {
	raw := c.raw()
	palette, err := c.assets.reader.Palette(binary.LittleEndian.Uint32(raw[0x18:]))
	if err != nil {
		return tiles.Blank(imageCols, imageTiles/imageCols)
	}
	address := binary.LittleEndian.Uint32(raw[0x14:])
	return c.assets.reader.FallbackImage(address, imageTiles, imageCols, palette, "chip image", c.id)
}

func (c *chip) Codes() []byte {
	var codes []byte
	for _, code := range c.raw()[0x00:0x05] {
		if code == 0xff || int(code) >= len(chipCodes) {
			continue
		}
		codes = append(codes, chipCodes[code])
	}
	return codes
}

func (c *chip) Element() int {
	return int(c.raw()[0x05])
}

func (c *chip) Class() rom.ChipClass {
	return rom.ChipClassStandard
}

func (c *chip) Dark() bool {
	return false
}

func (c *chip) MB() int {
	return 0
}

func (c *chip) Damage() int {
	return int(binary.LittleEndian.Uint16(c.raw()[0x0c:]))
}

func (c *chip) LibrarySortOrder() (int, bool) {
	return c.id, true
}

var chipCodes = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
