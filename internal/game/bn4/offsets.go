package bn4

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrOffsets is returned for offset tables that can not be loaded.
var ErrOffsets = errors.New("invalid offset table")

// Offsets lists the cartridge addresses of one revision.
type Offsets struct {
	ChipData                  uint32
	ChipNamesPointers         [2]uint32
	ChipDescriptionsPointers  [2]uint32
	ChipIconPalettePointer    uint32
	ElementIconPalettePointer uint32
	ElementIconsPointer       uint32
	NavicustPartData          uint32
	NavicustPartNamesPointer  uint32
	NavicustPartDescsPointer  uint32
}

// LoadOffsets reads offset tables from an INI source, one section per
// revision named after the game code and revision, for example:
//
//	[B4WE_00]
//	chip_data = 0x080216a8
//	chip_names_pointers = 0x0801a6c4, 0x0801a6d0
//
// The source can be anything accepted by ini.Load: a file name, raw bytes
// or a reader.
func LoadOffsets(source any) (map[string]*Offsets, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys: true,
	}, source)
	if err != nil {
		return nil, fmt.Errorf("loading offsets: %w", err)
	}

	tables := map[string]*Offsets{}
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		offsets, err := parseSection(section)
		if err != nil {
			return nil, fmt.Errorf("section '%s': %w", section.Name(), err)
		}
		tables[section.Name()] = offsets
	}
	return tables, nil
}

func parseSection(section *ini.Section) (*Offsets, error) {
	p := &sectionParser{section: section}
	offsets := &Offsets{
		ChipData:                  p.address("chip_data"),
		ChipNamesPointers:         p.pair("chip_names_pointers"),
		ChipDescriptionsPointers:  p.pair("chip_descriptions_pointers"),
		ChipIconPalettePointer:    p.address("chip_icon_palette_pointer"),
		ElementIconPalettePointer: p.address("element_icon_palette_pointer"),
		ElementIconsPointer:       p.address("element_icons_pointer"),
		NavicustPartData:          p.address("ncp_data"),
		NavicustPartNamesPointer:  p.address("ncp_names_pointer"),
		NavicustPartDescsPointer:  p.address("ncp_descriptions_pointer"),
	}
	if p.err != nil {
		return nil, p.err
	}
	return offsets, nil
}

// sectionParser keeps the first error so that all keys can be read in one
// expression.
type sectionParser struct {
	section *ini.Section
	err     error
}

func (p *sectionParser) address(name string) uint32 {
	if p.err != nil {
		return 0
	}
	if !p.section.HasKey(name) {
		p.err = fmt.Errorf("%w: missing key '%s'", ErrOffsets, name)
		return 0
	}
	v, err := parseAddress(p.section.Key(name).String())
	if err != nil {
		p.err = fmt.Errorf("key '%s': %w", name, err)
	}
	return v
}

func (p *sectionParser) pair(name string) [2]uint32 {
	var result [2]uint32
	if p.err != nil {
		return result
	}
	if !p.section.HasKey(name) {
		p.err = fmt.Errorf("%w: missing key '%s'", ErrOffsets, name)
		return result
	}

	values := p.section.Key(name).Strings(",")
	if len(values) != len(result) {
		p.err = fmt.Errorf("%w: key '%s' needs %d addresses, has %d", ErrOffsets, name, len(result), len(values))
		return result
	}
	for i, s := range values {
		v, err := parseAddress(s)
		if err != nil {
			p.err = fmt.Errorf("key '%s': %w", name, err)
			return result
		}
		result[i] = v
	}
	return result
}

func parseAddress(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: parsing address '%s': %v", ErrOffsets, s, err)
	}
	return uint32(v), nil
}
