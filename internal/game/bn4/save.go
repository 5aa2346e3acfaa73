// Package bn4 implements the save format and cartridge assets of Rockman EXE 4
// / Mega Man Battle Network 4.
package bn4

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/retroenv/bndata/internal/abd"
	"github.com/retroenv/bndata/internal/navicust"
	"github.com/retroenv/bndata/internal/rom"
	"github.com/retroenv/bndata/internal/save"
)

const (
	saveSize       = 0x73d2
	maskOffset     = 0x1554
	shiftOffset    = 0x1550
	maxShift       = 0x1fc
	gameNameOffset = 0x2208
	checksumOffset = 0x21e8

	// ExportSize is the size of the flash save written by the game.
	ExportSize = 0x10000
)

// GameName is the signature stored in every save.
var GameName = []byte("ROCKMANEXE4 20031022")

// Layout describes the save format.
var Layout = save.Layout{
	Name:           "bn4",
	Size:           saveSize,
	MaskOffset:     maskOffset,
	ShiftOffset:    shiftOffset,
	MaxShift:       maxShift,
	GameNameOffset: gameNameOffset,
	GameName:       GameName,
	ChecksumOffset: checksumOffset,
	ExportSize:     ExportSize,
}

// Variant is the version of the game.
type Variant int

const (
	RedSun Variant = iota
	BlueMoon
)

func (v Variant) String() string {
	switch v {
	case RedSun:
		return "Red Sun"
	case BlueMoon:
		return "Blue Moon"
	default:
		return "unknown"
	}
}

// Region lists the releases a save is valid for. Saves can be valid for both.
type Region struct {
	US bool
	JP bool
}

func (r Region) String() string {
	switch {
	case r.US && r.JP:
		return "US+JP"
	case r.US:
		return "US"
	case r.JP:
		return "JP"
	default:
		return "none"
	}
}

// GameInfo is derived from the checksum when a save is loaded.
type GameInfo struct {
	Variant Variant
	Region  Region
}

func checksumStart(v Variant) uint32 {
	switch v {
	case BlueMoon:
		return 0x22
	default:
		return 0x16
	}
}

func predictUS(v Variant) func(raw uint32, buf []byte) uint32 {
	return func(raw uint32, _ []byte) uint32 {
		return raw + checksumStart(v)
	}
}

// the Japanese release leaves the first byte out of the sum
func predictJP(v Variant) func(raw uint32, buf []byte) uint32 {
	return func(raw uint32, buf []byte) uint32 {
		return raw - uint32(buf[0]) + checksumStart(v)
	}
}

var checksumCandidates = []save.Candidate[GameInfo]{
	{Predict: predictUS(RedSun), Verdict: GameInfo{Variant: RedSun, Region: Region{US: true}}},
	{Predict: predictUS(BlueMoon), Verdict: GameInfo{Variant: BlueMoon, Region: Region{US: true}}},
	{Predict: predictJP(RedSun), Verdict: GameInfo{Variant: RedSun, Region: Region{JP: true}}},
	{Predict: predictJP(BlueMoon), Verdict: GameInfo{Variant: BlueMoon, Region: Region{JP: true}}},
}

// ErrInvalidConfig is returned for configurations that do not fit the save.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the layout details that are not fixed by the format.
type Config struct {
	NumFolders int
}

func (c Config) validate() error {
	maxFolders := (saveSize - maxShift - folderOffset) / (chipsPerFolder * 2)
	if c.NumFolders < 1 || c.NumFolders > maxFolders {
		return fmt.Errorf("%w: %d folders, must be between 1 and %d", ErrInvalidConfig, c.NumFolders, maxFolders)
	}
	return nil
}

// DefaultConfig returns the configuration matching the retail games.
func DefaultConfig() Config {
	return Config{
		NumFolders: 3,
	}
}

// Save is a decoded save. It is not safe for concurrent use.
type Save struct {
	buf    *save.Buffer
	info   GameInfo
	config Config
}

var _ save.Save = &Save{}

// New decodes a save file using the default configuration.
func New(raw []byte) (*Save, error) {
	return NewWithConfig(raw, DefaultConfig())
}

// NewWithConfig decodes a save file and resolves variant and region from
// the checksum.
func NewWithConfig(raw []byte, config Config) (*Save, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	buf, err := save.Decode(raw, &Layout)
	if err != nil {
		return nil, err
	}

	info, err := save.Resolve(buf, checksumCandidates)
	if err != nil {
		return nil, err
	}
	// without a first byte both releases compute the same checksum
	if buf.Bytes()[0] == 0 {
		info.Region = Region{US: true, JP: true}
	}

	return &Save{
		buf:    buf,
		info:   info,
		config: config,
	}, nil
}

// FromWRAM wraps a save read from the working memory of a running game, the
// game info has to be known by the caller.
func FromWRAM(raw []byte, info GameInfo) (*Save, error) {
	buf, err := save.FromWRAM(raw, &Layout)
	if err != nil {
		return nil, err
	}
	return &Save{
		buf:    buf,
		info:   info,
		config: DefaultConfig(),
	}, nil
}

// GameInfo returns the variant and region resolved at load time.
func (s *Save) GameInfo() GameInfo {
	return s.info
}

// Buffer returns the underlying buffer.
func (s *Save) Buffer() *save.Buffer {
	return s.buf
}

// Checksum returns the stored checksum.
func (s *Save) Checksum() uint32 {
	return s.buf.Checksum()
}

// ComputeChecksum returns the checksum the game computes for the current
// contents.
func (s *Save) ComputeChecksum() uint32 {
	checksum := s.buf.RawChecksum() + checksumStart(s.info.Variant)
	if s.info.Region == (Region{JP: true}) {
		checksum -= uint32(s.buf.Bytes()[0])
	}
	return checksum
}

// Export returns the masked save file.
func (s *Save) Export() []byte {
	return s.buf.Export()
}

// Rebuild regenerates the auto battle data and navicust caches from the
// primary fields and then stores the new checksum.
func (s *Save) Rebuild(assets rom.Assets) {
	s.rebuildMaterializedAutoBattleData(assets)
	s.rebuildPrecomposedNavicust(assets)
	s.rebuildChecksum()
}

func (s *Save) rebuildMaterializedAutoBattleData(assets rom.Assets) {
	materialized := abd.Materialize(s.AutoBattleDataView(), assets)
	region := s.buf.Region(materializedOffset, abd.Size*2)
	for i, id := range materialized {
		v := uint16(0xffff)
		if id != abd.None {
			v = uint16(id)
		}
		binary.LittleEndian.PutUint16(region[i*2:], v)
	}
}

func (s *Save) rebuildPrecomposedNavicust(assets rom.Assets) {
	composed := navicust.Compose(s.NavicustView(), assets)
	region := s.buf.Region(precomposedOffset, precomposedSize)
	for i := range region {
		region[i] = 0
		if i < len(composed.Cells) && composed.Cells[i] >= 0 {
			region[i] = byte(composed.Cells[i] + 1)
		}
	}
}

func (s *Save) rebuildChecksum() {
	s.buf.SetChecksum(s.ComputeChecksum())
}
