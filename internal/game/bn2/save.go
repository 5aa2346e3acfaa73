// Package bn2 implements the save format of Rockman EXE 2 / Mega Man Battle
// Network 2. Only validation and checksumming are supported.
package bn2

import (
	"github.com/retroenv/bndata/internal/rom"
	"github.com/retroenv/bndata/internal/save"
)

const (
	saveSize       = 0x3a78
	gameNameOffset = 0x1198
	checksumOffset = 0x114c
	checksumStart  = 0x16
)

// GameName is the signature stored in every save.
var GameName = []byte("ROCKMANEXE2 20011016")

// Layout describes the save format. It is neither masked nor shifted.
var Layout = save.Layout{
	Name:           "bn2",
	Size:           saveSize,
	MaskOffset:     -1,
	ShiftOffset:    -1,
	GameNameOffset: gameNameOffset,
	GameName:       GameName,
	ChecksumOffset: checksumOffset,
	ExportSize:     saveSize,
}

var checksumCandidates = []save.Candidate[struct{}]{
	{Predict: func(raw uint32, _ []byte) uint32 { return raw + checksumStart }},
}

// Save is a decoded save. It is not safe for concurrent use.
type Save struct {
	buf *save.Buffer
}

var _ save.Save = &Save{}

// New decodes and validates a save file.
func New(raw []byte) (*Save, error) {
	buf, err := save.Decode(raw, &Layout)
	if err != nil {
		return nil, err
	}
	if _, err := save.Resolve(buf, checksumCandidates); err != nil {
		return nil, err
	}
	return &Save{buf: buf}, nil
}

func (s *Save) Buffer() *save.Buffer {
	return s.buf
}

func (s *Save) Checksum() uint32 {
	return s.buf.Checksum()
}

func (s *Save) ComputeChecksum() uint32 {
	return s.buf.RawChecksum() + checksumStart
}

func (s *Save) Export() []byte {
	return s.buf.Export()
}

func (s *Save) ChipsView() save.ChipsView {
	return nil
}

func (s *Save) NavicustView() save.NavicustView {
	return nil
}

func (s *Save) PatchCardsView() save.PatchCardsView {
	return nil
}

func (s *Save) AutoBattleDataView() save.AutoBattleDataView {
	return nil
}

// Rebuild only refreshes the checksum, the format has no derived caches.
func (s *Save) Rebuild(rom.Assets) {
	s.buf.SetChecksum(s.ComputeChecksum())
}
