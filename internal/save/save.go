// Package save implements the decoding pipeline shared by all save formats:
// masking, base offset resolution, signature and checksum validation.
package save

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bodgit/plumbing"
)

// Layout is the static description of one save format.
type Layout struct {
	Name string

	Size        int
	MaskOffset  int // -1 when the format is not masked
	ShiftOffset int // -1 when the base offset is always 0
	MaxShift    int

	GameNameOffset int
	GameName       []byte
	ChecksumOffset int

	// ExportSize is the size of exported files, the tail past Size is zero.
	ExportSize int
}

// Buffer is a decoded save. It is not safe for concurrent use.
type Buffer struct {
	layout *Layout
	buf    []byte
	shift  int
}

// stage is one step of the decode pipeline, it fails fast on the first
// violated invariant.
type stage func(b *Buffer) error

// Decode runs the full pipeline on a save file: size check, unmasking, shift
// resolution and signature check. The input is not modified.
func Decode(raw []byte, layout *Layout) (*Buffer, error) {
	return run(raw, layout, []stage{unmask, resolveShift, checkGameName})
}

// FromWRAM wraps a buffer read from live working memory. It is neither
// masked nor checked for the signature.
func FromWRAM(raw []byte, layout *Layout) (*Buffer, error) {
	return run(raw, layout, []stage{resolveShift})
}

func run(raw []byte, layout *Layout, stages []stage) (*Buffer, error) {
	if len(raw) < layout.Size {
		return nil, &SizeError{Len: len(raw), Expected: layout.Size}
	}

	b := &Buffer{
		layout: layout,
		buf:    make([]byte, layout.Size),
	}
	copy(b.buf, raw)

	for _, s := range stages {
		if err := s(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func unmask(b *Buffer) error {
	if b.layout.MaskOffset >= 0 {
		Mask(b.buf, b.layout.MaskOffset)
	}
	return nil
}

func resolveShift(b *Buffer) error {
	if b.layout.ShiftOffset < 0 {
		return nil
	}

	shift := int(binary.LittleEndian.Uint32(b.buf[b.layout.ShiftOffset:]))
	if shift < 0 || shift > b.layout.MaxShift || shift&3 != 0 {
		return &ShiftError{Shift: shift, Max: b.layout.MaxShift}
	}
	b.shift = shift
	return nil
}

func checkGameName(b *Buffer) error {
	offset := b.shift + b.layout.GameNameOffset
	name := b.buf[offset : offset+len(b.layout.GameName)]
	if !bytes.Equal(name, b.layout.GameName) {
		return &GameNameError{Name: append([]byte(nil), name...)}
	}
	return nil
}

// Mask applies the format obfuscation in place: every byte is XORed with the
// low byte of the 32 bit mask stored at offset, then the mask itself is
// restored. Applying it twice gives back the input.
func Mask(buf []byte, offset int) {
	mask := binary.LittleEndian.Uint32(buf[offset:])
	for i := range buf {
		buf[i] ^= byte(mask)
	}
	binary.LittleEndian.PutUint32(buf[offset:], mask)
}

// RawChecksum sums all bytes except the 4 checksum bytes at checksumOffset.
func RawChecksum(buf []byte, checksumOffset int) uint32 {
	var sum uint32
	for i, b := range buf {
		if i >= checksumOffset && i < checksumOffset+4 {
			continue
		}
		sum += uint32(b)
	}
	return sum
}

// Layout returns the format description.
func (b *Buffer) Layout() *Layout {
	return b.layout
}

// Shift returns the resolved base offset.
func (b *Buffer) Shift() int {
	return b.shift
}

// Bytes returns the unmasked buffer as the game keeps it in working memory.
// The slice is shared with the buffer.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// RawChecksum returns the sum of all bytes except the checksum field.
func (b *Buffer) RawChecksum() uint32 {
	return RawChecksum(b.buf, b.shift+b.layout.ChecksumOffset)
}

// Checksum returns the stored checksum.
func (b *Buffer) Checksum() uint32 {
	return binary.LittleEndian.Uint32(b.buf[b.shift+b.layout.ChecksumOffset:])
}

// SetChecksum stores the checksum.
func (b *Buffer) SetChecksum(v uint32) {
	binary.LittleEndian.PutUint32(b.buf[b.shift+b.layout.ChecksumOffset:], v)
}

// Export returns the masked save padded to the export size.
func (b *Buffer) Export() []byte {
	var out bytes.Buffer
	out.Grow(b.layout.ExportSize)
	// writes to a bytes.Buffer do not fail
	_, _ = b.WriteTo(&out)
	return out.Bytes()
}

// WriteTo writes the masked save padded to the export size.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	masked := make([]byte, len(b.buf))
	copy(masked, b.buf)
	if b.layout.MaskOffset >= 0 {
		Mask(masked, b.layout.MaskOffset)
	}

	size := int64(len(masked))
	if b.layout.ExportSize > len(masked) {
		size = int64(b.layout.ExportSize)
	}
	n, err := io.Copy(w, plumbing.PaddedReader(bytes.NewReader(masked), size, 0))
	if err != nil {
		return n, fmt.Errorf("writing save: %w", err)
	}
	return n, nil
}

// Clone returns an independent copy.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.buf = append([]byte(nil), b.buf...)
	return &c
}

// U8 reads a byte at a shift relative offset.
func (b *Buffer) U8(offset int) byte {
	return b.buf[b.shift+offset]
}

// SetU8 writes a byte at a shift relative offset.
func (b *Buffer) SetU8(offset int, v byte) {
	b.buf[b.shift+offset] = v
}

// U16 reads a little endian 16 bit value at a shift relative offset.
func (b *Buffer) U16(offset int) uint16 {
	return binary.LittleEndian.Uint16(b.buf[b.shift+offset:])
}

// SetU16 writes a little endian 16 bit value at a shift relative offset.
func (b *Buffer) SetU16(offset int, v uint16) {
	binary.LittleEndian.PutUint16(b.buf[b.shift+offset:], v)
}

// AbsU16 reads a little endian 16 bit value at an absolute offset.
func (b *Buffer) AbsU16(offset int) uint16 {
	return binary.LittleEndian.Uint16(b.buf[offset:])
}

// SetAbsU16 writes a little endian 16 bit value at an absolute offset.
func (b *Buffer) SetAbsU16(offset int, v uint16) {
	binary.LittleEndian.PutUint16(b.buf[offset:], v)
}

// Region returns n bytes at a shift relative offset, shared with the buffer.
func (b *Buffer) Region(offset, n int) []byte {
	start := b.shift + offset
	return b.buf[start : start+n]
}

// Candidate is one checksum hypothesis: the checksum it predicts for a buffer
// and the verdict it stands for.
type Candidate[V any] struct {
	Predict func(raw uint32, buf []byte) uint32
	Verdict V
}

// Resolve tries the candidates in order and returns the verdict of the first
// whose prediction equals the stored checksum.
func Resolve[V any](b *Buffer, candidates []Candidate[V]) (V, error) {
	stored := b.Checksum()
	raw := b.RawChecksum()

	predicted := make([]uint32, 0, len(candidates))
	for _, c := range candidates {
		p := c.Predict(raw, b.buf)
		if p == stored {
			return c.Verdict, nil
		}
		predicted = append(predicted, p)
	}

	var zero V
	return zero, &ChecksumMismatchError{
		Stored:     stored,
		Candidates: predicted,
		Actual:     raw,
		Shift:      b.shift,
		Attempts:   len(candidates),
	}
}
