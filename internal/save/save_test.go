package save

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

var testLayout = Layout{
	Name:           "test",
	Size:           0x40,
	MaskOffset:     0x10,
	ShiftOffset:    0x14,
	MaxShift:       0x08,
	GameNameOffset: 0x20,
	GameName:       []byte("TEST"),
	ChecksumOffset: 0x18,
	ExportSize:     0x80,
}

// testSave returns an unmasked buffer with a valid signature and a checksum
// of raw sum + 1.
func testSave(shift int) []byte {
	buf := make([]byte, testLayout.Size)
	binary.LittleEndian.PutUint32(buf[testLayout.MaskOffset:], 0x5a)
	binary.LittleEndian.PutUint32(buf[testLayout.ShiftOffset:], uint32(shift))
	copy(buf[shift+testLayout.GameNameOffset:], testLayout.GameName)
	buf[0x3f] = 0x42

	checksumOffset := shift + testLayout.ChecksumOffset
	binary.LittleEndian.PutUint32(buf[checksumOffset:], RawChecksum(buf, checksumOffset)+1)
	return buf
}

func masked(buf []byte) []byte {
	out := append([]byte(nil), buf...)
	Mask(out, testLayout.MaskOffset)
	return out
}

var testCandidates = []Candidate[string]{
	{Predict: func(raw uint32, _ []byte) uint32 { return raw + 2 }, Verdict: "two"},
	{Predict: func(raw uint32, _ []byte) uint32 { return raw + 1 }, Verdict: "one"},
}

func TestDecode(t *testing.T) {
	for _, shift := range []int{0, 4, 8} {
		plain := testSave(shift)
		b, err := Decode(masked(plain), &testLayout)
		assert.NoError(t, err)
		assert.Equal(t, shift, b.Shift())
		assert.Equal(t, plain, b.Bytes())
		assert.Equal(t, b.RawChecksum()+1, b.Checksum())

		verdict, err := Resolve(b, testCandidates)
		assert.NoError(t, err)
		assert.Equal(t, "one", verdict)
	}
}

func TestDecodeDoesNotModifyInput(t *testing.T) {
	raw := masked(testSave(0))
	original := append([]byte(nil), raw...)
	_, err := Decode(raw, &testLayout)
	assert.NoError(t, err)
	assert.Equal(t, original, raw)
}

func TestDecodeErrors(t *testing.T) {
	t.Run("size", func(t *testing.T) {
		_, err := Decode(make([]byte, testLayout.Size-1), &testLayout)
		assert.True(t, errors.Is(err, ErrInvalidSize))
		var sizeErr *SizeError
		assert.True(t, errors.As(err, &sizeErr))
		assert.Equal(t, testLayout.Size-1, sizeErr.Len)
	})

	t.Run("unaligned shift", func(t *testing.T) {
		plain := testSave(0)
		binary.LittleEndian.PutUint32(plain[testLayout.ShiftOffset:], 2)
		_, err := Decode(masked(plain), &testLayout)
		assert.True(t, errors.Is(err, ErrInvalidShift))
	})

	t.Run("shift above maximum", func(t *testing.T) {
		plain := testSave(0)
		binary.LittleEndian.PutUint32(plain[testLayout.ShiftOffset:], 0x0c)
		_, err := Decode(masked(plain), &testLayout)
		var shiftErr *ShiftError
		assert.True(t, errors.As(err, &shiftErr))
		assert.Equal(t, 0x0c, shiftErr.Shift)
	})

	t.Run("game name", func(t *testing.T) {
		plain := testSave(0)
		plain[testLayout.GameNameOffset] = 'X'
		_, err := Decode(masked(plain), &testLayout)
		assert.True(t, errors.Is(err, ErrInvalidGameName))
	})

	t.Run("unmasked input has a broken signature", func(t *testing.T) {
		_, err := Decode(testSave(0), &testLayout)
		assert.Error(t, err)
	})
}

func TestResolveMismatch(t *testing.T) {
	plain := testSave(4)
	plain[0x30]++
	b, err := Decode(masked(plain), &testLayout)
	assert.NoError(t, err)

	_, err = Resolve(b, testCandidates)
	assert.True(t, errors.Is(err, ErrChecksumMismatch))

	var mismatch *ChecksumMismatchError
	assert.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 2, mismatch.Attempts)
	assert.Equal(t, 4, mismatch.Shift)
	assert.Equal(t, b.RawChecksum(), mismatch.Actual)
	assert.Equal(t, []uint32{mismatch.Actual + 2, mismatch.Actual + 1}, mismatch.Candidates)
	assert.Equal(t, mismatch.Actual, mismatch.Stored)
}

func TestFromWRAM(t *testing.T) {
	plain := testSave(8)
	plain[testLayout.GameNameOffset+8] = 'X'

	b, err := FromWRAM(plain, &testLayout)
	assert.NoError(t, err)
	assert.Equal(t, 8, b.Shift())
	assert.Equal(t, plain, b.Bytes())
}

func TestMaskInvolution(t *testing.T) {
	plain := testSave(0)
	buf := masked(plain)
	assert.False(t, bytes.Equal(plain, buf))
	Mask(buf, testLayout.MaskOffset)
	assert.Equal(t, plain, buf)
}

func TestExport(t *testing.T) {
	raw := masked(testSave(4))
	b, err := Decode(raw, &testLayout)
	assert.NoError(t, err)

	exported := b.Export()
	assert.Equal(t, testLayout.ExportSize, len(exported))
	assert.Equal(t, raw, exported[:testLayout.Size])
	assert.Equal(t, make([]byte, testLayout.ExportSize-testLayout.Size), exported[testLayout.Size:])

	again, err := Decode(exported, &testLayout)
	assert.NoError(t, err)
	assert.Equal(t, b.Bytes(), again.Bytes())

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	assert.NoError(t, err)
	assert.Equal(t, int64(testLayout.ExportSize), n)
	assert.Equal(t, exported, out.Bytes())
}

func TestAccessors(t *testing.T) {
	b, err := Decode(masked(testSave(4)), &testLayout)
	assert.NoError(t, err)

	b.SetU16(0x28, 0x1234)
	assert.Equal(t, uint16(0x1234), b.U16(0x28))
	assert.Equal(t, uint16(0x1234), b.AbsU16(0x2c))
	assert.Equal(t, byte(0x34), b.U8(0x28))
	assert.Equal(t, []byte{0x34, 0x12}, b.Region(0x28, 2))

	c := b.Clone()
	c.SetU8(0x28, 0)
	assert.Equal(t, byte(0x34), b.U8(0x28))

	b.SetAbsU16(0x00, 0xbeef)
	assert.Equal(t, uint16(0xbeef), b.AbsU16(0x00))

	b.SetChecksum(b.RawChecksum() + 1)
	verdict, err := Resolve(b, testCandidates)
	assert.NoError(t, err)
	assert.Equal(t, "one", verdict)
}

func TestGrid(t *testing.T) {
	g := NewGrid(3, 2)
	assert.Equal(t, 6, len(g.Cells))
	assert.Equal(t, -1, g.At(1, 2))
	g.Set(1, 2, 4)
	assert.Equal(t, 4, g.At(1, 2))
	assert.Equal(t, 4, g.Cells[5])
}
