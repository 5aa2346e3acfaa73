package save

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize      = errors.New("invalid save size")
	ErrInvalidShift     = errors.New("invalid shift")
	ErrInvalidGameName  = errors.New("invalid game name")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// SizeError reports a buffer shorter than the save format.
type SizeError struct {
	Len      int
	Expected int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: got %d bytes, need %d", ErrInvalidSize, e.Len, e.Expected)
}

func (e *SizeError) Unwrap() error {
	return ErrInvalidSize
}

// ShiftError reports a base offset that is unaligned or above the maximum.
type ShiftError struct {
	Shift int
	Max   int
}

func (e *ShiftError) Error() string {
	return fmt.Sprintf("%s: 0x%x (must be a multiple of 4 and at most 0x%x)", ErrInvalidShift, e.Shift, e.Max)
}

func (e *ShiftError) Unwrap() error {
	return ErrInvalidShift
}

// GameNameError reports a signature that does not match the format.
type GameNameError struct {
	Name []byte
}

func (e *GameNameError) Error() string {
	return fmt.Sprintf("%s: %02x", ErrInvalidGameName, e.Name)
}

func (e *GameNameError) Unwrap() error {
	return ErrInvalidGameName
}

// ChecksumMismatchError reports that no checksum hypothesis matched the
// stored checksum.
type ChecksumMismatchError struct {
	Stored     uint32
	Candidates []uint32 // predicted checksums in the order they were tried
	Actual     uint32   // raw sum of the buffer without the checksum field
	Shift      int
	Attempts   int
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("%s: stored 0x%08x, candidates %08x, raw sum 0x%08x, shift 0x%x, %d attempts",
		ErrChecksumMismatch, e.Stored, e.Candidates, e.Actual, e.Shift, e.Attempts)
}

func (e *ChecksumMismatchError) Unwrap() error {
	return ErrChecksumMismatch
}
