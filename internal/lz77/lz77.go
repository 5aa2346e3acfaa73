// Package lz77 decodes the LZ77 (type 0x10) compression used by GBA BIOS calls.
package lz77

import (
	"errors"
	"fmt"
)

// Magic is the first byte of every LZ77 stream.
const Magic = 0x10

var (
	// ErrMagic is returned when the stream does not start with the LZ77 header byte.
	ErrMagic = errors.New("lz77: invalid header")
	// ErrMalformed is returned for truncated streams or back references before the start.
	ErrMalformed = errors.New("lz77: malformed data")
)

// Decode decompresses a stream starting with the 4 byte header: magic byte and
// the 24 bit little endian decompressed size. Trailing input is ignored.
func Decode(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("reading header: %w", ErrMalformed)
	}
	if data[0] != Magic {
		return nil, fmt.Errorf("%w: 0x%02x", ErrMagic, data[0])
	}

	size := int(data[1]) | int(data[2])<<8 | int(data[3])<<16
	out := make([]byte, 0, size)
	pos := 4

	for len(out) < size {
		if pos >= len(data) {
			return nil, fmt.Errorf("reading flags at %d: %w", pos, ErrMalformed)
		}
		flags := data[pos]
		pos++

		for i := 0; i < 8 && len(out) < size; i, flags = i+1, flags<<1 {
			if flags&0x80 == 0 {
				if pos >= len(data) {
					return nil, fmt.Errorf("reading literal at %d: %w", pos, ErrMalformed)
				}
				out = append(out, data[pos])
				pos++
				continue
			}

			if pos+1 >= len(data) {
				return nil, fmt.Errorf("reading reference at %d: %w", pos, ErrMalformed)
			}
			n := int(data[pos])<<8 | int(data[pos+1])
			pos += 2

			count := n>>12 + 3
			disp := n&0xfff + 1
			if disp > len(out) {
				return nil, fmt.Errorf("back reference %d beyond %d bytes: %w", disp, len(out), ErrMalformed)
			}
			for j := 0; j < count && len(out) < size; j++ {
				out = append(out, out[len(out)-disp])
			}
		}
	}

	return out, nil
}
