// Package text decodes the escape coded string archives stored in the
// cartridge image.
package text

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Placeholder is shown instead of strings that can not be decoded.
const Placeholder = "???"

var (
	// ErrNoSuchEntry is returned for entry indexes beyond the archive.
	ErrNoSuchEntry = errors.New("no such entry")
	// ErrUnknownByte is returned for bytes that are neither a command nor in the charset.
	ErrUnknownByte = errors.New("byte not in charset")
	// ErrTruncated is returned when a command is missing argument bytes.
	ErrTruncated = errors.New("truncated command")
)

// Part is a piece of a decoded string, either a Literal or a Command.
type Part interface {
	isPart()
}

// Literal is a run of displayable text.
type Literal struct {
	Text string
}

// Command is an embedded control code with its argument bytes.
type Command struct {
	Op   byte
	Args []byte
}

func (Literal) isPart() {}
func (Command) isPart() {}

// Layout describes how the entries of an archive are located.
type Layout int

const (
	// Delimited archives store entries back to back, each ended by the EOF op.
	Delimited Layout = iota
	// Indexed archives start with a table of little endian 16 bit entry offsets.
	Indexed
)

// Options configures the decoder for a game and language.
type Options struct {
	// Charset maps byte values to display strings. Indexes at and above the
	// first extension op are reached through extension op sequences.
	Charset []string

	ExtensionOps OpRange
	EOF          byte
	NewLine      byte

	// Commands maps control opcodes to their argument byte count.
	Commands map[byte]int
}

// OpRange is a run of Count consecutive opcodes starting at First.
type OpRange struct {
	First byte
	Count int
}

// Contains returns whether the opcode is in the range.
func (r OpRange) Contains(b byte) bool {
	return r.Count > 0 && b >= r.First && int(b-r.First) < r.Count
}

func (o *Options) isExtension(b byte) bool {
	return o.ExtensionOps.Contains(b)
}

// charsetIndex maps a plain byte to its charset index.
func (o *Options) charsetIndex(b byte) (int, bool) {
	if o.ExtensionOps.Count > 0 && b >= o.ExtensionOps.First {
		return 0, false
	}
	if int(b) >= len(o.Charset) {
		return 0, false
	}
	return int(b), true
}

// Parse decodes bytes up to the first EOF op or the end of the buffer.
func Parse(buf []byte, opts *Options) ([]Part, error) {
	parts, _, err := parse(buf, opts)
	return parts, err
}

// parse returns the decoded parts and the number of bytes consumed including
// the EOF op.
func parse(buf []byte, opts *Options) ([]Part, int, error) {
	var parts []Part
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			parts = append(parts, Literal{Text: literal.String()})
			literal.Reset()
		}
	}

	pos := 0
	for pos < len(buf) {
		b := buf[pos]
		pos++

		switch {
		case b == opts.EOF:
			flush()
			return parts, pos, nil

		case b == opts.NewLine:
			flush()
			parts = append(parts, Command{Op: b})

		case opts.isExtension(b):
			if pos >= len(buf) {
				return nil, pos, fmt.Errorf("%w: extension 0x%02x at %d", ErrTruncated, b, pos-1)
			}
			c := buf[pos]
			pos++

			index := int(opts.ExtensionOps.First) + int(b-opts.ExtensionOps.First)*0x100 + int(c)
			if index < len(opts.Charset) {
				literal.WriteString(opts.Charset[index])
				continue
			}
			flush()
			parts = append(parts, Command{Op: b, Args: []byte{c}})

		default:
			if n, ok := opts.Commands[b]; ok {
				if pos+n > len(buf) {
					return nil, pos, fmt.Errorf("%w: command 0x%02x at %d needs %d bytes", ErrTruncated, b, pos-1, n)
				}
				flush()
				args := make([]byte, n)
				copy(args, buf[pos:pos+n])
				pos += n
				parts = append(parts, Command{Op: b, Args: args})
				continue
			}

			index, ok := opts.charsetIndex(b)
			if !ok {
				return nil, pos, fmt.Errorf("%w: 0x%02x at %d", ErrUnknownByte, b, pos-1)
			}
			literal.WriteString(opts.Charset[index])
		}
	}

	flush()
	return parts, pos, nil
}

// ParseEntry decodes entry i of an archive.
func ParseEntry(buf []byte, i int, layout Layout, opts *Options) ([]Part, error) {
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchEntry, i)
	}

	switch layout {
	case Indexed:
		return parseIndexed(buf, i, opts)
	default:
		return parseDelimited(buf, i, opts)
	}
}

func parseDelimited(buf []byte, i int, opts *Options) ([]Part, error) {
	pos := 0
	for n := 0; n < i; n++ {
		end := indexByte(buf[pos:], opts)
		if end < 0 {
			return nil, fmt.Errorf("%w: %d, archive has %d entries", ErrNoSuchEntry, i, n)
		}
		pos += end + 1
	}

	entry := buf[pos:]
	if indexByte(entry, opts) < 0 {
		return nil, fmt.Errorf("%w: %d, archive has %d entries", ErrNoSuchEntry, i, i)
	}
	parts, _, err := parse(entry, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing entry %d: %w", i, err)
	}
	return parts, nil
}

// indexByte returns the position of the EOF op that ends the first entry of
// buf, skipping over command and extension arguments, or -1.
func indexByte(buf []byte, opts *Options) int {
	for pos := 0; pos < len(buf); pos++ {
		b := buf[pos]
		switch {
		case b == opts.EOF:
			return pos
		case b == opts.NewLine:
		case opts.isExtension(b):
			pos++
		default:
			if n, ok := opts.Commands[b]; ok {
				pos += n
			}
		}
	}
	return -1
}

// EntryCount returns the number of entries of an indexed archive.
func EntryCount(buf []byte) int {
	if len(buf) < 2 {
		return 0
	}
	return int(binary.LittleEndian.Uint16(buf)) / 2
}

func parseIndexed(buf []byte, i int, opts *Options) ([]Part, error) {
	count := EntryCount(buf)
	if i >= count {
		return nil, fmt.Errorf("%w: %d, archive has %d entries", ErrNoSuchEntry, i, count)
	}
	if count*2 > len(buf) {
		return nil, fmt.Errorf("%w: offset table of %d entries exceeds archive", ErrNoSuchEntry, count)
	}

	offset := int(binary.LittleEndian.Uint16(buf[i*2:]))
	end := len(buf)
	if i+1 < count {
		end = int(binary.LittleEndian.Uint16(buf[(i+1)*2:]))
	}
	if offset > end || end > len(buf) {
		return nil, fmt.Errorf("%w: entry %d spans 0x%x-0x%x", ErrNoSuchEntry, i, offset, end)
	}

	parts, _, err := parse(buf[offset:end], opts)
	if err != nil {
		return nil, fmt.Errorf("parsing entry %d: %w", i, err)
	}
	return parts, nil
}

// Flatten joins the literal parts, dropping all commands.
func Flatten(parts []Part) string {
	var sb strings.Builder
	for _, part := range parts {
		if l, ok := part.(Literal); ok {
			sb.WriteString(l.Text)
		}
	}
	return sb.String()
}
