package text

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func testOptions() *Options {
	charset := make([]string, 0x100+0x10)
	for i := range charset {
		charset[i] = "?"
	}
	charset[0x00] = " "
	charset[0x01] = "A"
	charset[0x02] = "B"
	charset[0x03] = "C"
	charset[0xe5] = "!"
	charset[0xe5+0x0f] = "*"

	return &Options{
		Charset:      charset,
		ExtensionOps: OpRange{First: 0xe5, Count: 2},
		EOF:          0xe7,
		NewLine:      0xe8,
		Commands:     map[byte]int{0xf0: 2},
	}
}

func TestParse(t *testing.T) {
	opts := testOptions()

	t.Run("literal", func(t *testing.T) {
		parts, err := Parse([]byte{0x01, 0x02, 0x00, 0x03, 0xe7, 0x01}, opts)
		assert.NoError(t, err)
		assert.Equal(t, []Part{Literal{Text: "AB C"}}, parts)
	})

	t.Run("newline splits literals", func(t *testing.T) {
		parts, err := Parse([]byte{0x01, 0xe8, 0x02, 0xe7}, opts)
		assert.NoError(t, err)
		assert.Equal(t, []Part{
			Literal{Text: "A"},
			Command{Op: 0xe8},
			Literal{Text: "B"},
		}, parts)
	})

	t.Run("extension resolves through charset", func(t *testing.T) {
		parts, err := Parse([]byte{0x01, 0xe5, 0x00, 0xe5, 0x0f, 0xe7}, opts)
		assert.NoError(t, err)
		assert.Equal(t, []Part{Literal{Text: "A!*"}}, parts)
	})

	t.Run("extension beyond charset is a command", func(t *testing.T) {
		parts, err := Parse([]byte{0x01, 0xe6, 0x40, 0x02, 0xe7}, opts)
		assert.NoError(t, err)
		assert.Equal(t, []Part{
			Literal{Text: "A"},
			Command{Op: 0xe6, Args: []byte{0x40}},
			Literal{Text: "B"},
		}, parts)
		assert.Equal(t, "AB", Flatten(parts))
	})

	t.Run("command arguments", func(t *testing.T) {
		parts, err := Parse([]byte{0xf0, 0x12, 0x34, 0x03, 0xe7}, opts)
		assert.NoError(t, err)
		assert.Equal(t, []Part{
			Command{Op: 0xf0, Args: []byte{0x12, 0x34}},
			Literal{Text: "C"},
		}, parts)
	})

	t.Run("truncated command", func(t *testing.T) {
		_, err := Parse([]byte{0xf0, 0x12}, opts)
		assert.True(t, errors.Is(err, ErrTruncated))

		_, err = Parse([]byte{0x01, 0xe5}, opts)
		assert.True(t, errors.Is(err, ErrTruncated))
	})

	t.Run("unknown byte", func(t *testing.T) {
		_, err := Parse([]byte{0x01, 0xf5, 0xe7}, opts)
		assert.True(t, errors.Is(err, ErrUnknownByte))
	})
}

func TestParseEntryDelimited(t *testing.T) {
	opts := testOptions()
	archive := []byte{
		0x01, 0xe7, // "A"
		0xf0, 0xe7, 0xe7, 0x02, 0xe7, // command with an EOF valued argument, "B"
		0xe7, // empty
	}

	parts, err := ParseEntry(archive, 0, Delimited, opts)
	assert.NoError(t, err)
	assert.Equal(t, "A", Flatten(parts))

	parts, err = ParseEntry(archive, 1, Delimited, opts)
	assert.NoError(t, err)
	assert.Equal(t, "B", Flatten(parts))

	parts, err = ParseEntry(archive, 2, Delimited, opts)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(parts))

	for _, i := range []int{3, 4, 100, -1} {
		_, err = ParseEntry(archive, i, Delimited, opts)
		assert.True(t, errors.Is(err, ErrNoSuchEntry))
	}
}

func TestParseEntryIndexed(t *testing.T) {
	opts := testOptions()
	archive := []byte{
		0x04, 0x00, 0x06, 0x00, // two entries
		0x01, 0xe7,
		0x02, 0x03, 0xe7,
	}
	assert.Equal(t, 2, EntryCount(archive))

	parts, err := ParseEntry(archive, 1, Indexed, opts)
	assert.NoError(t, err)
	assert.Equal(t, "BC", Flatten(parts))

	_, err = ParseEntry(archive, 2, Indexed, opts)
	assert.True(t, errors.Is(err, ErrNoSuchEntry))

	_, err = ParseEntry([]byte{0x08, 0x00}, 0, Indexed, opts)
	assert.True(t, errors.Is(err, ErrNoSuchEntry))
}

func TestParseEntryDeterministic(t *testing.T) {
	opts := testOptions()
	archive := []byte{0x01, 0xe8, 0x02, 0xe7, 0x03, 0xe7}

	first, err := ParseEntry(archive, 0, Delimited, opts)
	assert.NoError(t, err)
	second, err := ParseEntry(archive, 0, Delimited, opts)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseCharset(t *testing.T) {
	assert.Equal(t, 0, len(ParseCharset(nil)))
	assert.Equal(t, []string{" ", "A", "", "B"}, ParseCharset([]byte(" \nA\n\nB\n")))
	assert.Equal(t, []string{"A", "B"}, ParseCharset([]byte("A\r\nB")))

	opts := &Options{Charset: ParseCharset([]byte("A\nB\n")), EOF: 0xff, NewLine: 0xfe}
	parts, err := Parse([]byte{0x01, 0x00, 0xff}, opts)
	assert.NoError(t, err)
	assert.Equal(t, "BA", Flatten(parts))
}
