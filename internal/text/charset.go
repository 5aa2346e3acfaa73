package text

import (
	"strings"
)

// ParseCharset reads a charset file with one entry per line, the line number
// being the byte value. Empty lines keep their slot and decode as nothing.
func ParseCharset(data []byte) []string {
	content := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
