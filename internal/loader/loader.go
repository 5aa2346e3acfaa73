// Package loader handles reading the save, cartridge and memory files.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/bndata/internal/config"
	"github.com/retroenv/bndata/internal/game/bn4"
	"github.com/retroenv/bndata/internal/options"
	"github.com/retroenv/bndata/internal/text"
)

// Files holds the contents of all input files. Optional inputs that were not
// given are nil.
type Files struct {
	Save []byte
	ROM  []byte
	WRAM []byte

	// BN4Offsets maps revision keys to offset tables.
	BN4Offsets map[string]*bn4.Offsets
	// BN4Charset is nil when no charset file was given.
	BN4Charset []string
}

// Loader handles loading input files from disk.
type Loader struct{}

// New creates a new file loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the save file and every optional input named in the options.
func (l *Loader) Load(opts options.Program) (*Files, error) {
	files := &Files{}

	var err error
	files.Save, err = os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading save file %s: %w", opts.Input, err)
	}

	if opts.ROM != "" {
		files.ROM, err = os.ReadFile(opts.ROM)
		if err != nil {
			return nil, fmt.Errorf("reading cartridge image %s: %w", opts.ROM, err)
		}
	}

	if opts.WRAM != "" {
		files.WRAM, err = os.ReadFile(opts.WRAM)
		if err != nil {
			return nil, fmt.Errorf("reading working memory dump %s: %w", opts.WRAM, err)
		}
	}

	if name := config.OffsetsFile(opts.Offsets); name != "" {
		files.BN4Offsets, err = bn4.LoadOffsets(name)
		if err != nil {
			return nil, fmt.Errorf("reading offset table %s: %w", name, err)
		}
	}

	if opts.Charset != "" {
		data, err := os.ReadFile(opts.Charset)
		if err != nil {
			return nil, fmt.Errorf("reading charset %s: %w", opts.Charset, err)
		}
		files.BN4Charset = text.ParseCharset(data)
	}

	return files, nil
}
