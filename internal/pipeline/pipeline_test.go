package pipeline

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/bndata/internal/detector"
	"github.com/retroenv/bndata/internal/game/bn2"
	"github.com/retroenv/bndata/internal/game/bn4"
	"github.com/retroenv/bndata/internal/loader"
	"github.com/retroenv/bndata/internal/options"
	"github.com/retroenv/bndata/internal/save"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func sealed(layout *save.Layout, buf []byte, start uint32) []byte {
	copy(buf[layout.GameNameOffset:], layout.GameName)
	binary.LittleEndian.PutUint32(buf[layout.ChecksumOffset:], save.RawChecksum(buf, layout.ChecksumOffset)+start)
	if layout.MaskOffset >= 0 {
		save.Mask(buf, layout.MaskOffset)
	}
	return buf
}

func bn4Save() []byte {
	return sealed(&bn4.Layout, make([]byte, bn4.Layout.Size), 0x16)
}

func bn2Save() []byte {
	return sealed(&bn2.Layout, make([]byte, bn2.Layout.Size), 0x16)
}

func testROM(code string) []byte {
	rom := make([]byte, 0x2000)
	copy(rom[0xa0:], "TESTGAME")
	copy(rom[0xac:], code)
	return rom
}

var testOffsets = map[string]*bn4.Offsets{
	"B4WE_00": {
		ChipData:                  0x08001000,
		ChipNamesPointers:         [2]uint32{0x08000010, 0x08000014},
		ChipDescriptionsPointers:  [2]uint32{0x08000018, 0x0800001c},
		ChipIconPalettePointer:    0x08000020,
		ElementIconPalettePointer: 0x08000024,
		ElementIconsPointer:       0x08000028,
		NavicustPartData:          0x08000e00,
		NavicustPartNamesPointer:  0x0800002c,
		NavicustPartDescsPointer:  0x08000030,
	},
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestExecuteWithFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("bn4 save", func(t *testing.T) {
		p := New(log.NewTestLogger(t))
		result, err := p.ExecuteWithFiles(ctx, &loader.Files{Save: bn4Save()}, options.Program{})
		assert.NoError(t, err)
		assert.Equal(t, "bn4", result.Format.Name)
		assert.Nil(t, result.Release)
		assert.Nil(t, result.Output)

		s, ok := result.Save.(*bn4.Save)
		assert.True(t, ok)
		assert.Equal(t, bn4.RedSun, s.GameInfo().Variant)
	})

	t.Run("bn2 save", func(t *testing.T) {
		p := New(log.NewTestLogger(t))
		result, err := p.ExecuteWithFiles(ctx, &loader.Files{Save: bn2Save()}, options.Program{})
		assert.NoError(t, err)
		assert.Equal(t, "bn2", result.Format.Name)
	})

	t.Run("padded bn2 save", func(t *testing.T) {
		raw := make([]byte, 0x10000)
		// a shift word bn4 rejects
		raw[bn4.Layout.ShiftOffset] = 0x01
		raw = sealed(&bn2.Layout, raw, 0x16)

		_, err := bn4.New(raw)
		assert.True(t, errors.Is(err, save.ErrInvalidShift))

		p := New(log.NewTestLogger(t))
		result, err := p.ExecuteWithFiles(ctx, &loader.Files{Save: raw}, options.Program{})
		assert.NoError(t, err)
		assert.Equal(t, "bn2", result.Format.Name)
	})

	t.Run("unknown format", func(t *testing.T) {
		p := New(log.NewTestLogger(t))
		_, err := p.ExecuteWithFiles(ctx, &loader.Files{Save: make([]byte, 0x100)}, options.Program{})
		assert.True(t, errors.Is(err, ErrUnknownFormat))
	})

	t.Run("checksum mismatch is not skipped", func(t *testing.T) {
		raw := bn4Save()
		raw[0x100] ^= 0x01
		p := New(log.NewTestLogger(t))
		_, err := p.ExecuteWithFiles(ctx, &loader.Files{Save: raw}, options.Program{})
		assert.True(t, errors.Is(err, save.ErrChecksumMismatch))
	})

	t.Run("rebuild", func(t *testing.T) {
		p := New(log.NewTestLogger(t))
		files := &loader.Files{
			Save:       bn4Save(),
			ROM:        testROM("B4WE"),
			BN4Offsets: testOffsets,
		}
		result, err := p.ExecuteWithFiles(ctx, files, options.Program{Flags: options.Flags{Rebuild: true}})
		assert.NoError(t, err)
		assert.Equal(t, detector.BN4, result.Release.Game)
		assert.NotNil(t, result.Assets)
		assert.Equal(t, bn4.ExportSize, len(result.Output))

		rebuilt, err := bn4.New(result.Output)
		assert.NoError(t, err)
		assert.Equal(t, rebuilt.ComputeChecksum(), rebuilt.Checksum())
	})

	t.Run("bn4 charset", func(t *testing.T) {
		cartridge := testROM("B4WE")
		binary.LittleEndian.PutUint32(cartridge[0x10:], 0x08000800)
		copy(cartridge[0x800:], []byte{0x02, 0x00, 0x01, 0xe6})

		p := New(log.NewTestLogger(t))
		files := &loader.Files{
			Save:       bn4Save(),
			ROM:        cartridge,
			BN4Offsets: testOffsets,
			BN4Charset: []string{" ", "Cannon"},
		}
		result, err := p.ExecuteWithFiles(ctx, files, options.Program{})
		assert.NoError(t, err)
		chip, ok := result.Assets.Chip(0)
		assert.True(t, ok)
		assert.Equal(t, "Cannon", chip.Name())
	})

	t.Run("rebuild without cartridge", func(t *testing.T) {
		p := New(log.NewTestLogger(t))
		_, err := p.ExecuteWithFiles(ctx, &loader.Files{Save: bn4Save()}, options.Program{Flags: options.Flags{Rebuild: true}})
		assert.ErrorContains(t, err, "needs the cartridge assets")
	})

	t.Run("missing offsets", func(t *testing.T) {
		p := New(log.NewTestLogger(t))
		files := &loader.Files{Save: bn4Save(), ROM: testROM("B4BE")}
		_, err := p.ExecuteWithFiles(ctx, files, options.Program{})
		assert.True(t, errors.Is(err, ErrNoOffsets))
	})

	t.Run("cartridge of another game", func(t *testing.T) {
		p := New(log.NewTestLogger(t))
		files := &loader.Files{Save: bn4Save(), ROM: testROM("AREE")}
		_, err := p.ExecuteWithFiles(ctx, files, options.Program{})
		assert.True(t, errors.Is(err, ErrGameMismatch))
	})

	t.Run("cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		p := New(log.NewTestLogger(t))
		files := &loader.Files{Save: bn4Save(), ROM: testROM("B4WE"), BN4Offsets: testOffsets}
		_, err := p.ExecuteWithFiles(cancelled, files, options.Program{})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestExecute(t *testing.T) {
	t.Setenv("BNDATA_OFFSETS", "")

	path := filepath.Join(t.TempDir(), "game.sav")
	assert.NoError(t, os.WriteFile(path, bn4Save(), 0600))

	p := New(log.NewTestLogger(t))
	result, err := p.Execute(context.Background(), options.Program{
		Parameters: options.Parameters{Input: path},
	})
	assert.NoError(t, err)
	assert.Equal(t, "bn4", result.Format.Name)

	_, err = p.Execute(context.Background(), options.Program{
		Parameters: options.Parameters{Input: filepath.Join(t.TempDir(), "missing.sav")},
	})
	assert.ErrorContains(t, err, "loading files")
}
