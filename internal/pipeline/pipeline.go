// Package pipeline orchestrates the save processing workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/bndata/internal/detector"
	"github.com/retroenv/bndata/internal/game/bn1"
	"github.com/retroenv/bndata/internal/game/bn2"
	"github.com/retroenv/bndata/internal/game/bn4"
	"github.com/retroenv/bndata/internal/loader"
	"github.com/retroenv/bndata/internal/options"
	"github.com/retroenv/bndata/internal/rom"
	"github.com/retroenv/bndata/internal/save"
	"github.com/retroenv/bndata/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

var (
	// ErrUnknownFormat is returned for files no save format accepts.
	ErrUnknownFormat = errors.New("unknown save format")
	// ErrNoOffsets is returned when a cartridge revision has no offset table.
	ErrNoOffsets = errors.New("no offset table for cartridge revision")
	// ErrGameMismatch is returned when the cartridge does not belong to the save.
	ErrGameMismatch = errors.New("cartridge does not match the save")
)

// Format is a supported save format.
type Format struct {
	Name   string
	Game   detector.Game // empty for formats without cartridge assets
	Decode verification.Decoder
}

// Formats lists the save formats in the order they are tried.
var Formats = []Format{
	{
		Name: bn4.Layout.Name,
		Game: detector.BN4,
		Decode: func(raw []byte) (save.Save, error) {
			s, err := bn4.New(raw)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	},
	{
		Name: bn2.Layout.Name,
		Decode: func(raw []byte) (save.Save, error) {
			s, err := bn2.New(raw)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	},
}

// Result is the outcome of processing one save.
type Result struct {
	Format  Format
	Save    save.Save
	Release *detector.Release // nil without a cartridge image
	Assets  rom.Assets        // nil without a cartridge image
	Report  verification.Report

	// Output is the rebuilt save file, nil unless a rebuild was requested.
	Output []byte
}

// Pipeline orchestrates the complete save processing workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new save processing pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the input files and runs the pipeline on them.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (*Result, error) {
	files, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading files: %w", err)
	}
	return p.ExecuteWithFiles(ctx, files, opts)
}

// ExecuteWithFiles runs the pipeline on already loaded files: decode the
// save, open the cartridge assets, check the derived caches and rebuild them
// if requested.
func (p *Pipeline) ExecuteWithFiles(ctx context.Context, files *loader.Files, opts options.Program) (*Result, error) {
	format, s, err := p.decodeSave(files.Save)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Format: format,
		Save:   s,
	}
	p.printInfo(opts, result)

	if files.ROM != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.openAssets(files, result); err != nil {
			return nil, fmt.Errorf("opening cartridge assets: %w", err)
		}
		p.printAssets(result)
		result.Report = verification.CheckDerived(p.logger, result.Save, result.Assets)
	}

	if !opts.Rebuild {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if result.Assets == nil {
		return nil, errors.New("rebuilding a save needs the cartridge assets")
	}

	s.Rebuild(result.Assets)
	result.Output = s.Buffer().Export()
	if err := verification.VerifyOutput(s, result.Output, format.Decode); err != nil {
		return nil, fmt.Errorf("verifying rebuilt save: %w", err)
	}
	p.logger.Info("Rebuilt save",
		log.String("format", format.Name),
		log.Hex("checksum", s.Buffer().Checksum()))
	return result, nil
}

// decodeSave tries every format. Formats that reject the size, shift or
// signature are skipped, any other error belongs to the matching format and
// is returned.
func (p *Pipeline) decodeSave(raw []byte) (Format, save.Save, error) {
	for _, format := range Formats {
		s, err := format.Decode(raw)
		if err == nil {
			return format, s, nil
		}
		if formatMismatch(err) {
			p.logger.Debug("Save format does not match",
				log.String("format", format.Name),
				log.Err(err))
			continue
		}
		return Format{}, nil, fmt.Errorf("decoding %s save: %w", format.Name, err)
	}
	return Format{}, nil, fmt.Errorf("%w: %d bytes", ErrUnknownFormat, len(raw))
}

// formatMismatch reports whether a decode error means the file is not of the
// tried format. Saves of smaller formats are often padded to 64 KiB, so the
// shift word of a larger format can hold arbitrary data.
func formatMismatch(err error) bool {
	return errors.Is(err, save.ErrInvalidSize) ||
		errors.Is(err, save.ErrInvalidShift) ||
		errors.Is(err, save.ErrInvalidGameName)
}

// openAssets detects the cartridge revision and creates the asset view for it.
func (p *Pipeline) openAssets(files *loader.Files, result *Result) error {
	release, err := p.detector.Detect(files.ROM)
	if err != nil {
		return fmt.Errorf("detecting cartridge: %w", err)
	}
	result.Release = &release

	key := release.Revision.Key()
	switch release.Game {
	case detector.BN1:
		offsets, ok := bn1.Revisions[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNoOffsets, key)
		}
		charset := bn1.ENCharset
		if release.Language == detector.Japanese {
			charset = bn1.JACharset
		}
		result.Assets = bn1.New(p.logger, offsets, charset, files.ROM, files.WRAM)

	case detector.BN4:
		offsets, ok := files.BN4Offsets[key]
		if !ok {
			return fmt.Errorf("%w: %s, pass an offset table with -offsets", ErrNoOffsets, key)
		}
		result.Assets = bn4.NewAssets(p.logger, offsets, files.BN4Charset, files.ROM, files.WRAM)
	}

	if result.Format.Game != release.Game {
		return fmt.Errorf("%w: %s save, %s cartridge", ErrGameMismatch, result.Format.Name, release.Game)
	}
	return nil
}

// printInfo logs the save header and game specific details.
func (p *Pipeline) printInfo(opts options.Program, result *Result) {
	if opts.Quiet {
		return
	}

	buf := result.Save.Buffer()
	p.logger.Info("Processing save",
		log.String("file", opts.Input),
		log.String("format", result.Format.Name),
		log.Int("shift", buf.Shift()),
		log.Hex("checksum", buf.Checksum()))

	if s, ok := result.Save.(*bn4.Save); ok {
		info := s.GameInfo()
		p.logger.Info("Game",
			log.Stringer("variant", info.Variant),
			log.Stringer("region", info.Region))
	}
}

// printAssets logs the equipped folder with chip names resolved from the
// cartridge.
func (p *Pipeline) printAssets(result *Result) {
	p.logger.Info("Cartridge",
		log.String("title", result.Release.Revision.Title),
		log.String("revision", result.Release.Revision.Key()),
		log.Int("chips", result.Assets.NumChips()))

	view := result.Save.ChipsView()
	if view == nil {
		return
	}
	folder := view.EquippedFolderIndex()
	for i := 0; i < view.ChipsPerFolder(); i++ {
		chip, ok := view.Chip(folder, i)
		if !ok {
			continue
		}
		name := "?"
		if info, ok := result.Assets.Chip(chip.ID); ok {
			name = info.Name()
		}
		p.logger.Debug("Folder chip",
			log.Int("folder", folder),
			log.Int("index", i),
			log.String("name", name),
			log.String("code", string(chip.Code)))
	}
}
