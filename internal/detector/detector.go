// Package detector identifies the game and revision of a GBA cartridge image
// from its header.
package detector

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/retroenv/retrogolib/log"
)

const (
	titleOffset    = 0xa0
	titleLength    = 12
	gameCodeOffset = 0xac
	gameCodeLength = 4
	versionOffset  = 0xbc
	headerSize     = 0xc0
)

// Game is a supported game family.
type Game string

const (
	BN1 Game = "bn1"
	BN4 Game = "bn4"
)

// Language is the text language of a release.
type Language string

const (
	English  Language = "en"
	Japanese Language = "ja"
)

var (
	// ErrHeader is returned for images too short to hold a cartridge header.
	ErrHeader = errors.New("invalid cartridge header")
	// ErrUnsupported is returned for revisions that are not known.
	ErrUnsupported = errors.New("unsupported cartridge revision")
)

// Revision identifies a cartridge image.
type Revision struct {
	Title    string
	GameCode string
	Version  uint8
}

// Key returns the revision name used in offset tables, for example AREE_00.
func (r Revision) Key() string {
	return fmt.Sprintf("%s_%02d", r.GameCode, r.Version)
}

// Release describes what is known about a revision.
type Release struct {
	Revision Revision
	Game     Game
	Language Language
}

// families maps the first three letters of the game code, the fourth letter
// is the region.
var families = map[string]Game{
	"ARE": BN1,
	"B4W": BN4,
	"B4B": BN4,
}

var languages = map[byte]Language{
	'E': English,
	'J': Japanese,
}

// Detector identifies cartridge images.
type Detector struct {
	logger *log.Logger
}

// New creates a new cartridge detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// ReadRevision parses the cartridge header.
func ReadRevision(rom []byte) (Revision, error) {
	if len(rom) < headerSize {
		return Revision{}, fmt.Errorf("%w: image has %d bytes", ErrHeader, len(rom))
	}

	return Revision{
		Title:    strings.TrimRight(string(rom[titleOffset:titleOffset+titleLength]), "\x00"),
		GameCode: string(rom[gameCodeOffset : gameCodeOffset+gameCodeLength]),
		Version:  rom[versionOffset],
	}, nil
}

// Detect returns the release of the cartridge image.
func (d *Detector) Detect(rom []byte) (Release, error) {
	rev, err := ReadRevision(rom)
	if err != nil {
		return Release{}, err
	}

	game, ok := families[rev.GameCode[:3]]
	if !ok {
		return Release{}, fmt.Errorf("%w: %s (%s), supported game codes start with %s",
			ErrUnsupported, rev.Key(), rev.Title, strings.Join(GameCodePrefixes(), ", "))
	}
	language, ok := languages[rev.GameCode[3]]
	if !ok {
		return Release{}, fmt.Errorf("%w: %s has an unknown region", ErrUnsupported, rev.Key())
	}

	d.logger.Debug("Detected cartridge",
		log.String("title", rev.Title),
		log.String("revision", rev.Key()),
		log.String("game", string(game)),
		log.String("language", string(language)))

	return Release{
		Revision: rev,
		Game:     game,
		Language: language,
	}, nil
}

// GameCodePrefixes returns the supported game code prefixes in sorted order.
func GameCodePrefixes() []string {
	prefixes := make([]string, 0, len(families))
	for prefix := range families {
		prefixes = append(prefixes, prefix)
	}
	slices.Sort(prefixes)
	return prefixes
}
