// Package verification checks the derived fields of a save against the
// values recomputed from its primary fields, and verifies that a rebuilt
// save decodes back to the same contents.
package verification

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/retroenv/bndata/internal/abd"
	"github.com/retroenv/bndata/internal/navicust"
	"github.com/retroenv/bndata/internal/rom"
	"github.com/retroenv/bndata/internal/save"
	"github.com/retroenv/retrogolib/log"
)

// ErrOutputMismatch is returned when a written save does not decode back to
// the contents it was written from.
var ErrOutputMismatch = errors.New("output does not recreate the save")

// Decoder decodes a save file.
type Decoder func(raw []byte) (save.Save, error)

// Report lists the derived caches that do not match their primary fields.
type Report struct {
	AutoBattleDataStale bool
	NavicustStale       bool
}

// Stale returns whether any cache needs a rebuild.
func (r Report) Stale() bool {
	return r.AutoBattleDataStale || r.NavicustStale
}

// CheckDerived recomputes the derived caches without modifying the save.
// Formats without the corresponding view are skipped.
func CheckDerived(logger *log.Logger, s save.Save, assets rom.Assets) Report {
	var report Report

	if view := s.AutoBattleDataView(); view != nil {
		expected := abd.Materialize(view, assets)
		if !slices.Equal(expected[:], view.Materialized()) {
			report.AutoBattleDataStale = true
			logger.Warn("Auto battle data cache does not match chip usage")
		}
	}

	if view := s.NavicustView(); view != nil {
		stored, ok := view.Precomposed()
		if ok {
			expected := navicust.Compose(view, assets)
			if !slices.Equal(expected.Cells, stored.Cells) {
				report.NavicustStale = true
				logger.Warn("Navicust cache does not match part placements")
			}
		}
	}

	return report
}

// VerifyOutput decodes the written file and compares it with the save it was
// written from.
func VerifyOutput(s save.Save, output []byte, decode Decoder) error {
	decoded, err := decode(output)
	if err != nil {
		return fmt.Errorf("decoding output: %w", err)
	}

	if !bytes.Equal(decoded.Buffer().Bytes(), s.Buffer().Bytes()) {
		return ErrOutputMismatch
	}
	if decoded.ComputeChecksum() != decoded.Buffer().Checksum() {
		return fmt.Errorf("%w: checksum 0x%08x, expected 0x%08x",
			ErrOutputMismatch, decoded.Buffer().Checksum(), decoded.ComputeChecksum())
	}
	return nil
}
