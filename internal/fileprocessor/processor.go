// Package fileprocessor handles file selection and output for save processing
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/bndata/internal/cli"
	"github.com/retroenv/bndata/internal/options"
	"github.com/retroenv/bndata/internal/pipeline"
	"github.com/retroenv/bndata/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile runs the pipeline on one save file and writes the rebuilt save
// if one was produced.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	p := pipeline.New(logger)

	result, err := p.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if result.Report.Stale() && !opts.Rebuild {
		logger.Warn("Derived caches are outdated, pass -rebuild to recompute them",
			log.String("file", opts.Input))
	}

	if opts.Report != "" {
		if err := writeReport(opts.Report, result); err != nil {
			return err
		}
	}

	if result.Output == nil {
		return nil
	}
	if err := os.WriteFile(opts.Output, result.Output, 0o644); err != nil {
		return fmt.Errorf("writing rebuilt save %s: %w", opts.Output, err)
	}
	logger.Info("Wrote save", log.String("file", opts.Output))
	return nil
}

func writeReport(name string, result *pipeline.Result) (err error) {
	var out io.Writer = os.Stdout
	if name != cli.StdoutName {
		file, createErr := os.Create(name)
		if createErr != nil {
			return fmt.Errorf("creating report file %s: %w", name, createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing report file %s: %w", name, closeErr)
			}
		}()
		out = file
	}

	return writer.New(result.Save, result.Assets, out).Write()
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates the rebuilt save filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".rebuilt" + ext
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("bndata", log.String("version", buildinfo.Version(version, commit, date)))
}
