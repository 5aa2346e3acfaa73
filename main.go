// Package main implements the main entry point for the Battle Network save tool
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/bndata/internal/cli"
	"github.com/retroenv/bndata/internal/config"
	"github.com/retroenv/bndata/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	failed := false
	for _, file := range files {
		opts.Input = file
		if opts.Rebuild && (len(files) > 1 || opts.Output == "") {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return
			}
			logger.Error("Processing save failed", log.String("file", file), log.Err(err))
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
