// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/retroenv/bndata/internal/options"
)

// StdoutName is the file name that selects console output.
const StdoutName = "-"

// ParseFlags parses the command line arguments, without the program name,
// into program options.
func ParseFlags(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, &UsageError{flags: flags, name: name}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	name  string
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: %s [options] <save file>\n\n", e.name)
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after save file, please pass the save file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions rejects option combinations that can not work together
func validateOptions(opts options.Program) error {
	if opts.Rebuild && opts.ROM == "" {
		return errors.New("rebuilding a save needs the cartridge image, pass it with -rom")
	}
	if opts.Batch != "" && opts.Output != "" {
		return errors.New("an output file can not be combined with batch processing")
	}
	if opts.Batch != "" && opts.Report != "" && opts.Report != StdoutName {
		return errors.New("a report file can not be combined with batch processing, use -report -")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.ROM, "rom", "", "name of the cartridge image of the game that wrote the save")
	flags.StringVar(&opts.WRAM, "wram", "", "name of a working memory dump used to resolve pointers into WRAM")
	flags.StringVar(&opts.Offsets, "offsets", "", "name of the INI file with the cartridge offsets of BN4 revisions")
	flags.StringVar(&opts.Charset, "charset", "", "name of the BN4 charset file with one entry per line, BN4 chip names read as ??? without it")
	flags.StringVar(&opts.Output, "o", "", "name of the rebuilt save file, derived from the input name if not given")
	flags.StringVar(&opts.Report, "report", "", "name of a text report of the save contents, - prints it on console")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of save files matching the given path and file mask, for example *.sav")
	flags.BoolVar(&opts.Rebuild, "rebuild", false, "recompute the derived caches and the checksum and write the save")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
