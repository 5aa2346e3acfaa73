// Package options contains the program options.
package options

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"save file to read"`
}

// Parameters contains file path options.
type Parameters struct {
	Input   string `flag:"i" usage:"input save file"`
	ROM     string `flag:"rom" usage:"cartridge image of the game that wrote the save"`
	WRAM    string `flag:"wram" usage:"working memory dump used to resolve pointers into WRAM"`
	Offsets string `flag:"offsets" usage:"INI file with the cartridge offsets of BN4 revisions"`
	Charset string `flag:"charset" usage:"BN4 charset file, one entry per line"`
	Output  string `flag:"o" usage:"output file of the rebuilt save"`
	Report  string `flag:"report" usage:"write a text report of the save contents to a file, - for stdout"`
	Batch   string `flag:"batch" usage:"batch process save files matching pattern (e.g. *.sav)"`
}

// Flags contains behavior options.
type Flags struct {
	Rebuild bool `flag:"rebuild" usage:"recompute derived caches and the checksum and write the save"`
	Debug   bool `flag:"debug" usage:"enable debug logging"`
	Quiet   bool `flag:"q" usage:"quiet mode"`
}

// Program options of the save tool.
type Program struct {
	Parameters
	Flags
}
