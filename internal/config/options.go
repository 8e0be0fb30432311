package config

import "flag"

// Options are the CLI flags: a handful of *bool/*string knobs parsed
// once at startup and threaded through to log.Init and Load.
type Options struct {
	ConfigFilePath *string
	Verbose        *bool
	Debug          *bool
	NoColors       *bool
	Version        *bool
}

// ParseOptions registers and parses the CLI flags.
func ParseOptions() Options {
	o := Options{
		ConfigFilePath: flag.String("config", "", "Path to TOML configuration file."),
		Verbose:        flag.Bool("verbose", false, "Print verbose messages."),
		Debug:          flag.Bool("debug", false, "Print debug messages."),
		NoColors:       flag.Bool("no-colors", false, "Disable output color effects."),
		Version:        flag.Bool("version", false, "Print current version."),
	}

	flag.Parse()

	return o
}

// GetDefaultOptions returns an Options with every flag at its default,
// for callers (tests, library embedders) that never parse argv.
func GetDefaultOptions() Options {
	return Options{
		ConfigFilePath: new(string),
		Verbose:        new(bool),
		Debug:          new(bool),
		NoColors:       new(bool),
		Version:        new(bool),
	}
}
