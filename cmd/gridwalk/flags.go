// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --log-file, --verbose, --version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	configPath string
	logFile    string
	verbose    bool
	version    bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("gridwalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.configPath, "config", "", "Config file (default ~/.gridwalk/config.yaml)")
	fs.StringVar(&args.logFile, "log-file", "", "Append logs to this file while the grid is shown")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	return args, nil
}
