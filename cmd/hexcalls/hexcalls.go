package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/wbrown/hexcalls"
)

var errUsage = errors.New("must provide a source file path")

type config struct {
	input    string
	encoding string
	unique   bool
	sort     bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	flags := flag.NewFlagSet("hexcalls", flag.ContinueOnError)
	flags.SetOutput(stderr)
	cfg := &config{}
	flags.StringVar(&cfg.input, "input", "",
		"source file to scan (may also be given as the first argument)")
	flags.StringVar(&cfg.encoding, "encoding", hexcalls.DefaultEncoding,
		"text encoding of the source file [utf-8, windows-1252, ...]")
	flags.BoolVar(&cfg.unique, "unique", false,
		"drop repeated tokens, keeping the first occurrence")
	flags.BoolVar(&cfg.sort, "sort", false,
		"order tokens by opcode value instead of source order")
	flags.BoolVar(&cfg.verbose, "verbose", false,
		"log file size and token count to stderr")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(),
			"Usage: hexcalls [flags] <source file>\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if cfg.input == "" && flags.NArg() > 0 {
		cfg.input = flags.Arg(0)
	}
	if cfg.input == "" {
		flags.Usage()
		return nil, errUsage
	}
	return cfg, nil
}

// run scans the configured file and writes the report to stdout. Nothing
// is written to stdout if the file cannot be read.
func run(cfg *config, stdout io.Writer, logger *log.Logger) error {
	if cfg.verbose {
		if size, err := hexcalls.ReadSourceSize(cfg.input); err == nil {
			logger.Printf("Scanning %s (%s)", cfg.input,
				humanize.Bytes(size))
		} else {
			logger.Printf("Scanning %s (size unknown)", cfg.input)
		}
	}

	tokens, err := hexcalls.ScanFile(cfg.input, hexcalls.SourceOptions{
		Encoding: cfg.encoding,
	})
	if err != nil {
		return err
	}

	if cfg.unique {
		tokens = tokens.Unique()
	}
	if cfg.sort {
		tokens.SortByOpcode()
	}
	if cfg.verbose {
		logger.Printf("Found %s hex calls",
			humanize.Comma(int64(len(tokens))))
	}

	return hexcalls.WriteReport(stdout, tokens)
}

// realMain maps the outcome of a run to a process exit status: 0 on
// success, 1 when the scan fails and 2 on a usage error.
func realMain(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		// flag has already printed usage.
		if errors.Is(err, errUsage) {
			logger.Print(err)
		}
		return 2
	}

	if runErr := run(cfg, stdout, logger); runErr != nil {
		logger.Print(runErr)
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}
