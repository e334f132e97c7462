package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/lzwtree"
)

// Exit statuses, one per kind of failure.
const (
	ExitOK       = 0
	ExitArgCount = 1 // wrong number of arguments
	ExitBadFlag  = 2 // malformed flag token or rejected command line
	ExitNoInput  = 3 // input file missing or unreadable
	ExitFailure  = 4 // anything else, e.g. unwritable output
)

const usageText = "Usage: lzwtree in_file -o out_file"

// CLI is the command line grammar. Only the input path and "-o out_file" are
// accepted on argv, the hidden settings come from the environment.
type CLI struct {
	Input     string `arg:"" name:"in_file" type:"path" help:"FASTA style input file, its first line is skipped"`
	Output    string `short:"o" name:"out" required:"" type:"path" placeholder:"out_file" help:"Report destination"`
	LogLevel  string `hidden:"" env:"LZWTREE_LOG_LEVEL" default:"warn" help:"Log level: debug, info, warn or error"`
	Codewords bool   `hidden:"" env:"LZWTREE_CODEWORDS" help:"Log every codeword at debug level"`
}

func usage(w io.Writer) {
	fmt.Fprintln(w, usageText)
}

// Run parses args (program name excluded), builds the trie from the input file
// and writes the report. It returns the process exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 3 {
		usage(stdout)
		return ExitArgCount
	}
	if args[1] != "-o" || strings.HasPrefix(args[0], "-") || strings.HasPrefix(args[2], "-") {
		usage(stdout)
		return ExitBadFlag
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("lzwtree"),
		kong.Description("Builds an LZW binary trie from a FASTA file and reports its shape."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}
	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		usage(stdout)
		return ExitBadFlag
	}

	return cli.Run(stdout, stderr)
}

// Run executes the analysis described by the parsed command line.
func (c *CLI) Run(stdout, stderr io.Writer) int {
	logger := newLogger(stderr, c.LogLevel)

	in, err := openInput(c.Input)
	if err != nil {
		logger.Debug("open input", "file", c.Input, "err", err)
		fmt.Fprintf(stdout, "%s doesn't exist...\n", c.Input)
		usage(stdout)
		return ExitNoInput
	}
	defer in.Close()

	analysis, err := lzwtree.Analyze(in,
		lzwtree.WithLogger(logger),
		lzwtree.WithCodewords(c.Codewords),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", c.Input, err)
		return ExitFailure
	}

	if err := writeReportFile(c.Output, analysis); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	logger.Info("report written",
		"file", c.Output,
		"nodes", analysis.Stats.Nodes,
		"leaves", analysis.Stats.Leaves,
		"depth", analysis.Stats.Depth)
	return ExitOK
}

// openInput opens a regular, readable input file.
func openInput(path string) (*os.File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := in.Stat()
	if err != nil {
		in.Close()
		return nil, err
	}
	if info.IsDir() {
		in.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return in, nil
}

// newLogger builds the stderr logger. An unknown level falls back to warn.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(level))
	if err != nil {
		lvl = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	if err != nil {
		logger.Warn("unknown LZWTREE_LOG_LEVEL, using warn", "value", level)
	}
	return logger
}
