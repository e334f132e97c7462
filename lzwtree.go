package lzwtree

import (
	"errors"
	"io"
	"log/slog"

	"github.com/khalid-nowaf/lzwtree/pkg/fasta"
	"github.com/khalid-nowaf/lzwtree/pkg/trie"
)

// Analysis holds the trie built from a stream together with what was measured on it.
type Analysis struct {
	Trie  *trie.Trie
	Feed  fasta.FeedResult
	Stats trie.Stats
	Empty bool // no bit was accepted, Stats.Mean and Stats.Deviance are NaN
}

// Analyzer builds LZW tries from FASTA style streams.
type Analyzer struct {
	logger    *slog.Logger
	codewords bool
}

type Option func(*Analyzer) *Analyzer

func DefaultOptions() *Analyzer {
	return &Analyzer{
		logger: slog.Default(),
	}
}

// sets the logger used while feeding and measuring
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) *Analyzer {
		if logger != nil {
			a.logger = logger
		}
		return a
	}
}

// logs every codeword at debug level once the trie is built
func WithCodewords(enabled bool) Option {
	return func(a *Analyzer) *Analyzer {
		a.codewords = enabled
		return a
	}
}

// initializes a new Analyzer
//
// Returns:
//   - A pointer to a newly initialized Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := DefaultOptions()
	for _, opt := range opts {
		a = opt(a)
	}
	return a
}

// Analyze feeds r into a fresh trie and measures it. An input without any
// accepted byte is not an error: the result is marked Empty.
func (a *Analyzer) Analyze(r io.Reader) (*Analysis, error) {
	analysis := &Analysis{Trie: trie.NewTrie()}

	feed, err := fasta.Feed(r, analysis.Trie, a.logger)
	analysis.Feed = feed
	if err != nil {
		return analysis, err
	}

	analysis.Stats, err = analysis.Trie.Stats()
	if errors.Is(err, trie.ErrEmptyTrie) {
		a.logger.Warn("no bits were accepted, leaf statistics are undefined", "bytesRead", feed.BytesRead)
		analysis.Empty = true
	} else if err != nil {
		return analysis, err
	}

	if a.codewords {
		for i, codeword := range analysis.Trie.Codewords() {
			a.logger.Debug("codeword", "index", i, "bits", codeword.String(), "length", codeword.Len)
		}
	}

	return analysis, nil
}

// Analyze is a shorthand for NewAnalyzer(opts...).Analyze(r).
func Analyze(r io.Reader, opts ...Option) (*Analysis, error) {
	return NewAnalyzer(opts...).Analyze(r)
}
