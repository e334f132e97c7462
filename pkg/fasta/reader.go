// Package fasta turns a FASTA style text stream into the bits fed to the trie.
//
// The first line of the stream is dropped. After it, a '>' opens a comment that
// lasts until the end of its line, newlines and 'N' bytes are skipped, and every
// other byte is expanded into 8 bits, most significant bit first.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/khalid-nowaf/lzwtree/pkg/trie"
)

const (
	Newline       byte = 0x0a // ends the header line and comments, never expanded
	CommentMarker byte = 0x3e // '>'
	Unknown       byte = 0x4e // 'N', an unknown base
)

// BitSink receives the expanded bits. *trie.Trie satisfies it.
type BitSink interface {
	Insert(bit trie.ChildPos) bool
}

// FeedResult counts what happened while feeding a stream.
type FeedResult struct {
	BytesRead     int64 // every byte read, header included
	BytesAccepted int64 // bytes expanded into bits
	Bits          int64 // bits handed to the sink
	Codewords     int64 // inserts that created a node
	HeaderFound   bool  // whether the header line was terminated
}

// filter is the byte classifier after the header line.
type filter struct {
	inComment bool
}

// accept reports whether b must be expanded into bits.
func (f *filter) accept(b byte) bool {
	switch {
	case b == CommentMarker:
		f.inComment = true
		return false
	case b == Newline:
		f.inComment = false
		return false
	case f.inComment:
		return false
	case b == Unknown:
		return false
	}
	return true
}

// ExpandByte calls emit with the 8 bits of b, most significant bit first.
func ExpandByte(b byte, emit func(bit trie.ChildPos)) {
	for i := 0; i < 8; i++ {
		if b&0x80 != 0 {
			emit(trie.ONE)
		} else {
			emit(trie.ZERO)
		}
		b <<= 1
	}
}

// Feed reads r to the end and pushes the bits of every accepted byte into sink.
// A nil logger falls back to slog.Default().
func Feed(r io.Reader, sink BitSink, logger *slog.Logger) (FeedResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	result := FeedResult{}
	br := bufio.NewReader(r)

	emit := func(bit trie.ChildPos) {
		result.Bits++
		if sink.Insert(bit) {
			result.Codewords++
		}
	}

	// header line
	for !result.HeaderFound {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("stream ended inside the header line", "bytes", result.BytesRead)
				return result, nil
			}
			return result, fmt.Errorf("reading header at byte %d: %w", result.BytesRead, err)
		}
		result.BytesRead++
		result.HeaderFound = b == Newline
	}

	f := filter{}
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return result, fmt.Errorf("reading sequence at byte %d: %w", result.BytesRead, err)
		}
		result.BytesRead++
		if !f.accept(b) {
			continue
		}
		result.BytesAccepted++
		ExpandByte(b, emit)
	}

	logger.Debug("stream consumed",
		"bytesRead", result.BytesRead,
		"bytesAccepted", result.BytesAccepted,
		"bits", result.Bits,
		"codewords", result.Codewords)

	return result, nil
}
