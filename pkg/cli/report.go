package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/khalid-nowaf/lzwtree"
)

// formats a statistic with 6 significant digits, shortest form
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// WriteReport writes the rendered trie followed by the depth, mean and var lines.
func WriteReport(w io.Writer, analysis *lzwtree.Analysis) error {
	if _, err := analysis.Trie.WriteTo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "depth = %d\nmean = %s\nvar = %s\n",
		analysis.Stats.Depth,
		formatFloat(analysis.Stats.Mean),
		formatFloat(analysis.Stats.Deviance))
	return err
}

// writeReportFile writes the report to filePath, creating or truncating it.
func writeReportFile(filePath string, analysis *lzwtree.Analysis) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	bw := bufio.NewWriter(file)
	if err := WriteReport(bw, analysis); err != nil {
		file.Close()
		return fmt.Errorf("writing report %s: %w", filePath, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("writing report %s: %w", filePath, err)
	}
	return file.Close()
}
