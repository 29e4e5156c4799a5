// Package report renders aggregated benchmark results.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yyyoichi/stegotext/harness"
)

const (
	tableTitle     = "Average Results Table:"
	tableHeader    = "| Cover | Secret | Method | Embed Time (ms) | Extract Time (ms) | Success Plain (%) | Success HTML (%) | Success PDF (%) |"
	tableSeparator = "|-------|--------|--------|-----------------|-------------------|-------------------|------------------|-----------------|"
)

// WriteTable writes one row per aggregate, numbers with two decimals.
// A format absent from a result prints as 0.00.
func WriteTable(w io.Writer, results []harness.AggregateResult) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, tableTitle)
	fmt.Fprintln(bw, tableHeader)
	fmt.Fprintln(bw, tableSeparator)
	for _, r := range results {
		fmt.Fprintf(bw, "| %s | %s | %s | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
			r.Cover, r.Secret, r.Method, r.EmbedMS, r.ExtractMS,
			r.Success[harness.FormatPlain], r.Success[harness.FormatHTML], r.Success[harness.FormatPDF])
	}
	return bw.Flush()
}
