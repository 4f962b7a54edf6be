package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	labelWidth = 25
	valueWidth = 20
)

// WriteText writes the fixed-width report: a blank line, the company header,
// one line per metric and a closing blank line.
func WriteText(w io.Writer, r *Report, opts Options) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	if r.Company != "" {
		writeRow(bw, "Company", r.Company, "")
	}
	if r.MarketCap != "" {
		writeRow(bw, "Market cap", "$"+r.MarketCap, "")
	}

	for _, m := range r.Metrics {
		suffix := m.Coverage()
		if opts.Explain {
			suffix = strings.TrimSpace(fmt.Sprintf("%-6s[%s]", suffix, m.Formula))
		}
		writeRow(bw, m.Name, m.Display(), suffix)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

func writeRow(w io.Writer, label, value, suffix string) {
	line := fmt.Sprintf("%-*s%-*s%s", labelWidth, label, valueWidth, value, suffix)
	fmt.Fprintln(w, strings.TrimRight(line, " "))
}
