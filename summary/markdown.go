package summary

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
)

// WriteMarkdown renders the summary as a Markdown digest: a per-row
// verdict table followed by the two counts, naturally-safe first.
// Formatting is presentation only — the counts and their order are the
// contract.
func (s Summary) WriteMarkdown(w io.Writer) error {
	md := markdown.NewMarkdown(w)

	md.H1("Report Safety Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(s.Rows))
	for i, row := range s.Rows {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			"`" + formatReport(row.Report) + "`",
			verdict(row.Safe),
			verdict(row.Tolerated),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Row", "Report", "Safe", "Safe with one removal"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Counts")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Verdict", "Count"},
		Rows: [][]string{
			{"Naturally safe", strconv.Itoa(s.SafeCount)},
			{"Safe with one removal", strconv.Itoa(s.ToleratedCount)},
		},
	})

	return md.Build()
}

// formatReport renders a report as its space-separated input form.
func formatReport(r []int) string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// verdict maps a boolean verdict to its table cell.
func verdict(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
