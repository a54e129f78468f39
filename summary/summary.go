package summary

import (
	"github.com/katalvlaran/stepsafe/safety"
)

// Row is one report with both of its verdicts.
type Row struct {
	Report    safety.Report
	Safe      bool // strict verdict
	Tolerated bool // verdict with one removal allowed
}

// Summary holds per-row verdicts and the two aggregate counts.
// SafeCount ≤ ToleratedCount always: tolerance only relaxes the rule.
type Summary struct {
	Rows           []Row
	SafeCount      int
	ToleratedCount int
}

// Tally evaluates every report under the given bounds and counts the
// naturally-safe and tolerated-safe verdicts. A nil opts means
// safety.DefaultOptions. The only failure mode is an invalid opts.
func Tally(reports []safety.Report, opts *safety.Options) (Summary, error) {
	sum := Summary{Rows: make([]Row, 0, len(reports))}
	for _, r := range reports {
		ok, err := safety.Safe(r, opts)
		if err != nil {
			return Summary{}, err
		}
		tolerated, err := safety.SafeWithOneRemoval(r, opts)
		if err != nil {
			return Summary{}, err
		}
		if ok {
			sum.SafeCount++
		}
		if tolerated {
			sum.ToleratedCount++
		}
		sum.Rows = append(sum.Rows, Row{Report: r, Safe: ok, Tolerated: tolerated})
	}
	return sum, nil
}
