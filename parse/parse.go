package parse

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepsafe/safety"
)

// Reports reads whitespace-separated integer rows from r, one report per
// non-empty line. Runs of spaces collapse (empty tokens are discarded) and
// blank lines are skipped. The first malformed token aborts the whole read
// with a *ParseError wrapping ErrBadToken.
func Reports(r io.Reader) ([]safety.Report, error) {
	var reports []safety.Report
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		report := make(safety.Report, 0, len(fields))
		for _, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{Line: line, Token: tok, Err: ErrBadToken}
			}
			report = append(report, n)
		}
		reports = append(reports, report)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

// ReportsFile reads reports from the file at path.
func ReportsFile(path string) ([]safety.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Reports(f)
}

// Columns reads two-column integer rows from r into a left and a right
// list, preserving input order. Blank lines are skipped; any other token
// count than two aborts with a *ParseError wrapping ErrColumnCount.
func Columns(r io.Reader) (left, right []int, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, &ParseError{Line: line, Token: strings.TrimSpace(sc.Text()), Err: ErrColumnCount}
		}
		var pair [2]int
		for i, tok := range fields {
			pair[i], err = strconv.Atoi(tok)
			if err != nil {
				return nil, nil, &ParseError{Line: line, Token: tok, Err: ErrBadToken}
			}
		}
		left = append(left, pair[0])
		right = append(right, pair[1])
	}
	if err = sc.Err(); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// ColumnsFile reads two-column rows from the file at path.
func ColumnsFile(path string) (left, right []int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Columns(f)
}
