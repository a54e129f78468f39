// Package parse turns whitespace-separated integer text into reports or
// paired columns, failing fast on the first malformed token.
//
// What:
//
//   - Reports / ReportsFile: each non-empty line becomes one safety.Report.
//     Leading/trailing whitespace is stripped, runs of spaces collapse, and
//     empty tokens are discarded; blank lines are skipped entirely.
//   - Columns / ColumnsFile: each line must carry exactly two integers,
//     collected into a left and a right list for reconciliation.
//
// Why:
//
//   - The validator assumes well-formed integer sequences; this package is
//     the boundary that guarantees it. A non-numeric token stops parsing
//     immediately — there is no partial or silent recovery.
//
// Errors:
//
//   - ErrBadToken:    a token did not parse as an integer.
//   - ErrColumnCount: a Columns line did not carry exactly two tokens.
//   - *ParseError wraps either sentinel with the 1-based line number and
//     the offending token, so errors.Is works and the message names the line.
package parse
