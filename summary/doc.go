// Package summary aggregates validator verdicts over a batch of reports.
//
// What:
//
//   - Tally runs every report through the validator twice — strict, then
//     with single-fault tolerance — and counts the passes. The two counts,
//     in that order, are the externally observed output of the system.
//   - Summary.WriteMarkdown renders a per-row verdict table and the counts
//     as a Markdown digest, for sharing or documentation.
//
// Verdicts are independent per report and the counts are commutative, so
// evaluation order carries no meaning; rows are kept in input order purely
// for readability.
//
// Errors:
//
//   - Tally forwards safety.ErrBadBounds from an invalid Options value;
//     WriteMarkdown forwards writer errors from the underlying io.Writer.
package summary
