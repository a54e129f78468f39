// Package stepsafe audits small integer sequences (“reports”) for bounded
// monotonic stepping — and reconciles paired number lists on the side.
//
// 🚀 What is stepsafe?
//
//	A small, deterministic library that answers two questions about a row
//	of integers:
//	  • Safe      — is every consecutive step in one direction, with a
//	    magnitude between 1 and 3 (inclusive)?
//	  • Tolerated — if not, can deleting exactly one element make it so?
//	plus a companion for the classic paired-list report:
//	  • Distance   — total gap between two sorted columns
//	  • Similarity — left values weighted by their count on the right
//
// ✨ Why choose stepsafe?
//
//   - Pure functions – no I/O, no goroutines, no hidden state
//   - Explicit bounds – Options with validated MinStep/MaxStep
//   - Fail-fast parsing – a malformed token names its line, nothing is
//     silently skipped
//   - Deterministic – same input, same verdicts, same counts, every run
//
// Everything is organized under four subpackages and a CLI:
//
//	safety/    — the sequence validator: Safe, SafeWithOneRemoval, StepSet
//	parse/     — line/column tokenizer: text → []safety.Report or two columns
//	summary/   — tallies verdict counts and renders a Markdown digest
//	reconcile/ — sorted-list distance and similarity score
//	cmd/       — the stepsafe CLI: check, report, reconcile, version
//
// Quick example:
//
//	r := safety.Report{1, 3, 2, 4, 5}
//	safety.IsSafe(r)                // false — direction flips at step two
//	safety.IsSafeWithOneRemoval(r)  // true  — drop the 3, get 1,2,4,5
//
// Dive into each package's doc.go for semantics, complexity and errors.
//
//	go get github.com/katalvlaran/stepsafe
package stepsafe
