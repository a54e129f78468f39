// Package main provides the entry point for the stepsafe CLI.
//
// stepsafe audits text files of integer reports for bounded monotonic
// stepping, with single-fault tolerance, and reconciles paired number
// lists.
//
// Usage:
//
//	stepsafe check <file>
//	stepsafe report <file>
//	stepsafe reconcile <file>
//
// See --help for details.
package main

// main is the entry point for stepsafe.
func main() {
	Execute()
}
