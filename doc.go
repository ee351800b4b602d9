// SPDX-License-Identifier: MIT

// Package drills is a small study library of classic array exercises, with
// a console catalog that prints each one step by step.
//
// 🚀 What is in drills?
//
//	• sorting/    — bubble, selection, insertion, quick and merge sort,
//	                instrumented variants and a timing comparison
//	• duplicates/ — values seen more than once, values seen exactly once
//	• common/     — multiset intersection of two slices
//	• matrix/     — min/max in a 2D slice, max in the minimum's column,
//	                transpose, symmetry
//	• swap/       — temporary, arithmetic and XOR swaps
//
// Every kernel comes in two flavors where it makes sense: the brute-force
// nested loop and the hash-based linear version, so the trade-off can be
// read side by side.
//
// The drills command (cmd/drills) runs the demos:
//
//	drills list
//	drills run sorting matrix
//	drills run --all
//	drills sort --algorithm quick 5 7 33 6 8 1 -7
//	drills sort -- -7 1 8
//	drills compare
//
// Demo fixtures and the log level come from drills.yaml (see internal/config).
package drills
