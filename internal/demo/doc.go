// SPDX-License-Identifier: MIT

// Package demo is the console catalog: every small study program is a named
// Demo that prints illustrative output to an io.Writer.
//
// A Catalog registers demos, lists them by name and runs one, several or
// all of them, printing a section header before each. Default returns a
// catalog preloaded with every built-in demo:
//
//	sorting, duplicates, unique, common, matrix, swap,
//	loops, errors, collections, strings, pipeline, types, time
//
// The array demos read their data from Input; DefaultInput reproduces the
// classic fixtures (e.g. {5, 7, 33, 6, 8, 1, -7} for the sorts).
package demo
