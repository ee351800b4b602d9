// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/drills/internal/demo"
	"github.com/katalvlaran/drills/sorting"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runAll        bool
	sortAlgorithm string
	sortStats     bool
)

// errNoDemos is returned by run without names and without --all.
var errNoDemos = errors.New("name at least one demo or pass --all")

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var runCmd = &cobra.Command{
	Use:   "run [demo...]",
	Short: "Run one or more demos",
	Long: `Run prints the output of the named demos in order. Use --all to run
every demo in name order. See "drills list" for the names.`,
	RunE: runDemos,
}

var sortCmd = &cobra.Command{
	Use:   "sort [int...]",
	Short: "Sort integers with the chosen algorithm",
	Long: `Sort reads the integers to sort from its arguments. Flags must come
before the first number. Put "--" in front of a list that starts with a
negative number:

  drills sort --algorithm quick 5 7 33 6 8 1 -7
  drills sort -- -3 2 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSort,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Time every sorting algorithm on the configured input",
	Args:  cobra.NoArgs,
	RunE:  runCompare,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, d := range demo.Default(logger).List() {
		if _, err := fmt.Fprintf(out, "%-12s %s\n", d.Name, d.Summary); err != nil {
			return err
		}
	}

	return nil
}

func runDemos(cmd *cobra.Command, args []string) error {
	catalog := demo.Default(logger)
	in := cfg.DemoInput()

	switch {
	case runAll:
		logger.Info("running all demos", zap.Int("count", len(catalog.List())))
		return catalog.RunAll(cmd.OutOrStdout(), in)
	case len(args) == 0:
		return errNoDemos
	default:
		logger.Info("running demos", zap.Strings("demos", args))
		return catalog.Run(cmd.OutOrStdout(), in, args...)
	}
}

func runSort(cmd *cobra.Command, args []string) error {
	alg, err := sorting.ParseAlgorithm(sortAlgorithm)
	if err != nil {
		return err
	}
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	logger.Debug("sorting", zap.Stringer("algorithm", alg), zap.Int("n", len(nums)))

	out := cmd.OutOrStdout()
	if sortStats {
		var st sorting.Stats
		switch alg {
		case sorting.BubbleSort:
			st = sorting.BubbleStats(nums)
		case sorting.SelectionSort:
			st = sorting.SelectionStats(nums)
		case sorting.InsertionSort:
			st = sorting.InsertionStats(nums)
		default:
			return fmt.Errorf("--stats is not available for %s", alg)
		}
		_, err = fmt.Fprintf(out, "%v\ncomparisons=%d swaps=%d shifts=%d\n", nums, st.Comparisons, st.Swaps, st.Shifts)

		return err
	}

	if err := sorting.SortWith(alg, nums); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, nums)

	return err
}

func runCompare(cmd *cobra.Command, args []string) error {
	timings, err := sorting.Compare(cfg.Inputs.Sort, sorting.DefaultCompareOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, t := range timings {
		if _, err := fmt.Fprintf(out, "%-10s %12s sorted=%t\n", t.Algorithm, t.Elapsed, t.Sorted); err != nil {
			return err
		}
	}

	return nil
}

func parseInts(args []string) ([]int, error) {
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		nums[i] = n
	}

	return nums, nil
}
