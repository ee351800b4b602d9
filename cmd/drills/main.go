// SPDX-License-Identifier: MIT

// Command drills runs the study demos and the array kernels from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/drills/internal/config"
	"github.com/katalvlaran/drills/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Resolved in PersistentPreRunE
	logger *zap.Logger
	cfg    *config.Config

	newLogger = logging.New
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "drills",
	Short: "Console demos of classic array algorithms and Go language basics",
	Long: `drills bundles small, self-contained study programs: sorting algorithms,
duplicate and common-element finders, matrix min/max, variable swapping,
and short tours of Go's types, collections, strings and error handling.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.String("level", cfg.Logging.Level))

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "drills.yaml", "Path to the YAML configuration")

	runCmd.Flags().BoolVar(&runAll, "all", false, "Run every demo")
	sortCmd.Flags().StringVarP(&sortAlgorithm, "algorithm", "a", "merge", "Algorithm: bubble, selection, insertion, quick, merge, builtin")
	sortCmd.Flags().BoolVar(&sortStats, "stats", false, "Print operation counters (bubble, selection, insertion)")
	// Flags end at the first number so "-7" is read as an argument.
	sortCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(compareCmd)
}

// execute runs rootCmd and flushes the logger, whether the command failed or not.
func execute() error {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}

	return err
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
