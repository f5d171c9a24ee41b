package main

import (
	"fmt"

	"github.com/codesweep/codesweep/pkg/sweeper"
	"github.com/spf13/cobra"
)

var (
	strict    bool
	threshold int
)

func createScanCmd() *cobra.Command {
	scanCmd := &cobra.Command{
		Use:   "scan [root] [--strict] [--threshold <n>]",
		Short: "Report potentially unused source files",
		Long: `Scan the source tree and report files that nothing else references,
grouped by category.

By default a file is flagged when its reference count does not exceed the
configured threshold. With --strict only an actual import statement counts
as a reference.

Examples:
  codesweep scan
  codesweep scan app/src
  codesweep scan --strict
  codesweep scan --threshold 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := buildSweeper()
			if err != nil {
				return err
			}

			opts := sweeper.ScanOpts{
				Strict: strict,
			}
			if threshold >= 0 {
				opts.Threshold = &threshold
			}
			if len(args) > 0 {
				opts.RootDir = args[0]
			}

			result, err := s.Scan(opts)
			if err != nil {
				return err
			}

			fmt.Print(result.Render())
			return nil
		},
	}

	// Add flags
	scanCmd.Flags().BoolVar(&strict, "strict", false, "Only count actual import statements as references")
	scanCmd.Flags().IntVar(&threshold, "threshold", -1,
		"Flag files with at most this many references (-1 uses the configured value)")

	return scanCmd
}
