package main

import (
	"github.com/codesweep/codesweep/pkg/sweeper"
	"github.com/spf13/cobra"
)

var (
	fromScan    bool
	cleanForce  bool
	archiveDir  string
	phase       string
	description string
	reportFile  string
)

func createCleanCmd() *cobra.Command {
	cleanCmd := &cobra.Command{
		Use:   "clean [file]... [--from-scan] [--force] [--archive-dir <path>]",
		Short: "Remove or archive unused files and record a completion report",
		Long: `Remove the given files or directories, or pick targets interactively
from a fresh scan with --from-scan. Targets may be glob patterns. Every run
writes a completion report documenting what was removed.

Examples:
  codesweep clean src/services/Orphan.ts
  codesweep clean --from-scan
  codesweep clean src/screens/legacy --archive-dir .archive --force
  codesweep clean src/old.ts --phase phase8b --description "remove migration leftovers"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := buildSweeper()
			if err != nil {
				return err
			}

			_, err = s.Clean(sweeper.CleanParams{
				Targets:     args,
				FromScan:    fromScan,
				Force:       cleanForce,
				ArchiveDir:  archiveDir,
				Phase:       phase,
				Description: description,
				ReportFile:  reportFile,
			})
			return err
		},
	}

	// Add flags
	cleanCmd.Flags().BoolVar(&fromScan, "from-scan", false, "Scan first and pick targets interactively")
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false, "Skip the confirmation prompt")
	cleanCmd.Flags().StringVar(&archiveDir, "archive-dir", "", "Move targets into this directory instead of deleting them")
	cleanCmd.Flags().StringVar(&phase, "phase", "", "Phase label recorded in the completion report")
	cleanCmd.Flags().StringVar(&description, "description", "", "Description recorded in the completion report")
	cleanCmd.Flags().StringVar(&reportFile, "report", "", "Override the configured completion report location")

	return cleanCmd
}
