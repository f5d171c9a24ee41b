package sweeper

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/codesweep/codesweep/pkg/category"
	"github.com/codesweep/codesweep/pkg/prompt"
	"github.com/codesweep/codesweep/pkg/report"
)

// CleanParams contains parameters for Clean.
type CleanParams struct {
	// Targets are the files or directories to remove.
	Targets []string
	// FromScan runs a scan first and lets the user pick targets interactively.
	FromScan bool
	// Force skips the confirmation prompt.
	Force bool
	// ArchiveDir moves targets into this directory instead of deleting them.
	ArchiveDir string
	// Phase identifies the cleanup run in the completion report.
	Phase string
	// Description describes the cleanup run in the completion report.
	Description string
	// ReportFile overrides the configured completion report location.
	ReportFile string
}

// Clean deletes or archives the given targets and persists a completion report.
func (s *realSweeper) Clean(params CleanParams) (*report.CompletionReport, error) {
	cfg, err := s.getConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	targets := params.Targets
	if params.FromScan {
		targets, err = s.selectTargetsFromScan()
		if err != nil {
			return nil, err
		}
	} else {
		targets = s.expandTargets(targets)
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	if !params.Force {
		if err := s.confirmClean(targets, params.ArchiveDir); err != nil {
			return nil, err
		}
	}

	removed, dirsRemoved := s.removeTargets(targets, params.ArchiveDir)

	completion := report.CompletionReport{
		Phase:                   params.Phase,
		Description:             params.Description,
		ArtifactsRemoved:        removed,
		DirectoriesRemoved:      dirsRemoved,
		InfrastructurePreserved: true,
		Timestamp:               time.Now().UTC(),
	}
	if completion.Phase == "" {
		completion.Phase = "cleanup"
	}

	reportFile := cfg.ReportFile
	if params.ReportFile != "" {
		reportFile = params.ReportFile
	}
	expanded, err := s.deps.FS.ExpandPath(reportFile)
	if err != nil {
		return nil, fmt.Errorf("failed to expand report file path: %w", err)
	}

	manager := report.NewManager(report.NewManagerParams{FS: s.deps.FS, ReportFile: expanded})
	if err := manager.SaveCompletion(completion); err != nil {
		return nil, err
	}
	s.deps.Logger.Logf("Completion report saved: %s", expanded)

	return &completion, nil
}

// selectTargetsFromScan runs a scan and prompts the user to pick targets.
func (s *realSweeper) selectTargetsFromScan() ([]string, error) {
	scanReport, err := s.Scan()
	if err != nil {
		return nil, err
	}

	var choices []prompt.FileChoice
	for _, cat := range category.All() {
		for _, path := range scanReport.Files(cat) {
			choices = append(choices, prompt.FileChoice{Path: path, Category: string(cat)})
		}
	}
	if len(choices) == 0 {
		return nil, ErrNoTargets
	}

	selected, err := s.deps.Prompt.PromptSelectFiles(choices)
	if err != nil {
		return nil, fmt.Errorf("target selection failed: %w", err)
	}

	targets := make([]string, 0, len(selected))
	for _, choice := range selected {
		targets = append(targets, choice.Path)
	}
	return targets, nil
}

// expandTargets resolves glob patterns into concrete paths. A target with no
// matches stays as given so the absent-target notice still fires for it.
func (s *realSweeper) expandTargets(targets []string) []string {
	var expanded []string
	for _, target := range targets {
		matches, err := s.deps.FS.Glob(target)
		if err != nil || len(matches) == 0 {
			expanded = append(expanded, target)
			continue
		}
		expanded = append(expanded, matches...)
	}
	return expanded
}

// confirmClean asks the user before any destructive step.
func (s *realSweeper) confirmClean(targets []string, archiveDir string) error {
	verb := "delete"
	if archiveDir != "" {
		verb = fmt.Sprintf("archive to %s", archiveDir)
	}

	message := fmt.Sprintf("About to %s %d target(s). Continue?", verb, len(targets))
	confirmed, err := s.deps.Prompt.PromptForConfirmation(message, false)
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !confirmed {
		return ErrCleanCancelled
	}
	return nil
}

// removeTargets removes or archives each target. Absent targets are skipped
// with a notice and individual failures never abort the batch.
func (s *realSweeper) removeTargets(targets []string, archiveDir string) (int, []string) {
	removed := 0
	var dirsRemoved []string

	for _, target := range targets {
		exists, err := s.deps.FS.Exists(target)
		if err != nil {
			s.deps.Logger.Logf("✗ Failed to check %s: %v", target, err)
			continue
		}
		if !exists {
			s.deps.Logger.Logf("Skipped %s (already absent)", target)
			continue
		}

		isDir, err := s.deps.FS.IsDir(target)
		if err != nil {
			s.deps.Logger.Logf("✗ Failed to inspect %s: %v", target, err)
			continue
		}

		if err := s.removeTarget(target, isDir, archiveDir); err != nil {
			// The target may vanish between the existence check and the removal
			if s.deps.FS.IsNotExist(err) {
				s.deps.Logger.Logf("Skipped %s (already absent)", target)
				continue
			}
			s.deps.Logger.Logf("✗ Failed to remove %s: %v", target, err)
			continue
		}

		removed++
		verb := "Removed"
		if archiveDir != "" {
			verb = "Archived"
		}
		if isDir {
			dirsRemoved = append(dirsRemoved, target)
			s.deps.Logger.Logf("✓ %s directory: %s", verb, target)
		} else {
			s.deps.Logger.Logf("✓ %s file: %s", verb, target)
		}
	}

	return removed, dirsRemoved
}

// removeTarget removes or archives a single existing target.
func (s *realSweeper) removeTarget(target string, isDir bool, archiveDir string) error {
	if archiveDir != "" {
		if err := s.deps.FS.MkdirAll(archiveDir, 0755); err != nil {
			return fmt.Errorf("failed to create archive directory: %w", err)
		}
		return s.deps.FS.Rename(target, filepath.Join(archiveDir, filepath.Base(target)))
	}

	if isDir {
		return s.deps.FS.RemoveAll(target)
	}
	return s.deps.FS.Remove(target)
}
