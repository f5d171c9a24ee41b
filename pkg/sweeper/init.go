package sweeper

import "fmt"

// InitOpts contains optional parameters for Init.
type InitOpts struct {
	Force          bool
	NonInteractive bool
	RootDir        string
	ReportFile     string
}

// Init initializes codesweep configuration.
func (s *realSweeper) Init(opts InitOpts) error {
	s.VerbosePrint("Starting codesweep initialization")

	if err := s.checkExistingConfig(opts.Force); err != nil {
		return err
	}

	cfg := s.deps.Config.DefaultConfig()

	rootDir, err := s.resolveRootDir(opts, cfg.RootDir)
	if err != nil {
		return err
	}
	cfg.RootDir = rootDir

	reportFile, err := s.resolveReportFile(opts, cfg.ReportFile)
	if err != nil {
		return err
	}
	cfg.ReportFile = reportFile

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := s.deps.Config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	s.deps.Logger.Logf("Initialized codesweep configuration: %s", s.deps.Config.GetConfigPath())
	s.deps.Logger.Logf("  Root directory: %s", cfg.RootDir)
	s.deps.Logger.Logf("  Report file:    %s", cfg.ReportFile)
	return nil
}

// checkExistingConfig fails when a config file already exists and force is not set.
func (s *realSweeper) checkExistingConfig(force bool) error {
	configPath := s.deps.Config.GetConfigPath()
	exists, err := s.deps.FS.Exists(configPath)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrAlreadyInitialized, configPath)
	}
	return nil
}

// resolveRootDir determines the root directory from opts, prompting when interactive.
func (s *realSweeper) resolveRootDir(opts InitOpts, defaultRootDir string) (string, error) {
	if opts.RootDir != "" {
		return opts.RootDir, nil
	}
	if opts.NonInteractive {
		return defaultRootDir, nil
	}

	rootDir, err := s.deps.Prompt.PromptForRootDir(defaultRootDir)
	if err != nil {
		return "", fmt.Errorf("failed to prompt for root directory: %w", err)
	}
	return rootDir, nil
}

// resolveReportFile determines the completion report path from opts, prompting when interactive.
func (s *realSweeper) resolveReportFile(opts InitOpts, defaultReportFile string) (string, error) {
	if opts.ReportFile != "" {
		return s.expandReportFile(opts.ReportFile)
	}
	if opts.NonInteractive {
		return defaultReportFile, nil
	}

	reportFile, err := s.deps.Prompt.PromptForReportFile(defaultReportFile)
	if err != nil {
		return "", fmt.Errorf("failed to prompt for report file: %w", err)
	}
	return s.expandReportFile(reportFile)
}

func (s *realSweeper) expandReportFile(path string) (string, error) {
	expanded, err := s.deps.FS.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand report file path: %w", err)
	}
	return expanded, nil
}
