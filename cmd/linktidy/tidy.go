package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/linktidy/linktidy/internal/config"
	"github.com/linktidy/linktidy/internal/database"
	"github.com/linktidy/linktidy/internal/log"
	"github.com/linktidy/linktidy/internal/model"
	"github.com/linktidy/linktidy/internal/pipeline"
	"github.com/linktidy/linktidy/internal/report"
	"github.com/linktidy/linktidy/internal/storage"
)

// NewTidyCmd creates the tidy command.
func NewTidyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tidy [file...]",
		Short: "Deduplicate and sort the links in a document",
		Long: `Tidy extracts every link line from a document, removes duplicates, sorts
the links, and rewrites the document. Everything before the first link
line (titles, prose) is preserved untouched.

Link lines are bulleted lines containing http:// or https://, and bare
lines starting with either. After tidying, every link line is rendered
with a single "* " bullet.

Note: non-link lines mixed in among the links (section sub-headers,
comments) are dropped on rewrite. Keep such prose above the first link
line if it must survive.

Examples:
  # Tidy the README in the current directory
  linktidy tidy

  # Tidy a specific file, grouping links by domain
  linktidy tidy --group LINKS.md

  # Report statistics without touching the file
  linktidy tidy --stats-only LINKS.md

  # Tidy several files concurrently
  linktidy tidy docs/a.md docs/b.md docs/c.md

  # Skip the backup copy and render the report as markdown
  linktidy tidy --backup=false --markdown LINKS.md

Configuration file (.linktidy) example:
  defaults:
    backup: true
  files:
    LINKS.md:
      group: true
      backupSuffix: .orig`,
		Args: cobra.ArbitraryArgs,
		RunE: runTidyCmd,
	}

	// Transform behavior flags
	cmd.Flags().BoolP("group", "g", false,
		"Group links by domain before alphabetizing")
	cmd.Flags().Bool("backup", true,
		"Write a backup copy of the original before rewriting")
	cmd.Flags().Bool("stats", true,
		"Show link statistics after tidying")
	cmd.Flags().Bool("stats-only", false,
		"Compute and report statistics without modifying the document")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of documents processed concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .linktidy in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON statistics report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown statistics report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the statistics report to the specified file path")

	// History flags
	cmd.Flags().Bool("no-save", false,
		"Do not record this run in the history database")

	return cmd
}

// runTidyCmd executes the tidy command.
func runTidyCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runTidy(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.GroupByDomain, err = cmd.Flags().GetBool("group")
	if err != nil {
		return nil, err
	}

	cfg.CreateBackup, err = cmd.Flags().GetBool("backup")
	if err != nil {
		return nil, err
	}

	cfg.ShowStats, err = cmd.Flags().GetBool("stats")
	if err != nil {
		return nil, err
	}

	cfg.StatsOnly, err = cmd.Flags().GetBool("stats-only")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	// Load per-document settings from the config file. An explicitly
	// specified path must exist; the default search may come up empty.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.FileConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.FileConfigs = &config.File{
			Files: make(map[string]config.FileConfig),
		}
	}

	// Positional arguments are document paths; default is README.md.
	if len(args) > 0 {
		cfg.Targets = args
	}

	return cfg, nil
}

// runOptions is the effective per-document settings after merging CLI
// flags with the .linktidy file entry for that document.
type runOptions struct {
	group        bool
	backup       bool
	backupSuffix string
}

// optionsForFile merges the config file's entry for path over the CLI
// flag values.
func optionsForFile(cfg *config.Config, path string) runOptions {
	opts := runOptions{
		group:        cfg.GroupByDomain,
		backup:       cfg.CreateBackup,
		backupSuffix: cfg.BackupSuffix,
	}

	if cfg.FileConfigs == nil {
		return opts
	}

	fc := cfg.FileConfigs.ForFile(path)
	if fc.Group != nil {
		opts.group = *fc.Group
	}
	if fc.Backup != nil {
		opts.backup = *fc.Backup
	}
	if fc.BackupSuffix != "" {
		opts.backupSuffix = fc.BackupSuffix
	}

	return opts
}

// runTidy executes the transform over all targets.
func runTidy(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting tidy",
		"targets", cfg.Targets,
		"group", cfg.GroupByDomain,
		"statsOnly", cfg.StatsOnly,
		"saveToDB", cfg.SaveToDB,
	)

	var db *database.HistoryDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			// History is best-effort; a broken database must not block
			// the transform itself.
			logger.Warn("failed to open history database, continuing without history", "error", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	store := storage.NewFileStore()

	if len(cfg.Targets) > 1 && cfg.BatchSize > 1 {
		return runBatchTidy(ctx, cfg, store, db, logger)
	}

	return runSequentialTidy(ctx, cfg, store, db, logger)
}

// runSequentialTidy processes targets one at a time. The first failure
// does not stop later targets; all errors are reported and joined so
// the process still exits non-zero.
func runSequentialTidy(ctx context.Context, cfg *config.Config, store storage.Store, db *database.HistoryDB, logger *slog.Logger) error {
	var errs []error

	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		startTime := time.Now()

		runReport, err := prepareReport(cfg, store, target)
		if err != nil {
			logger.Error("tidy failed", "file", target, "error", err)
			fmt.Fprintf(os.Stderr, "Error for %s: %v\n", target, err)
			errs = append(errs, err)
			continue
		}

		p := pipelineForRun(cfg, logger)
		if err := p.Execute(ctx, runReport); err != nil {
			logger.Error("tidy failed", "file", target, "error", err)
			fmt.Fprintf(os.Stderr, "Error for %s: %v\n", target, err)
			errs = append(errs, err)
			continue
		}

		if err := finishRun(ctx, cfg, store, db, runReport, logger); err != nil {
			errs = append(errs, err)
			continue
		}

		logger.Debug("tidy completed",
			"file", target,
			"elapsed", time.Since(startTime).Round(time.Millisecond),
		)
	}

	return errors.Join(errs...)
}

// runBatchTidy processes multiple documents concurrently through the
// batch processor. Reports are prepared up front so a missing file
// fails fast, before any document is rewritten.
func runBatchTidy(ctx context.Context, cfg *config.Config, store storage.Store, db *database.HistoryDB, logger *slog.Logger) error {
	reports := make([]*model.Report, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		runReport, err := prepareReport(cfg, store, target)
		if err != nil {
			return err
		}
		reports = append(reports, runReport)
	}

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipelineForRun(cfg, logger)
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	// finishRun writes files and renders reports; serialize it so
	// terminal output from concurrent documents does not interleave.
	var mu sync.Mutex
	var errs []error
	err := bp.ProcessBatch(ctx, reports, func(r *model.Report, index int) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Printf("[%d/%d] %s\n", index+1, len(reports), r.FilePath)
		if err := finishRun(ctx, cfg, store, db, r, logger); err != nil {
			errs = append(errs, err)
		}
	})
	if err != nil {
		return err
	}

	return errors.Join(errs...)
}

// prepareReport reads the source document and builds the run report
// with the document's effective options applied.
func prepareReport(cfg *config.Config, store storage.Store, target string) (*model.Report, error) {
	text, err := store.Read(target)
	if err != nil {
		return nil, err
	}

	opts := optionsForFile(cfg, target)
	runReport := model.NewReport(target, text)
	runReport.GroupByDomain = opts.group
	return runReport, nil
}

// pipelineForRun assembles the pipeline variant for this invocation.
func pipelineForRun(cfg *config.Config, logger *slog.Logger) *pipeline.Pipeline {
	if cfg.StatsOnly {
		return pipeline.StatsPipeline(logger)
	}
	return pipeline.TransformPipeline(logger)
}

// finishRun performs the post-pipeline work for one document: backup
// and write-back (unless stats-only), the statistics report, and the
// history record.
func finishRun(ctx context.Context, cfg *config.Config, store storage.Store, db *database.HistoryDB, runReport *model.Report, logger *slog.Logger) error {
	opts := optionsForFile(cfg, runReport.FilePath)

	if !cfg.StatsOnly {
		if opts.backup {
			backupPath, err := store.Backup(runReport.FilePath, opts.backupSuffix, runReport.Input)
			if err != nil {
				return fmt.Errorf("backup failed for %s: %w", runReport.FilePath, err)
			}
			logger.Debug("backup written", "file", runReport.FilePath, "backup", backupPath)
		}

		if err := store.Write(runReport.FilePath, runReport.Output); err != nil {
			return fmt.Errorf("write failed for %s: %w", runReport.FilePath, err)
		}

		fmt.Printf("Tidied %s: %d links (%d unique)\n",
			runReport.FilePath,
			runReport.Extraction.TotalCount(),
			runReport.Extraction.UniqueCount(),
		)
	}

	if cfg.ShowStats || cfg.StatsOnly {
		if err := outputReport(cfg, runReport); err != nil {
			logger.Error("report failed", "file", runReport.FilePath, "error", err)
		}
	}

	if err := saveRun(ctx, db, runReport, logger); err != nil {
		logger.Error("failed to save run history", "file", runReport.FilePath, "error", err)
	}

	return nil
}

// outputReport renders the statistics report in the requested format.
func outputReport(cfg *config.Config, runReport *model.Report) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewTextWriter(output)
	}

	_, err := writer.Write(runReport)
	return err
}

// saveRun records the run summary in the history database.
// A nil db is a no-op.
func saveRun(ctx context.Context, db *database.HistoryDB, runReport *model.Report, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	summary := model.NewSummary(runReport)
	if _, err := db.SaveSummary(ctx, summary); err != nil {
		return fmt.Errorf("failed to save run summary: %w", err)
	}

	logger.Debug("run recorded in history", "file", runReport.FilePath)
	return nil
}
