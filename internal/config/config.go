package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultFilePath is the document tidied when no path is given.
	// Link collections conventionally live in a project's README.
	DefaultFilePath = "README.md"

	// DefaultBackupSuffix is appended to the source path when a backup
	// copy is written before the transform.
	DefaultBackupSuffix = ".bak"

	// DefaultBatchSize is the number of documents processed concurrently
	// when multiple files are given. Each document is still transformed
	// single-threaded; only independent files overlap.
	DefaultBatchSize = 4

	// DefaultTopN is how many domains and TLDs the statistics report
	// shows in its frequency tables.
	DefaultTopN = 10

	// DefaultBrokenExamples is how many broken URLs the statistics
	// report lists before summarizing the remainder as a count.
	DefaultBrokenExamples = 5

	// AppName is the application name used for XDG directory paths.
	AppName = "linktidy"
)

// Config holds all options for one linktidy invocation.
// It is populated from CLI flags and the optional .linktidy file, then
// passed through the application by injection rather than global state.
type Config struct {
	// Targets is the list of document paths to process. Defaults to a
	// single DefaultFilePath when no positional arguments are given.
	Targets []string

	// GroupByDomain selects the grouped ordering mode: links cluster
	// under their registrable domain before being alphabetized. When
	// false, the ordering is flat alphabetical.
	GroupByDomain bool

	// CreateBackup controls whether the original document is copied to
	// a backup path before being rewritten. Ignored in stats-only mode,
	// which never writes.
	CreateBackup bool

	// BackupSuffix is appended to the source path for the backup copy.
	BackupSuffix string

	// ShowStats controls whether the statistics report is rendered
	// after a transform.
	ShowStats bool

	// StatsOnly computes and reports statistics without mutating the
	// document. No backup is taken since nothing is written.
	StatsOnly bool

	// Verbose enables debug-level log output.
	Verbose bool

	// BatchSize is the number of concurrent document transforms when
	// several files are given.
	BatchSize int

	// ConfigFilePath is the path to the .linktidy file. If empty, the
	// tool searches the current directory and then the home directory.
	ConfigFilePath string

	// FileConfigs holds per-document settings loaded from the config file.
	FileConfigs *File

	// JSONReport renders the statistics report as JSON.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport renders the statistics report as GitHub Flavored
	// Markdown with tables and a protocol-mix pie chart.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, receives the statistics report instead of
	// stdout. Directories are created as needed.
	ReportFile string

	// SaveToDB records each run's statistics in the history database.
	SaveToDB bool

	// DBDir is the directory holding the SQLite history database.
	// Defaults to the XDG data directory.
	DBDir string
}

// NewConfig creates a Config with default values. Several defaults are
// non-zero (backups on, stats on), so relying on zero values would read
// as "backups off"; the constructor doubles as documentation.
func NewConfig() *Config {
	return &Config{
		Targets:      []string{DefaultFilePath},
		CreateBackup: true,
		BackupSuffix: DefaultBackupSuffix,
		ShowStats:    true,
		BatchSize:    DefaultBatchSize,
	}
}

// Validate checks the configuration for contradictions. It returns one
// of the package sentinel errors so callers can use errors.Is.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// XDGDataDir returns the XDG data directory for linktidy.
// On Linux: ~/.local/share/linktidy.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
