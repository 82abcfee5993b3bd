package config

// FileConfig holds per-document settings from the .linktidy file.
// Each field is a pointer so "not set" is distinguishable from an
// explicit false: a document entry that says nothing about backups must
// not override the defaults section or the CLI flag.
type FileConfig struct {
	// Group enables domain-grouped ordering for this document.
	Group *bool `yaml:"group,omitempty"`

	// Backup controls whether a backup copy is written for this document.
	Backup *bool `yaml:"backup,omitempty"`

	// BackupSuffix overrides the backup file suffix for this document.
	BackupSuffix string `yaml:"backupSuffix,omitempty"`
}

// File represents the .linktidy configuration file.
type File struct {
	// Defaults applies to every document unless overridden per file.
	Defaults FileConfig `yaml:"defaults,omitempty"`

	// Files maps document paths to their specific settings. Keys are
	// matched against the paths given on the command line.
	Files map[string]FileConfig `yaml:"files,omitempty"`
}

// ForFile returns the effective settings for a document path, merging
// the defaults section with any file-specific entry.
func (f *File) ForFile(path string) FileConfig {
	result := f.Defaults

	if fc, ok := f.Files[path]; ok {
		if fc.Group != nil {
			result.Group = fc.Group
		}
		if fc.Backup != nil {
			result.Backup = fc.Backup
		}
		if fc.BackupSuffix != "" {
			result.BackupSuffix = fc.BackupSuffix
		}
	}

	return result
}
