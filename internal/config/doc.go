// Package config defines linktidy's configuration: compiled-in defaults,
// the Config struct assembled from CLI flags, validation, the optional
// .linktidy YAML file with per-document overrides, and the XDG
// directories used for persistent state.
package config
