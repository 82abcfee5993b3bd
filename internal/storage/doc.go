// Package storage is the file-system port for the linktidy pipeline.
// The core transform is a pure function from input text to output text
// plus statistics; reading the source document, snapshotting it to a
// backup, and writing the result back are injected collaborators so the
// pipeline stays testable without touching disk.
package storage
