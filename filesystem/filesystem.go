// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library so that config, logs and JSON exports can be
// redirected to an in-memory or read-only backend under test.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// Set replaces the active backend.
func Set(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	Set(afero.NewOsFs())
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing and CI environments.
func SetMemMapFs() {
	Set(afero.NewMemMapFs())
}

// SetReadOnlyFs wraps the current backend so that every write fails.
func SetReadOnlyFs() {
	Set(afero.NewReadOnlyFs(backend.Fs))
}
