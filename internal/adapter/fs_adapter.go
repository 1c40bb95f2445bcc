// Package adapter contains infrastructure adapters for the bootswap CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "bootswap.dev/pkg/bootswap/internal/model"
)

// SwapFSAdapter abstracts the filesystem operations the guard relies on.
// It intentionally hides direct `os` access so the swap protocol can be
// tested without touching the disk.
type SwapFSAdapter interface {
	// Exists reports whether a path exists.
	Exists(path m.Path) (bool, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// CopyFile copies a single file byte-for-byte from src to dst,
	// overwriting dst if it exists.
	CopyFile(src, dst m.Path) error

	// Remove deletes a file.
	Remove(path m.Path) error

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)
}

// LocalSwapFSAdapter is the concrete SwapFSAdapter backed by the os package.
type LocalSwapFSAdapter struct{}

// NewLocalSwapFSAdapter constructs a LocalSwapFSAdapter ready to be wired
// into the guard.
func NewLocalSwapFSAdapter() *LocalSwapFSAdapter {
	return &LocalSwapFSAdapter{}
}

// Exists reports whether a path exists.
func (a *LocalSwapFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// ReadFile loads file contents from disk.
func (a *LocalSwapFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSwapFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// CopyFile copies a single file from src to dst, preserving the source mode.
func (a *LocalSwapFSAdapter) CopyFile(src, dst m.Path) error {
	srcInfo, err := os.Stat(string(src))
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	if srcInfo.IsDir() {
		return fmt.Errorf("source %q is a directory, expected a file", src)
	}

	// #nosec G304 - src is a configured project path, not user input
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(string(dst)), 0o750); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	// #nosec G304 - dst is a configured destination path, not user input
	destFile, err := os.OpenFile(string(dst), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	return destFile.Sync()
}

// Remove deletes the file at path.
func (a *LocalSwapFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSwapFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
