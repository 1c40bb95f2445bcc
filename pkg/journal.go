// Package pkg is a package that provides utilities for bootswap.
package pkg

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Journal is a generic append-only log of items of type T persisted to disk.
// Records are JSON, one per line, so the file can be appended across process
// restarts and inspected with ordinary text tools.
type Journal[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Last() (T, bool, error)
	Range(f func(index uint64, item T) error) error
	Close() error
}

type journalImpl[T any] struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	length uint64
}

// Append implements Journal.
func (j *journalImpl[T]) Append(item T) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := json.Marshal(item)
	if err != nil {
		slog.Error("failed to encode journal item", "path", j.path, "index", j.length, "error", err)
		return fmt.Errorf("failed to encode journal item: %w", err)
	}

	if _, err := j.file.Write(append(data, '\n')); err != nil {
		slog.Error("failed to write journal item", "path", j.path, "index", j.length, "error", err)
		return fmt.Errorf("failed to write journal item: %w", err)
	}

	j.length++
	slog.Debug("appended journal item", "path", j.path, "index", j.length-1)

	return nil
}

// Path implements Journal.
func (j *journalImpl[T]) Path() string {
	return j.path
}

// Len implements Journal.
func (j *journalImpl[T]) Len() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.length
}

// Last implements Journal. The boolean is false when the journal is empty.
func (j *journalImpl[T]) Last() (T, bool, error) {
	var last T

	found := false

	err := j.Range(func(_ uint64, item T) error {
		last = item
		found = true

		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	return last, found, nil
}

// Range implements Journal.
func (j *journalImpl[T]) Range(fn func(index uint64, item T) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	file, err := os.Open(j.path)
	if err != nil {
		slog.Error("failed to open journal for range", "path", j.path, "error", err)
		return fmt.Errorf("failed to open journal: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close journal", "path", j.path, "error", err)
		}
	}()

	scanner := bufio.NewScanner(file)

	var index uint64

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			slog.Error("failed to decode journal item", "path", j.path, "index", index, "error", err)
			return fmt.Errorf("failed to decode journal item at index %d: %w", index, err)
		}

		if err := fn(index, item); err != nil {
			slog.Warn("journal range callback error", "path", j.path, "index", index, "error", err)
			return err
		}

		index++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan journal: %w", err)
	}

	slog.Debug("journal range completed", "path", j.path, "count", index)

	return nil
}

// Close implements Journal.
func (j *journalImpl[T]) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file != nil {
		if err := j.file.Close(); err != nil {
			slog.Error("failed to close journal", "path", j.path, "error", err)
			return err
		}

		slog.Debug("closed journal", "path", j.path, "length", j.length)
	}

	return nil
}

// NewJournal opens (or creates) the journal at path for appending. Existing
// records are counted so Len reflects the whole file, not just this session.
func NewJournal[T any](path string) (Journal[T], error) {
	// #nosec G304 - path is a configured journal location, not user input
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		slog.Error("failed to open journal file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}

	j := &journalImpl[T]{
		path: path,
		file: file,
	}

	if err := j.countExisting(); err != nil {
		_ = file.Close()
		return nil, err
	}

	slog.Debug("opened journal", "path", path, "length", j.length)

	return j, nil
}

func (j *journalImpl[T]) countExisting() error {
	var count uint64

	err := j.Range(func(index uint64, _ T) error {
		count = index + 1
		return nil
	})
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.length = count
	j.mu.Unlock()

	return nil
}
