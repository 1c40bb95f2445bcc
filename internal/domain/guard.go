// Package domain implements the substitution-guard protocol and the build
// workflow that wraps it.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bootswap.dev/pkg/bootswap/internal/adapter"
	m "bootswap.dev/pkg/bootswap/internal/model"
	"bootswap.dev/pkg/bootswap/pkg"
)

// Guard owns one substitution and performs the backup/replace/restore
// protocol. All state lives on disk: the backup file's existence is the only
// marker of an active swap, so a crashed run self-heals on the next cycle.
type Guard interface {
	// SwapIn backs up the original (unless a backup already exists) and
	// copies the replacement over it. A missing original is reported, not
	// an error; copy failures are errors and must abort the caller.
	SwapIn(ctx context.Context) (m.SwapOutcome, error)

	// Restore copies the backup over the original and removes the backup.
	// A missing backup is the tolerated redundant-invocation case.
	Restore(ctx context.Context) (m.RestoreOutcome, error)

	// State reads the swap state from disk.
	State(ctx context.Context) (m.SwapState, error)

	// Status returns a display snapshot of all three files and the state.
	Status(ctx context.Context) (m.Status, error)

	// Substitution returns the paths this guard operates on.
	Substitution() m.Substitution
}

type guard struct {
	fs      adapter.SwapFSAdapter
	sub     m.Substitution
	verify  bool
	journal pkg.Journal[m.Event]
}

// GuardOption configures optional guard behavior.
type GuardOption func(*guard)

// WithManifestVerification toggles the backup-hash check during restore.
func WithManifestVerification(verify bool) GuardOption {
	return func(g *guard) {
		g.verify = verify
	}
}

// WithJournal attaches an audit journal; swap and restore attempts are
// recorded there. Journal failures are logged, never fatal.
func WithJournal(journal pkg.Journal[m.Event]) GuardOption {
	return func(g *guard) {
		g.journal = journal
	}
}

// NewGuard constructs a Guard for the given substitution backed by the
// provided filesystem adapter.
func NewGuard(fs adapter.SwapFSAdapter, sub m.Substitution, options ...GuardOption) Guard {
	g := &guard{
		fs:     fs,
		sub:    sub,
		verify: true,
	}

	for _, option := range options {
		option(g)
	}

	return g
}

func (g *guard) Substitution() m.Substitution {
	return g.sub
}

func (g *guard) SwapIn(ctx context.Context) (m.SwapOutcome, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	originalExists, err := g.fs.Exists(g.sub.Original)
	if err != nil {
		return "", fmt.Errorf("failed to check original file: %w", err)
	}

	if !originalExists {
		slog.Warn("original source not found, skipping swap", "original", g.sub.Original)
		g.record(m.ActionSwapIn, string(m.SwapMissingSource))

		return m.SwapMissingSource, nil
	}

	backup := g.sub.Backup()

	backupExists, err := g.fs.Exists(backup)
	if err != nil {
		return "", fmt.Errorf("failed to check backup file: %w", err)
	}

	outcome := m.SwapBackupReused

	if !backupExists {
		if err := g.fs.CopyFile(g.sub.Original, backup); err != nil {
			return "", fmt.Errorf("failed to back up original: %w", err)
		}

		g.writeManifest()

		outcome = m.SwapPerformed

		slog.Info("backed up original file", "original", g.sub.Original, "backup", backup)
	} else {
		// A pre-existing backup means a re-run or a crashed prior cycle.
		// It holds the true original and must not be overwritten.
		slog.Info("backup already exists, skipping backup", "backup", backup)
	}

	if err := g.fs.CopyFile(g.sub.Replacement, g.sub.Original); err != nil {
		return "", fmt.Errorf("failed to apply replacement: %w", err)
	}

	slog.Info("applied replacement", "replacement", g.sub.Replacement, "original", g.sub.Original)
	g.record(m.ActionSwapIn, string(outcome))

	return outcome, nil
}

func (g *guard) Restore(ctx context.Context) (m.RestoreOutcome, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	backup := g.sub.Backup()

	backupExists, err := g.fs.Exists(backup)
	if err != nil {
		return "", fmt.Errorf("failed to check backup file: %w", err)
	}

	if !backupExists {
		// Expected when restore runs twice in one cycle (post-build then
		// pre-clean) or when a prior swap never took a backup.
		slog.Info("no backup found to restore", "backup", backup)
		g.record(m.ActionRestore, string(m.RestoreNoBackup))

		return m.RestoreNoBackup, nil
	}

	if g.verify {
		g.verifyBackup(backup)
	}

	// Copy before delete: removing the backup first could lose both the
	// original and the substituted content on a partial failure.
	if err := g.fs.CopyFile(backup, g.sub.Original); err != nil {
		return "", fmt.Errorf("failed to restore original: %w", err)
	}

	if err := g.fs.Remove(backup); err != nil {
		return "", fmt.Errorf("failed to remove backup: %w", err)
	}

	g.removeManifest()

	slog.Info("restored original file", "original", g.sub.Original, "backup", backup)
	g.record(m.ActionRestore, string(m.RestorePerformed))

	return m.RestorePerformed, nil
}

func (g *guard) State(ctx context.Context) (m.SwapState, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	backupExists, err := g.fs.Exists(g.sub.Backup())
	if err != nil {
		return "", fmt.Errorf("failed to check backup file: %w", err)
	}

	if backupExists {
		return m.StateSwapped, nil
	}

	return m.StateIdle, nil
}

func (g *guard) Status(ctx context.Context) (m.Status, error) {
	state, err := g.State(ctx)
	if err != nil {
		return m.Status{}, err
	}

	status := m.Status{State: state}

	checks := []struct {
		path   m.Path
		target *m.FileStatus
	}{
		{g.sub.Original, &status.Original},
		{g.sub.Backup(), &status.Backup},
		{g.sub.Replacement, &status.Replacement},
	}

	for _, check := range checks {
		exists, err := g.fs.Exists(check.path)
		if err != nil {
			return m.Status{}, fmt.Errorf("failed to check %s: %w", check.path, err)
		}

		*check.target = m.FileStatus{Path: check.path, Exists: exists}
	}

	if g.journal != nil {
		last, found, err := g.journal.Last()
		if err != nil {
			slog.Warn("failed to read journal", "path", g.journal.Path(), "error", err)
		} else if found {
			status.LastEvent = &last
		}
	}

	return status, nil
}

// writeManifest records the fresh backup's hash in a YAML sidecar. The
// manifest is advisory, so failures only warn.
func (g *guard) writeManifest() {
	hash, err := g.fs.HashFile(g.sub.Backup())
	if err != nil {
		slog.Warn("failed to hash backup for manifest", "backup", g.sub.Backup(), "error", err)
		return
	}

	manifest := m.NewManifest(g.sub, hash, time.Now().UTC())

	data, err := manifest.Encode()
	if err != nil {
		slog.Warn("failed to encode backup manifest", "error", err)
		return
	}

	if err := g.fs.WriteFile(g.sub.ManifestPath(), data, 0o600); err != nil {
		slog.Warn("failed to write backup manifest", "manifest", g.sub.ManifestPath(), "error", err)
	}
}

// verifyBackup warns when the backup no longer matches the hash recorded at
// swap time. Restore proceeds either way: a stale backup still captured the
// true original.
func (g *guard) verifyBackup(backup m.Path) {
	manifestExists, err := g.fs.Exists(g.sub.ManifestPath())
	if err != nil || !manifestExists {
		return
	}

	data, err := g.fs.ReadFile(g.sub.ManifestPath())
	if err != nil {
		slog.Warn("failed to read backup manifest", "manifest", g.sub.ManifestPath(), "error", err)
		return
	}

	manifest, err := m.DecodeManifest(data)
	if err != nil {
		slog.Warn("failed to decode backup manifest", "manifest", g.sub.ManifestPath(), "error", err)
		return
	}

	hash, err := g.fs.HashFile(backup)
	if err != nil {
		slog.Warn("failed to hash backup", "backup", backup, "error", err)
		return
	}

	if manifest.BackupSHA256 != "" && manifest.BackupSHA256 != hash {
		slog.Warn("backup content does not match manifest hash, restoring anyway",
			"backup", backup,
			"expected", manifest.BackupSHA256,
			"actual", hash,
		)
	}
}

func (g *guard) removeManifest() {
	manifestExists, err := g.fs.Exists(g.sub.ManifestPath())
	if err != nil || !manifestExists {
		return
	}

	if err := g.fs.Remove(g.sub.ManifestPath()); err != nil {
		slog.Warn("failed to remove backup manifest", "manifest", g.sub.ManifestPath(), "error", err)
	}
}

func (g *guard) record(action, outcome string) {
	if g.journal == nil {
		return
	}

	event := m.Event{
		Action:   action,
		Outcome:  outcome,
		Original: g.sub.Original,
		At:       time.Now().UTC(),
	}

	if err := g.journal.Append(event); err != nil {
		slog.Warn("failed to record journal event", "action", action, "error", err)
	}
}
