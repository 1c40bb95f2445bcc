// Package model defines the core entities shared across bootswap layers.
package model

// Path represents a file system path.
type Path string

// SwapState describes the durable state of a swap cycle as read from disk.
// The backup file's existence is the sole marker: no in-memory state survives
// between invocations.
type SwapState string

const (
	// StateIdle means no backup exists and the original file is pristine.
	StateIdle SwapState = "idle"

	// StateSwapped means a backup exists and the original currently holds
	// the replacement content.
	StateSwapped SwapState = "swapped"
)

// Substitution ties together the three file identities of one swap cycle:
// the framework file the build will compile, the project-supplied replacement,
// and the suffix used to derive the backup path from the original.
type Substitution struct {
	Original     Path
	Replacement  Path
	BackupSuffix string
}

// Backup returns the backup path derived from the original path.
func (s Substitution) Backup() Path {
	return s.Original + Path(s.BackupSuffix)
}

// ManifestPath returns the path of the YAML sidecar recorded next to the
// backup. The sidecar is advisory; only the backup file itself marks an
// active swap.
func (s Substitution) ManifestPath() Path {
	return s.Backup() + ".yaml"
}

// SwapOutcome classifies what a SwapIn call did.
type SwapOutcome string

const (
	// SwapPerformed means a fresh backup was taken and the replacement
	// copied over the original.
	SwapPerformed SwapOutcome = "swapped"

	// SwapBackupReused means a backup already existed (re-run or crashed
	// prior cycle); the replacement was re-applied without touching it.
	SwapBackupReused SwapOutcome = "backup-reused"

	// SwapMissingSource means the original file was absent and nothing was
	// written. The build will fail downstream on its own.
	SwapMissingSource SwapOutcome = "missing-source"
)

// RestoreOutcome classifies what a Restore call did.
type RestoreOutcome string

const (
	// RestorePerformed means the original was rewritten from the backup and
	// the backup removed.
	RestorePerformed RestoreOutcome = "restored"

	// RestoreNoBackup means no backup was present and nothing was touched.
	// Expected on redundant invocations (post-build then pre-clean).
	RestoreNoBackup RestoreOutcome = "no-backup"
)

// FileStatus reports the presence of one of the three files on disk.
type FileStatus struct {
	Path   Path
	Exists bool
}

// Status is a point-in-time snapshot of the swap cycle for display.
type Status struct {
	State       SwapState
	Original    FileStatus
	Backup      FileStatus
	Replacement FileStatus
	LastEvent   *Event
}
