package model

import "time"

// Event is one record in the swap audit journal. Events describe what the
// guard did and when; they never carry file contents and are not a backup
// mechanism.
type Event struct {
	Action   string    `json:"action"`
	Outcome  string    `json:"outcome"`
	Original Path      `json:"original"`
	At       time.Time `json:"at"`
}

// Journal actions recorded by the guard.
const (
	ActionSwapIn  = "swap-in"
	ActionRestore = "restore"
)
