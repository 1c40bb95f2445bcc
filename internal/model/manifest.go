package model

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ManifestVersion is the current backup manifest schema version.
const ManifestVersion = 1

// Manifest is the YAML sidecar written next to a backup when it is taken.
// It records the backup's SHA-256 so a restore can warn about a corrupted
// backup. A missing or unreadable manifest never changes restore behavior.
type Manifest struct {
	Version      int       `yaml:"version"`
	Original     Path      `yaml:"original"`
	Backup       Path      `yaml:"backup"`
	Replacement  Path      `yaml:"replacement"`
	BackupSHA256 string    `yaml:"backup_sha256"`
	CreatedAt    time.Time `yaml:"created_at"`
}

// NewManifest builds a manifest for the given substitution and backup hash.
func NewManifest(sub Substitution, backupHash string, createdAt time.Time) Manifest {
	return Manifest{
		Version:      ManifestVersion,
		Original:     sub.Original,
		Backup:       sub.Backup(),
		Replacement:  sub.Replacement,
		BackupSHA256: backupHash,
		CreatedAt:    createdAt,
	}
}

// Encode serializes the manifest to YAML.
func (m Manifest) Encode() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	return data, nil
}

// DecodeManifest parses a YAML manifest.
func DecodeManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to decode manifest: %w", err)
	}

	return m, nil
}
