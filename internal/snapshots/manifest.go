package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks the accumulated snapshot files in an output directory.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Runs        []RunEntry `json:"runs"`
}

// RunEntry records one saved response.
type RunEntry struct {
	File    string    `json:"file"`
	SavedAt time.Time `json:"savedAt"`
	Events  int       `json:"events"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version: 1,
		Runs:    []RunEntry{},
	}
}

// readManifest loads the manifest, resetting to an empty one when the
// file is absent or corrupt. Manifest trouble never fails a run.
func readManifest(path string) Manifest {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest()
	}
	defer f.Close()

	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest()
	}
	if m.Runs == nil {
		m.Runs = []RunEntry{}
	}
	return m
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
