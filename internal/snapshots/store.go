package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/kvckarthik/sportsData/internal/domain"
)

// Store reads previously saved responses back from an output directory.
type Store struct {
	basePath string
}

// NewStore constructs a store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// Load reads a saved snapshot file by name and decodes it into a Document.
func (s *Store) Load(name string) (domain.Document, error) {
	if s == nil {
		return domain.Document{}, errors.New("snapshot store not configured")
	}
	if name == "" {
		return domain.Document{}, errors.New("snapshot name required")
	}

	raw, err := os.ReadFile(filepath.Join(s.basePath, name))
	if err != nil {
		return domain.Document{}, err
	}

	var sb domain.Scoreboard
	if err := json.Unmarshal(raw, &sb); err != nil {
		return domain.Document{}, err
	}
	return domain.Document{Scoreboard: sb, Raw: raw}, nil
}

// Runs lists the recorded runs from the manifest, oldest first. Missing
// or corrupt manifests yield an empty list.
func (s *Store) Runs() []RunEntry {
	if s == nil {
		return nil
	}
	m := readManifest(filepath.Join(s.basePath, "manifest.json"))
	return m.Runs
}
