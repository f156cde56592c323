package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Writer persists raw scoreboard responses as pretty-printed JSON files
// named by their fetch timestamp, and keeps a manifest of saved runs.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath. The directory is
// created on first write.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteScoreboard writes the raw response for a run started at ts and
// returns the path of the file written. The payload is re-encoded with
// two-space indentation and non-ASCII characters left literal; parsed
// content is otherwise identical to the input.
func (w *Writer) WriteScoreboard(raw []byte, ts time.Time) (string, error) {
	if w == nil {
		return "", fmt.Errorf("snapshot writer not configured")
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty document")
	}

	pretty, events, err := indentDocument(raw)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.basePath, 0o755); err != nil {
		return "", err
	}

	target := ScoreboardPath(w.basePath, ts)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, pretty, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, target); err != nil {
		return "", err
	}

	if err := w.updateManifest(RunEntry{
		File:    filepath.Base(target),
		SavedAt: ts.UTC(),
		Events:  events,
	}); err != nil {
		return "", err
	}

	return target, nil
}

func (w *Writer) updateManifest(entry RunEntry) error {
	m := readManifest(filepath.Join(w.basePath, "manifest.json"))

	replaced := false
	for i, run := range m.Runs {
		if run.File == entry.File {
			m.Runs[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		m.Runs = append(m.Runs, entry)
	}

	return writeManifest(w.basePath, m)
}

// indentDocument re-encodes raw JSON with stable two-space indentation.
// SetEscapeHTML(false) keeps non-ASCII and markup characters literal.
// It also reports how many events the document carries for the manifest.
func indentDocument(raw []byte) ([]byte, int, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, 0, err
	}

	events := 0
	if top, ok := doc.(map[string]any); ok {
		if evs, ok := top["events"].([]any); ok {
			events = len(evs)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), events, nil
}
