package snapshots

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kvckarthik/sportsData/internal/timeutil"
)

// FileName builds the snapshot file name for a run started at ts,
// e.g. nfl_scoreboard_20240908_170000.json. Reruns within the same
// second reuse the name and overwrite.
func FileName(ts time.Time) string {
	return fmt.Sprintf("nfl_scoreboard_%s.json", timeutil.Stamp(ts))
}

// ScoreboardPath builds the full path to a run's snapshot file.
func ScoreboardPath(basePath string, ts time.Time) string {
	return filepath.Join(basePath, FileName(ts))
}
