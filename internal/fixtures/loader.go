package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yosintv/matchsite/internal/pkg/models"
)

// ErrNoFixtures is returned when no usable record survives loading.
// Nothing downstream can render without data, so callers treat it as fatal.
var ErrNoFixtures = errors.New("no valid fixture records found")

// LoadDir reads every *.json file in dir and returns the accepted match
// records in first-seen order. Files are visited in name order so a run is
// reproducible. A file holds either one fixture object or an array of them.
// Records without match_id or kickoff never enter the collection, and a
// match_id seen in an earlier file wins over later duplicates. A file that
// fails to read or parse is reported and skipped; it does not abort the run.
func LoadDir(dir string) ([]models.MatchRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var records []models.MatchRecord
	seen := make(map[string]bool)

	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("Failed to read fixture file, skipping", "file", name, "error", err)
			continue
		}

		recs, err := parseFile(data)
		if err != nil {
			slog.Warn("Failed to parse fixture file, skipping", "file", name, "error", err)
			continue
		}

		for _, r := range recs {
			if r.MatchID == "" || r.Kickoff == 0 {
				slog.Debug("Dropping record without required fields", "file", name, "match_id", r.MatchID)
				continue
			}
			if seen[r.MatchID] {
				continue
			}
			seen[r.MatchID] = true
			records = append(records, r)
		}
	}

	slog.Info("Fixtures loaded", "files", len(names), "matches", len(records))

	if len(records) == 0 {
		return nil, ErrNoFixtures
	}
	return records, nil
}

// parseFile accepts either a single fixture object or an array of them.
func parseFile(data []byte) ([]models.MatchRecord, error) {
	var list []models.MatchRecord
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var single models.MatchRecord
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []models.MatchRecord{single}, nil
}
