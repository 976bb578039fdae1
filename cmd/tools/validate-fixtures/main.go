package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yosintv/matchsite/internal/pkg/models"
)

// Standalone linter for fixture JSON drops. Reports files that do not parse,
// records missing required fields, and match ids that appear in more than
// one file (only the first occurrence will be rendered).
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: validate-fixtures <fixtures-dir>")
	}
	dir := os.Args[1]

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("Failed to read directory: %v", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	firstSeen := make(map[string]string) // match_id -> file
	problems := 0
	total := 0

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Printf("UNREADABLE  %s: %v\n", name, err)
			problems++
			continue
		}

		var records []models.MatchRecord
		if err := json.Unmarshal(data, &records); err != nil {
			var single models.MatchRecord
			if err := json.Unmarshal(data, &single); err != nil {
				fmt.Printf("UNPARSABLE  %s: %v\n", name, err)
				problems++
				continue
			}
			records = []models.MatchRecord{single}
		}

		for i, r := range records {
			total++
			if r.MatchID == "" {
				fmt.Printf("NO MATCH_ID %s[%d] (fixture %q)\n", name, i, r.Fixture)
				problems++
				continue
			}
			if r.Kickoff == 0 {
				fmt.Printf("NO KICKOFF  %s[%d] (match_id %s)\n", name, i, r.MatchID)
				problems++
			}
			if r.Fixture == "" {
				fmt.Printf("NO FIXTURE  %s[%d] (match_id %s, will be skipped at render)\n", name, i, r.MatchID)
				problems++
			}
			if prev, dup := firstSeen[r.MatchID]; dup && prev != name {
				fmt.Printf("DUPLICATE   %s[%d] match_id %s already in %s\n", name, i, r.MatchID, prev)
				problems++
			} else if !dup {
				firstSeen[r.MatchID] = name
			}
		}
	}

	fmt.Printf("\nChecked %d files, %d records, %d unique match ids, %d problems\n",
		len(names), total, len(firstSeen), problems)
	if problems > 0 {
		os.Exit(1)
	}
}
