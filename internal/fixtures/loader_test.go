package fixtures

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir_SingleObjectAndArray(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.json", `{"match_id":"m1","kickoff":1700000000,"fixture":"A vs B"}`)
	writeFixture(t, dir, "b.json", `[
		{"match_id":"m2","kickoff":1700003600,"fixture":"C vs D"},
		{"match_id":"m3","kickoff":1700007200,"fixture":"E vs F"}
	]`)

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].MatchID != "m1" || records[1].MatchID != "m2" || records[2].MatchID != "m3" {
		t.Errorf("order = %s, %s, %s", records[0].MatchID, records[1].MatchID, records[2].MatchID)
	}
}

func TestLoadDir_DuplicatesFirstWins(t *testing.T) {
	dir := t.TempDir()
	// Files load in name order, so 01.json is first.
	writeFixture(t, dir, "01.json", `{"match_id":"m1","kickoff":1700000000,"fixture":"First Version"}`)
	writeFixture(t, dir, "02.json", `{"match_id":"m1","kickoff":1700000000,"fixture":"Second Version"}`)

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Fixture != "First Version" {
		t.Errorf("fixture = %q, want the first file's version", records[0].Fixture)
	}
}

func TestLoadDir_MissingRequiredFields(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.json", `[
		{"match_id":"m1","kickoff":1700000000,"fixture":"Kept"},
		{"match_id":"m2","fixture":"No Kickoff"},
		{"kickoff":1700000000,"fixture":"No ID"}
	]`)

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(records) != 1 || records[0].MatchID != "m1" {
		t.Fatalf("records = %+v, want only m1", records)
	}
}

func TestLoadDir_MalformedFileSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "bad.json", `{not json at all`)
	writeFixture(t, dir, "good.json", `{"match_id":"m1","kickoff":1700000000}`)

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestLoadDir_StringKickoff(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.json", `{"match_id":"m1","kickoff":"1700000000","fixture":"A vs B"}`)

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if records[0].KickoffUnix() != 1700000000 {
		t.Errorf("kickoff = %d, want 1700000000", records[0].KickoffUnix())
	}
}

func TestLoadDir_Empty(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "bad.json", `broken`)

	_, err := LoadDir(dir)
	if !errors.Is(err, ErrNoFixtures) {
		t.Errorf("err = %v, want ErrNoFixtures", err)
	}
}

func TestLoadDir_IgnoresNonJSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "notes.txt", `not a fixture`)
	writeFixture(t, dir, "a.json", `{"match_id":"m1","kickoff":1700000000}`)

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}
