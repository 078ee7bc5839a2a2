package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"missile-engine/internal/logging"
)

func readRuns(t *testing.T, dataHome string) []string {
	t.Helper()
	dir, err := logging.DataDir(dataHome)
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, RunLogFile))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestSaveRunLog(t *testing.T) {
	tmp := t.TempDir()
	log := newRunLog()
	log.Class = "Ranger"
	log.Shots = 12
	log.Kills["goblin"] = 2
	log.Missiles["returned"] = 1
	log.CauseOfDeath = "the orc archer"
	saveRunLog(tmp, log, logging.Discard())

	lines := readRuns(t, tmp)
	if len(lines) != 1 {
		t.Fatalf("got %d lines; want 1", len(lines))
	}
	var got RunLog
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if got.Class != "Ranger" || got.Shots != 12 || got.Kills["goblin"] != 2 || got.CauseOfDeath != "the orc archer" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	tmp := t.TempDir()
	for i := range 3 {
		log := newRunLog()
		log.TurnsPlayed = i + 1
		saveRunLog(tmp, log, logging.Discard())
	}
	if lines := readRuns(t, tmp); len(lines) != 3 {
		t.Errorf("got %d lines; want 3", len(lines))
	}
}

func TestRunLogOmitsEmptyCause(t *testing.T) {
	data, err := json.Marshal(newRunLog())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "cause_of_death") {
		t.Errorf("cleared run should not carry a cause of death: %s", data)
	}
}
