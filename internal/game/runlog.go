package game

import (
	"log/slog"

	"missile-engine/internal/logging"
)

// RunLogFile is the JSONL file completed sessions are appended to.
const RunLogFile = "runs.jsonl"

// RunLog records statistics gathered during one session on the range.
type RunLog struct {
	Class        string         `json:"class"`
	Difficulty   int            `json:"difficulty"`
	Seed         int64          `json:"seed"`
	TurnsPlayed  int            `json:"turns"`
	Shots        int            `json:"shots"`
	Hits         int            `json:"hits"`
	Declined     int            `json:"declined"`
	AlliesHit    int            `json:"allies_hit"`
	Kills        map[string]int `json:"kills"`    // species name → count
	Missiles     map[string]int `json:"missiles"` // disposition → count
	DamageTaken  int            `json:"damage_taken"`
	CauseOfDeath string         `json:"cause_of_death,omitempty"`
	Cleared      bool           `json:"cleared"`
}

func newRunLog() RunLog {
	return RunLog{Kills: make(map[string]int), Missiles: make(map[string]int)}
}

// saveRunLog appends the completed session as a single JSON line. A disk
// problem is logged and never crashes the game.
func saveRunLog(dataHome string, log RunLog, logger *slog.Logger) {
	logging.AppendRecord(dataHome, RunLogFile, log, logger)
}
