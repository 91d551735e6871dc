package arena

import (
	"fmt"
	"strings"
)

// BattleLogEntry is one recorded event during a battle.
type BattleLogEntry struct {
	Tick     int
	Tank     string  // tank name, or "--" for global events
	Category string  // radar, move, gun, bullet, wall, round
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] ronaldo gun     fire            power=3.0
func (e BattleLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-7s %-16s %s",
		e.Tick, e.Tank, e.Category, e.Key, e.Value)
}

// BattleLog collects structured events during a battle. It is unbounded and
// machine-readable; tests and the headless report filter it rather than
// parsing console output.
type BattleLog struct {
	entries []BattleLogEntry
	verbose bool
}

// NewBattleLog creates a BattleLog. If verbose is true, per-tick kinematic
// entries are also recorded.
func NewBattleLog(verbose bool) *BattleLog {
	return &BattleLog{verbose: verbose}
}

// Add records a new entry.
func (bl *BattleLog) Add(tick int, tank, category, key, value string, numVal float64) {
	bl.entries = append(bl.entries, BattleLogEntry{
		Tick:     tick,
		Tank:     tank,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (bl *BattleLog) AddVerbose(tick int, tank, category, key, value string, numVal float64) {
	if !bl.verbose {
		return
	}
	bl.Add(tick, tank, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (bl *BattleLog) Entries() []BattleLogEntry {
	return bl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (bl *BattleLog) Filter(category, key string) []BattleLogEntry {
	var out []BattleLogEntry
	for _, e := range bl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTank returns entries for a specific tank name.
func (bl *BattleLog) FilterTank(name string) []BattleLogEntry {
	var out []BattleLogEntry
	for _, e := range bl.entries {
		if e.Tank == name {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (bl *BattleLog) CountCategory(category, key string) int {
	return len(bl.Filter(category, key))
}

// FirstOf returns the earliest entry matching category+key, or false if none.
func (bl *BattleLog) FirstOf(category, key string) (BattleLogEntry, bool) {
	entries := bl.Filter(category, key)
	if len(entries) == 0 {
		return BattleLogEntry{}, false
	}
	return entries[0], true
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (bl *BattleLog) LastOf(category, key string) (BattleLogEntry, bool) {
	entries := bl.Filter(category, key)
	if len(entries) == 0 {
		return BattleLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and
// value substring.
func (bl *BattleLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range bl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (bl *BattleLog) Format() string {
	var sb strings.Builder
	for _, e := range bl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
