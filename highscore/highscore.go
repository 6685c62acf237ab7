// Package highscore implements the bounded, ranked table of the best
// unique-word submissions in a game.
package highscore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// DefaultMax is the nominal table length. The working cap enforced on
// every insertion is one less than this.
const DefaultMax = 10

// An Entry is a scored word. Entries are never mutated in place; they
// are only ever inserted or evicted.
type Entry struct {
	Word  string
	Score int
}

// An InsertResult reports whether an insertion was accepted, along with
// a snapshot of the table right after the attempt.
type InsertResult struct {
	Accepted bool
	Entries  []Entry
}

// A Table keeps entries ordered by score descending; entries with equal
// scores keep their insertion order, earlier above later.
type Table struct {
	max     int
	entries []Entry
}

// New creates an empty table with the given nominal length. Non-positive
// lengths fall back to DefaultMax.
func New(max int) *Table {
	if max <= 0 {
		max = DefaultMax
	}
	return &Table{max: max}
}

// TryInsert offers a scored word to the table. A word already in the
// table is rejected outright, with no state change. Otherwise the word
// is added, the table is re-ranked and truncated to its working cap.
//
// A word whose score ties the entry at the last bounded position is then
// admitted a second time. This ranking rule has always been a little
// suspect (see DESIGN.md, boundary re-admission); we keep it as-is. With
// entries held in a slice the re-admitted copy ties the lowest ranked
// score and sorts to the very bottom, so the same truncation cuts it
// right back out: the table stays duplicate-free and never exceeds its
// working cap.
func (t *Table) TryInsert(word string, score int) InsertResult {
	if lo.ContainsBy(t.entries, func(e Entry) bool { return e.Word == word }) {
		return InsertResult{Accepted: false, Entries: t.Entries()}
	}
	t.admit(word, score)
	if boundary, ok := t.EntryAt(t.max - 2); ok && boundary.Score == score {
		t.admit(word, score)
	}
	return InsertResult{Accepted: true, Entries: t.Entries()}
}

func (t *Table) admit(word string, score int) {
	t.entries = append(t.entries, Entry{Word: word, Score: score})
	// The sort must be stable so that equal scores keep ranking by
	// insertion order across repeated insertions.
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})
	if len(t.entries) > t.max-1 {
		t.entries = t.entries[:t.max-1]
	}
}

// EntryAt returns the entry at the given 0-based position, 0 being the
// highest score. Positions outside the table, including negative ones,
// return ok=false rather than panicking.
func (t *Table) EntryAt(position int) (Entry, bool) {
	if position < 0 || position >= len(t.entries) {
		return Entry{}, false
	}
	return t.entries[position], true
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the ranked entries.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

func (t *Table) ToDisplayText() string {
	if len(t.entries) == 0 {
		return "No high scores yet.\n"
	}
	var ss strings.Builder
	ss.WriteString("     Word                Score\n")
	for i, e := range t.entries {
		fmt.Fprintf(&ss, "%3d: %-20s%-6d\n", i+1, e.Word, e.Score)
	}
	return ss.String()
}
