package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/kanba/internal/board"
)

// MatchKind tags what a fuzzy match points at.
type MatchKind string

const (
	MatchNote MatchKind = "note"
	MatchLane MatchKind = "lane"
)

// Match is one jump target: a lane, or a note plus the lane holding it.
type Match struct {
	Kind   MatchKind
	ID     string
	LaneID string // owning lane for notes, same as ID for lanes
	Label  string
	score  int
}

// Substring hits score 0; everything else ranks by edit distance, with a
// cutoff so typing "xyz" does not surface the entire board.
const maxEditDistance = 3

// FuzzyMatches ranks lanes and notes against query for the jump overlay.
// Blank queries match nothing. Results are sorted best-first and capped
// at limit.
func FuzzyMatches(snap board.Snapshot, query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	owner := make(map[string]string, len(snap.Notes))
	for _, l := range snap.Lanes {
		for _, id := range l.NoteIDs {
			owner[id] = l.ID
		}
	}

	var out []Match
	consider := func(m Match) {
		s, ok := score(q, m.Label)
		if !ok {
			return
		}
		m.score = s
		out = append(out, m)
	}
	for _, l := range snap.Lanes {
		consider(Match{Kind: MatchLane, ID: l.ID, LaneID: l.ID, Label: l.Name})
	}
	for _, n := range snap.Notes {
		laneID, ok := owner[n.ID]
		if !ok {
			continue // orphans have no position to jump to
		}
		consider(Match{Kind: MatchNote, ID: n.ID, LaneID: laneID, Label: n.Task})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score < out[j].score
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func score(q, label string) (int, bool) {
	l := strings.ToLower(label)
	if strings.Contains(l, q) {
		return 0, true
	}
	dist := levenshtein.ComputeDistance(q, l)
	// Short queries against long labels always have a large distance;
	// compare against the label's words too so "reprt" finds
	// "write the report".
	for _, w := range strings.Fields(l) {
		if d := levenshtein.ComputeDistance(q, w); d < dist {
			dist = d
		}
	}
	if dist > maxEditDistance {
		return 0, false
	}
	return dist, true
}
