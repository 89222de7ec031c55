// Package matching implements the deterministic candidate-matching
// filter: a pure function from a target age to a ranked subset of the
// static candidate pool.
package matching

import (
	"regexp"
	"strconv"

	"github.com/onedate/onedate/internal/models"
)

const (
	// DefaultWindow is the half-width of the accepted age interval:
	// candidates within [target-7, target+7] match.
	DefaultWindow = 7

	// DefaultLimit caps how many matches are returned.
	DefaultLimit = 2
)

var firstInt = regexp.MustCompile(`\d+`)

// ParseTargetAge extracts the target age from a query string that may
// encode a range like "25-32": the first embedded integer wins. It
// returns 0 when no positive integer is found, which Match treats as
// "no age constraint".
func ParseTargetAge(raw string) int {
	m := firstInt.FindString(raw)
	if m == "" {
		return 0
	}
	age, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return age
}

// Match filters pool by targetAge and truncates to limit.
//
// A non-positive targetAge passes every candidate through. Otherwise a
// candidate survives iff its age lies in the closed interval
// [targetAge-window, targetAge+window] with window = DefaultWindow.
// The pool's relative order is preserved; there is no re-sorting by
// rating or name. The result is never nil-vs-error: no survivors means
// an empty slice.
func Match(pool []models.Candidate, targetAge, limit int) []models.Candidate {
	return MatchWindow(pool, targetAge, DefaultWindow, limit)
}

// MatchWindow is Match with an explicit interval half-width.
func MatchWindow(pool []models.Candidate, targetAge, window, limit int) []models.Candidate {
	matches := make([]models.Candidate, 0, limit)
	for _, c := range pool {
		if targetAge > 0 && (c.Age < targetAge-window || c.Age > targetAge+window) {
			continue
		}
		matches = append(matches, c)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches
}
