package triage

import (
	"strings"

	"github.com/treyloggins4-create/tk/internal/domain"
)

// Filter returns the submissions matching the free-text search term and the
// status selector. It is a pure function of its inputs and preserves the
// order of the input slice.
//
// The term matches when it is a case-insensitive substring of name, email or
// service, or a case-sensitive substring of phone. The status selector "all"
// passes everything; any other value restricts to an exact match. Both
// conditions are ANDed.
func Filter(all []domain.ContactSubmission, term, status string) []domain.ContactSubmission {
	filtered := make([]domain.ContactSubmission, 0, len(all))
	lowered := strings.ToLower(term)
	for _, sub := range all {
		if status != domain.StatusAll && sub.Status != status {
			continue
		}
		if term != "" && !matchesTerm(&sub, term, lowered) {
			continue
		}
		filtered = append(filtered, sub)
	}
	return filtered
}

func matchesTerm(sub *domain.ContactSubmission, term, lowered string) bool {
	return strings.Contains(strings.ToLower(sub.Name), lowered) ||
		strings.Contains(strings.ToLower(sub.Email), lowered) ||
		strings.Contains(strings.ToLower(sub.Service), lowered) ||
		strings.Contains(sub.Phone, term)
}

// Summary holds the derived triage counts. They are computed from the full
// loaded set and are not affected by the active filter.
type Summary struct {
	Total     int
	New       int
	Active    int // contacted or quoted
	Completed int
}

// Summarize computes the summary counts over a submission set.
func Summarize(all []domain.ContactSubmission) Summary {
	s := Summary{Total: len(all)}
	for _, sub := range all {
		switch sub.Status {
		case domain.StatusNew:
			s.New++
		case domain.StatusContacted, domain.StatusQuoted:
			s.Active++
		case domain.StatusCompleted:
			s.Completed++
		}
	}
	return s
}
