package composer

import "strings"

// Candidate is one entry of the host-supplied mention directory. The composer
// never mutates candidates; it only filters and orders a bounded window.
type Candidate struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
}

// Label is the text a mention renders and inserts as: the display name when
// present, the username otherwise.
func (c Candidate) Label() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Username
}

func (c Candidate) matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Username), q) ||
		strings.Contains(strings.ToLower(c.DisplayName), q)
}

// filterCandidates returns at most max case-insensitive substring matches on
// username or display name, in directory order. An empty query returns the
// first max entries unfiltered.
func filterCandidates(directory []Candidate, query string, max int) []Candidate {
	if max <= 0 {
		return nil
	}
	out := make([]Candidate, 0, max)
	for _, c := range directory {
		if !c.matches(query) {
			continue
		}
		out = append(out, c)
		if len(out) == max {
			break
		}
	}
	return out
}
