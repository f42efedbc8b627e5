package symcheck

import "slices"

// Urgency levels for condition information.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// ConditionInfo describes a condition for display.
type ConditionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Advice      string `json:"advice"`
	Urgency     string `json:"urgency"`
}

// Condition is one scoring entry: a disease and its catalogued symptoms.
type Condition struct {
	Name        string
	Symptoms    []Token
	Precautions []string
	Info        *ConditionInfo
}

// Dataset is an ordered list of conditions to score against.
type Dataset []Condition

// Match is a condition that shares symptoms with the user's tokens.
type Match struct {
	Disease     string         `json:"disease"`
	Matches     int            `json:"matches"`
	Total       int            `json:"total"`
	Percentage  float64        `json:"matchPercentage"`
	Precautions []string       `json:"precautions"`
	Info        *ConditionInfo `json:"info,omitempty"`
}

// Score ranks the reference diseases against the user's tokens.
// Any disease sharing at least one token is included.
func Score(user TokenSet, ref *Reference) []Match {
	return ScoreDataset(user, ref.Dataset(), 0)
}

// ScoreDataset ranks conditions by the share of their symptoms present in
// user. Conditions with no matching symptom, or whose percentage is below
// threshold, are skipped. Results are ordered by percentage, then by match
// count, both descending; remaining ties keep dataset order.
func ScoreDataset(user TokenSet, ds Dataset, threshold float64) []Match {
	matches := []Match{}
	if len(user) == 0 {
		return matches
	}

	for _, c := range ds {
		total := distinct(c.Symptoms)
		if total == 0 {
			continue
		}

		n := 0
		seen := make(TokenSet, len(c.Symptoms))
		for _, t := range c.Symptoms {
			if seen.Has(t) {
				continue
			}
			seen.Add(t)
			if user.Has(t) {
				n++
			}
		}
		if n == 0 {
			continue
		}

		pct := float64(n) * 100 / float64(total)
		if pct < threshold {
			continue
		}

		precautions := c.Precautions
		if precautions == nil {
			precautions = []string{}
		}
		matches = append(matches, Match{
			Disease:     c.Name,
			Matches:     n,
			Total:       total,
			Percentage:  pct,
			Precautions: precautions,
			Info:        c.Info,
		})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Percentage > b.Percentage:
			return -1
		case a.Percentage < b.Percentage:
			return 1
		}
		return b.Matches - a.Matches
	})
	return matches
}

func distinct(tokens []Token) int {
	return NewTokenSet(tokens...).Len()
}
