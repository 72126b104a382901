package calendar

import "strings"

// ExclusionPolicy drops calendar entries that exist only to block time on
// the calendar, so they never show up as meetings. A policy value is
// injected into the service; nothing here is package-global state.
type ExclusionPolicy struct {
	ExactTitles             []string
	PartialTitles           []string
	CaseInsensitivePartials []string
}

// DefaultExclusionPolicy returns the stock blocker-title list.
func DefaultExclusionPolicy() ExclusionPolicy {
	return ExclusionPolicy{
		ExactTitles: []string{
			"Block",
			"Refrain from scheduling | Ask before scheduling",
			"Buffer / Do not schedule",
			"Blocked",
			"Try and not schedule if possible",
		},
		PartialTitles: []string{},
		CaseInsensitivePartials: []string{
			"Commute",
			"OOO",
		},
	}
}

// Exclude reports whether an event with the given title should be dropped.
// Empty titles are kept.
func (p ExclusionPolicy) Exclude(title string) bool {
	if title == "" {
		return false
	}
	for _, exact := range p.ExactTitles {
		if title == exact {
			return true
		}
	}
	for _, partial := range p.PartialTitles {
		if strings.Contains(title, partial) {
			return true
		}
	}
	lower := strings.ToLower(title)
	for _, partial := range p.CaseInsensitivePartials {
		if strings.Contains(lower, strings.ToLower(partial)) {
			return true
		}
	}
	return false
}

// ExclusionSummary is the payload of the excluded-titles endpoint.
type ExclusionSummary struct {
	ExactMatches                  []string `json:"exact_matches"`
	PartialMatches                []string `json:"partial_matches"`
	CaseInsensitivePartialMatches []string `json:"case_insensitive_partial_matches"`
}

// Summary lists the configured exclusions by match type.
func (p ExclusionPolicy) Summary() ExclusionSummary {
	return ExclusionSummary{
		ExactMatches:                  append([]string{}, p.ExactTitles...),
		PartialMatches:                append([]string{}, p.PartialTitles...),
		CaseInsensitivePartialMatches: append([]string{}, p.CaseInsensitivePartials...),
	}
}
