package calendar

import "testing"

func TestExclusionPolicyExactMatch(t *testing.T) {
	p := DefaultExclusionPolicy()

	for _, title := range []string{
		"Block",
		"Blocked",
		"Buffer / Do not schedule",
		"Refrain from scheduling | Ask before scheduling",
		"Try and not schedule if possible",
	} {
		if !p.Exclude(title) {
			t.Errorf("Exclude(%q) = false, want true", title)
		}
	}

	// Exact rules do not match as substrings.
	if p.Exclude("Block party planning") {
		t.Error("exact rule matched as a substring")
	}
}

func TestExclusionPolicyCaseInsensitivePartial(t *testing.T) {
	p := DefaultExclusionPolicy()

	for _, title := range []string{
		"Morning commute",
		"COMMUTE home",
		"Sam OOO",
		"ooo - back Monday",
	} {
		if !p.Exclude(title) {
			t.Errorf("Exclude(%q) = false, want true", title)
		}
	}
}

func TestExclusionPolicyKeepsNormalTitles(t *testing.T) {
	p := DefaultExclusionPolicy()

	for _, title := range []string{"", "1:1 with Sam", "Design Review", "Lunch"} {
		if p.Exclude(title) {
			t.Errorf("Exclude(%q) = true, want false", title)
		}
	}
}

func TestExclusionSummaryListsAllRules(t *testing.T) {
	s := DefaultExclusionPolicy().Summary()

	if len(s.ExactMatches) != 5 {
		t.Errorf("exact matches = %d, want 5", len(s.ExactMatches))
	}
	if len(s.PartialMatches) != 0 {
		t.Errorf("partial matches = %d, want 0", len(s.PartialMatches))
	}
	if len(s.CaseInsensitivePartialMatches) != 2 {
		t.Errorf("case-insensitive matches = %d, want 2", len(s.CaseInsensitivePartialMatches))
	}
}
