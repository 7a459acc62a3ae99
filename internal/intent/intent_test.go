package intent

import "testing"

func TestMatchExtractsAmountAndYears(t *testing.T) {
	m := NewMatcher()

	got, ok := m.Match("invest 5000 per month for 10 years")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Monthly != 5000 || got.Years != 10 {
		t.Fatalf("unexpected extraction: %+v", got)
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	m := NewMatcher()

	got, ok := m.Match("Invest 2000 PER Month for 5 Years")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Monthly != 2000 || got.Years != 5 {
		t.Fatalf("unexpected extraction: %+v", got)
	}
}

func TestMatchAcceptsRupeeMarkerAndMonthly(t *testing.T) {
	m := NewMatcher()

	got, ok := m.Match("can I put ₹1500 per monthly basis for 3 years?")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Monthly != 1500 || got.Years != 3 {
		t.Fatalf("unexpected extraction: %+v", got)
	}
}

func TestMatchFallsThrough(t *testing.T) {
	m := NewMatcher()

	inputs := []string{
		"I invested 5000 last month",
		"what is an emi?",
		"invest per month for years",
		"invest 5000 per week for 10 years",
		"",
	}

	for _, input := range inputs {
		if _, ok := m.Match(input); ok {
			t.Fatalf("expected no match for %q", input)
		}
	}
}
