package perftrack

import "testing"

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"low", PriorityLow},
		{"medium", PriorityMedium},
		{"high", PriorityHigh},
		{"critical", PriorityCritical},
		{"urgent", PriorityMedium}, // unknown names fall back
		{"", PriorityMedium},
	}
	for _, tt := range tests {
		if got := ParsePriority(tt.in); got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPriorityTextRoundTrip(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical} {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", p, err)
		}
		var back Priority
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != p {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
}

func TestPriorityOrdering(t *testing.T) {
	if !(PriorityLow < PriorityMedium && PriorityMedium < PriorityHigh && PriorityHigh < PriorityCritical) {
		t.Error("priority values must order low < medium < high < critical")
	}
}
