package tier

import "testing"

func TestOf_Boundaries(t *testing.T) {
	tests := []struct {
		rating int
		want   Tier
	}{
		{0, NeedsDevelopment},
		{49, NeedsDevelopment},
		{50, Developing},
		{79, Developing},
		{80, Strength},
		{100, Strength},
	}

	for _, tt := range tests {
		if got := Of(tt.rating); got != tt.want {
			t.Errorf("Of(%d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, tr := range All() {
		if !tr.IsValid() {
			t.Errorf("%q should be valid", tr)
		}
	}
	if Tier("expert").IsValid() {
		t.Error("unknown tier should be invalid")
	}
}
