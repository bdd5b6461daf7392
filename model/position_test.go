package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want Position
	}{
		{in: "QB", want: POS_QB},
		{in: "qb", want: POS_QB},
		{in: "RB", want: POS_RB},
		{in: "FB", want: POS_RB},
		{in: "WR", want: POS_WR},
		{in: "TE", want: POS_TE},
		{in: "DEF", want: POS_DST},
		{in: "DST", want: POS_DST},
		{in: "K", want: POS_UNKNOWN},
		{in: "", want: POS_UNKNOWN},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParsePosition(tc.in); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSlotLabel(t *testing.T) {
	want := []string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "DST"}
	for i, w := range want {
		if got := SlotLabel(i); got != w {
			t.Errorf("slot %d: expected %s, got %s", i, w, got)
		}
	}
	// Anything past the fixed slots falls back to FLEX.
	if got := SlotLabel(8); got != "FLEX" {
		t.Errorf("slot 8: expected FLEX, got %s", got)
	}
	if got := SlotLabel(100); got != "FLEX" {
		t.Errorf("slot 100: expected FLEX, got %s", got)
	}
}
