package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_DST     Position = "DST"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "qb":
		return POS_QB
	case "rb", "fb":
		return POS_RB
	case "wr":
		return POS_WR
	case "te":
		return POS_TE
	case "def", "dst":
		return POS_DST
	default:
		return POS_UNKNOWN
	}
}

// StarterSlots is the fixed lineup convention for this league. The index
// into a roster's starter list determines the slot label, regardless of
// the player's nominal position. There is no kicker slot.
var StarterSlots = []string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "DST"}

// SlotLabel returns the lineup slot label for a starter index. Indexes
// past the known slots are treated as FLEX, matching how extra starter
// spots have historically been labeled.
func SlotLabel(i int) string {
	if i >= 0 && i < len(StarterSlots) {
		return StarterSlots[i]
	}
	return "FLEX"
}
