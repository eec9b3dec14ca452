package board

import "github.com/daystram/arbiter/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// Sides lists the playing sides in move order.
var Sides = [2]Side{SideWhite, SideBlack}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the square offset of a single pawn push for s.
func (s Side) Forward() position.Pos {
	if s == SideBlack {
		return -Width
	}
	return Width
}

// PromotionRank is the rank on which pawns of s promote.
func (s Side) PromotionRank() position.Pos {
	if s == SideBlack {
		return position.Rank1
	}
	return position.Rank8
}
