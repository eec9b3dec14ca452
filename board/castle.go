package board

import "github.com/daystram/arbiter/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteKingside
	CastleDirectionWhiteQueenside
	CastleDirectionBlackKingside
	CastleDirectionBlackQueenside
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteKingside:
		return "White 0-0"
	case CastleDirectionWhiteQueenside:
		return "White 0-0-0"
	case CastleDirectionBlackKingside:
		return "Black 0-0"
	case CastleDirectionBlackQueenside:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) Side() Side {
	switch d {
	case CastleDirectionWhiteKingside, CastleDirectionWhiteQueenside:
		return SideWhite
	case CastleDirectionBlackKingside, CastleDirectionBlackQueenside:
		return SideBlack
	default:
		return SideUnknown
	}
}

func (d CastleDirection) IsKingside() bool {
	return d == CastleDirectionWhiteKingside || d == CastleDirectionBlackKingside
}

// MoveKind is the kind tag of the king move performing this castle.
func (d CastleDirection) MoveKind() MoveKind {
	if d.IsKingside() {
		return MoveKindCastleKingside
	}
	return MoveKindCastleQueenside
}

// KingHops returns the king's start and destination squares.
func (d CastleDirection) KingHops() (position.Pos, position.Pos) {
	h := posCastling[d][PieceKing]
	return h[0], h[1]
}

// RookHops returns the rook's start and destination squares.
func (d CastleDirection) RookHops() (position.Pos, position.Pos) {
	h := posCastling[d][PieceRook]
	return h[0], h[1]
}

// castleDirections returns the kingside and queenside directions of s.
func castleDirections(s Side) [2]CastleDirection {
	return castleDirectionsBySide[s]
}

// CastleRights holds one bit per castle direction. Bits are only ever cleared
// during play.
type CastleRights uint8

const (
	CastleRightsNone CastleRights = 0
	CastleRightsAll  CastleRights = 0b1111
)

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	ds := castleDirections(s)
	return c&(maskCastleRights[ds[0]]|maskCastleRights[ds[1]]) != 0
}

// String renders the rights as the FEN castling field.
func (c CastleRights) String() string {
	if c == CastleRightsNone {
		return "-"
	}
	var s string
	if c.IsAllowed(CastleDirectionWhiteKingside) {
		s += "K"
	}
	if c.IsAllowed(CastleDirectionWhiteQueenside) {
		s += "Q"
	}
	if c.IsAllowed(CastleDirectionBlackKingside) {
		s += "k"
	}
	if c.IsAllowed(CastleDirectionBlackQueenside) {
		s += "q"
	}
	return s
}
