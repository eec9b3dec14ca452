package board

import (
	"fmt"

	"github.com/daystram/arbiter/position"
)

type MoveKind uint8

const (
	// MoveKindUnknown is left for the executor to resolve against the board,
	// e.g. a move decoded from notation.
	MoveKindUnknown MoveKind = iota
	MoveKindNormal
	MoveKindDoublePawnPush
	MoveKindCapture
	MoveKindEnPassant
	MoveKindCastleKingside
	MoveKindCastleQueenside
	MoveKindPromotion
)

func (k MoveKind) String() string {
	switch k {
	case MoveKindUnknown:
		return "Unknown"
	case MoveKindNormal:
		return "Normal"
	case MoveKindDoublePawnPush:
		return "DoublePawnPush"
	case MoveKindCapture:
		return "Capture"
	case MoveKindEnPassant:
		return "EnPassant"
	case MoveKindCastleKingside:
		return "CastleKingside"
	case MoveKindCastleQueenside:
		return "CastleQueenside"
	case MoveKindPromotion:
		return "Promotion"
	default:
		return ""
	}
}

func (k MoveKind) IsCastle() bool {
	return k == MoveKindCastleKingside || k == MoveKindCastleQueenside
}

// Move is a plain value. Castling is the king's two-cell move.
type Move struct {
	From, To position.Pos
	Promote  Piece
	Kind     MoveKind
}

func (m Move) String() string {
	return m.UCI()
}

// Shape strips the kind tag, leaving what notation can express.
func (m Move) Shape() Move {
	kind := MoveKindUnknown
	if m.Promote != PieceUnknown {
		kind = MoveKindPromotion
	}
	return Move{From: m.From, To: m.To, Promote: m.Promote, Kind: kind}
}

// MoveError is returned when a move is rejected by Apply.
type MoveError struct {
	Move   Move
	Reason string
	Err    error
}

func (e *MoveError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Move.UCI())
	}
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Move.UCI(), e.Reason)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports a move refused after the game ended as illegal too.
func (e *MoveError) Is(target error) bool {
	return target == ErrIllegalMove && e.Err == ErrGameOver
}
