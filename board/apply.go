package board

import (
	"fmt"
	"math"

	"github.com/daystram/arbiter/position"
)

// Apply validates mv against the legal moves of the side to move and plays
// it. mv may be a bare shape from ParseMove; a kind other than
// MoveKindUnknown must match the generated move. On error the board is left
// untouched.
func (b *Board) Apply(mv Move) error {
	if st := b.State(); !st.IsRunning() {
		return &MoveError{Move: mv, Reason: st.String(), Err: ErrGameOver}
	}
	resolved, err := b.resolve(mv)
	if err != nil {
		return err
	}
	b.commit(resolved)
	return nil
}

// ApplyNotation parses long algebraic notation and applies the move.
func (b *Board) ApplyNotation(n string) error {
	mv, err := ParseMove(n)
	if err != nil {
		return err
	}
	return b.Apply(mv)
}

// MakeMove plays mv without checking legality or the game over state. It is
// meant for moves taken from GenerateMoves. A move tagged MoveKindUnknown,
// such as one from ParseMove, is first matched against the pseudo-legal moves
// of its piece. A move matching nothing corrupts the board; use Apply for
// untrusted input.
func (b *Board) MakeMove(mv Move) {
	if mv.Kind == MoveKindUnknown {
		if s, p := b.PieceAt(mv.From); s == b.turn {
			for _, cand := range b.appendPseudoLegalMovesFrom(nil, s, p, mv.From) {
				if cand.To == mv.To && cand.Promote == mv.Promote {
					mv = cand
					break
				}
			}
		}
	}
	b.commit(mv)
}

// IsCapture reports whether the pseudo-legal move mv takes a piece.
func (b *Board) IsCapture(mv Move) bool {
	return mv.Kind == MoveKindEnPassant || b.sides[b.turn.Opposite()].Has(mv.To)
}

func (b *Board) resolve(mv Move) (Move, error) {
	if !mv.From.Valid() || !mv.To.Valid() {
		return Move{}, &MoveError{Move: mv, Reason: "square out of range", Err: ErrIllegalMove}
	}
	s, p := b.PieceAt(mv.From)
	switch {
	case p == PieceUnknown:
		return Move{}, &MoveError{Move: mv, Reason: "no piece on source square", Err: ErrIllegalMove}
	case s != b.turn:
		return Move{}, &MoveError{Move: mv, Reason: fmt.Sprintf("piece belongs to %s", s), Err: ErrIllegalMove}
	}

	for _, cand := range b.appendPseudoLegalMovesFrom(nil, s, p, mv.From) {
		if cand.To != mv.To || cand.Promote != mv.Promote {
			continue
		}
		if mv.Kind != MoveKindUnknown && mv.Kind != cand.Kind {
			continue
		}
		if !b.isLegal(s, cand) {
			return Move{}, &MoveError{Move: mv, Reason: "leaves king in check", Err: ErrIllegalMove}
		}
		return cand, nil
	}

	if p == PiecePawn && mv.Promote == PieceUnknown && mv.To.Y() == s.PromotionRank() {
		return Move{}, &MoveError{Move: mv, Reason: "promotion piece required", Err: ErrIllegalMove}
	}
	return Move{}, &MoveError{Move: mv, Reason: fmt.Sprintf("%s cannot move there", p), Err: ErrIllegalMove}
}

// commit plays a resolved legal move on a copy, then swaps it in.
func (b *Board) commit(mv Move) {
	_, p := b.PieceAt(mv.From)
	irreversible := p == PiecePawn || b.IsCapture(mv)

	next := *b
	next.play(b.turn, mv)
	// both clocks saturate instead of wrapping
	if irreversible {
		next.halfMoveClock = 0
	} else if next.halfMoveClock < math.MaxUint16 {
		next.halfMoveClock++
	}
	if b.turn == SideBlack && next.fullMoveClock < math.MaxUint16 {
		next.fullMoveClock++
	}
	next.turn = b.turn.Opposite()
	next.history = append(next.history, next.Hash())

	*b = next
}

// play moves pieces for side s and updates castle rights and the en passant
// target. Clocks, turn and history are left to commit, so legality filtering
// can run it on scratch copies.
func (b *Board) play(s Side, mv Move) {
	b.enPassant = 0
	if mv.Kind.IsCastle() {
		d := castleDirection(s, mv.Kind)
		kingFrom, kingTo := d.KingHops()
		rookFrom, rookTo := d.RookHops()
		b.unset(s, PieceKing, kingFrom)
		b.unset(s, PieceRook, rookFrom)
		b.set(s, PieceKing, kingTo)
		b.set(s, PieceRook, rookTo)
	} else {
		_, p := b.PieceAt(mv.From)
		b.unset(s, p, mv.From)
		if p == PiecePawn && isDoublePush(mv.From, mv.To) {
			b.enPassant = maskCell[mv.From+s.Forward()]
		}

		if mv.Kind == MoveKindEnPassant {
			// the captured pawn stands behind the target cell
			b.unset(s.Opposite(), PiecePawn, mv.To-s.Forward())
		} else if capturedSide, captured := b.PieceAt(mv.To); captured != PieceUnknown {
			b.unset(capturedSide, captured, mv.To)
		}

		if mv.Promote != PieceUnknown {
			p = mv.Promote
		}
		b.set(s, p, mv.To)
	}

	b.castleRights &^= maskCastleRevoke[mv.From] | maskCastleRevoke[mv.To]
}

func castleDirection(s Side, kind MoveKind) CastleDirection {
	ds := castleDirections(s)
	if kind == MoveKindCastleKingside {
		return ds[0]
	}
	return ds[1]
}

// isDoublePush reports whether a pawn move from from to to crosses two ranks.
func isDoublePush(from, to position.Pos) bool {
	return abs(to-from) == 2*Width
}
