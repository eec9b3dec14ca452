package board

import (
	"fmt"

	"github.com/daystram/arbiter/position"
)

// IsAttacked reports whether any piece of side by could move to pos by its
// movement rule alone, ignoring pins. A pawn attacks diagonally only.
func (b *Board) IsAttacked(pos position.Pos, by Side) bool {
	return b.attackers(pos, by, b.occupied) != 0
}

// attackers collects the pieces of side by attacking pos, with sliders
// blocked by occupied.
func (b *Board) attackers(pos position.Pos, by Side, occupied bitmap) bitmap {
	// a pawn of by on X attacks pos iff a pawn of the other side on pos attacks X
	bm := maskPawnAttack[by.Opposite()][pos] & b.GetBitmap(by, PiecePawn)
	bm |= maskKnight[pos] & b.GetBitmap(by, PieceKnight)
	bm |= maskKing[pos] & b.GetBitmap(by, PieceKing)

	queens := b.GetBitmap(by, PieceQueen)
	if diagonal := b.GetBitmap(by, PieceBishop) | queens; diagonal != 0 {
		bm |= HitDiagonals(pos, occupied) & diagonal
	}
	if lateral := b.GetBitmap(by, PieceRook) | queens; lateral != 0 {
		bm |= HitLaterals(pos, occupied) & lateral
	}
	return bm
}

// InCheck reports whether the king of s is attacked.
func (b *Board) InCheck(s Side) bool {
	return b.IsAttacked(b.kingPos(s), s.Opposite())
}

// Checkers returns the cells of the pieces giving check to the king of s.
func (b *Board) Checkers(s Side) []position.Pos {
	return b.attackers(b.kingPos(s), s.Opposite(), b.occupied).Cells()
}

func (b *Board) kingPos(s Side) position.Pos {
	king := b.GetBitmap(s, PieceKing)
	if king == 0 {
		panic(fmt.Errorf("%w: %s", ErrNoKing, s))
	}
	return king.LS1B()
}

// genAttackArea returns every cell attacked by side s.
func (b *Board) genAttackArea(s Side) bitmap {
	var attackBM bitmap
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.IsAttacked(pos, s) {
			attackBM |= maskCell[pos]
		}
	}
	return attackBM
}
