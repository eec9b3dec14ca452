package board

import (
	"fmt"
	"unicode/utf8"

	"github.com/daystram/arbiter/position"
)

// ErrInvalidNotation is shared with the position package so that square and
// move notation failures match the same errors.Is target.
var ErrInvalidNotation = position.ErrInvalidNotation

// ParseMove decodes long algebraic move text such as "e2e4" or "e7e8q". Input
// is case-insensitive. The result carries MoveKindUnknown, or
// MoveKindPromotion when a promotion letter is present.
func ParseMove(n string) (Move, error) {
	if len(n) != 4 && len(n) != 5 {
		return Move{}, fmt.Errorf("%w: %q: expected 4 or 5 characters", ErrInvalidNotation, n)
	}
	lower := make([]byte, len(n))
	for i := 0; i < len(n); i++ {
		c := n[i]
		if c >= utf8.RuneSelf {
			return Move{}, fmt.Errorf("%w: %q: non-ASCII character", ErrInvalidNotation, n)
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		lower[i] = c
	}
	n = string(lower)
	from, err := position.NewPosFromNotation(n[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: bad source square", ErrInvalidNotation, n)
	}
	to, err := position.NewPosFromNotation(n[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: bad destination square", ErrInvalidNotation, n)
	}
	mv := Move{From: from, To: to}
	if len(n) == 5 {
		_, p := NewPieceFromSymbol(rune(n[4]))
		if !p.IsPromotable() {
			return Move{}, fmt.Errorf("%w: %q: promotion piece must be one of 'qrbn'", ErrInvalidNotation, n)
		}
		mv.Promote = p
		mv.Kind = MoveKindPromotion
	}
	return mv, nil
}

// UCI renders the move in canonical lowercase long algebraic notation.
func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.Promote.SymbolFEN(SideBlack)
}
