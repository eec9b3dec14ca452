package board

import "github.com/daystram/arbiter/position"

// LegalMoves returns the moves of side s that do not leave its own king in
// check. Each pseudo-legal move is played on a scratch copy, the live board
// is never touched.
func (b *Board) LegalMoves(s Side) []Move {
	return b.filterLegal(s, b.GeneratePseudoLegalMoves(s))
}

// GenerateMoves returns the legal moves of the side to move.
func (b *Board) GenerateMoves() []Move {
	return b.LegalMoves(b.turn)
}

// MovesFrom returns the legal moves of the piece standing on pos.
func (b *Board) MovesFrom(pos position.Pos) []Move {
	s, p := b.PieceAt(pos)
	if p == PieceUnknown {
		return nil
	}
	return b.filterLegal(s, b.appendPseudoLegalMovesFrom(nil, s, p, pos))
}

func (b *Board) filterLegal(s Side, pseudo []Move) []Move {
	mvs := pseudo[:0]
	for _, mv := range pseudo {
		if b.isLegal(s, mv) {
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

// isLegal expects mv to be pseudo-legal for s.
func (b *Board) isLegal(s Side, mv Move) bool {
	scratch := *b
	scratch.play(s, mv)
	return !scratch.InCheck(s)
}

// HasLegalMoves reports whether side s can move at all. It stops at the first
// legal move found.
func (b *Board) HasLegalMoves(s Side) bool {
	for _, mv := range b.GeneratePseudoLegalMoves(s) {
		if b.isLegal(s, mv) {
			return true
		}
	}
	return false
}

func (b *Board) IsCheckmate(s Side) bool {
	return b.InCheck(s) && !b.HasLegalMoves(s)
}

func (b *Board) IsStalemate(s Side) bool {
	return !b.InCheck(s) && !b.HasLegalMoves(s)
}
