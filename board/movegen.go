package board

import "github.com/daystram/arbiter/position"

// GeneratePseudoLegalMoves returns every move of side s that obeys piece
// movement rules. Except for castling, the mover's king may be left in check.
// Order is unspecified.
func (b *Board) GeneratePseudoLegalMoves(s Side) []Move {
	mvs := make([]Move, 0, 64)
	for _, p := range Pieces {
		for fromBM := b.GetBitmap(s, p); fromBM != 0; fromBM &= fromBM - 1 {
			mvs = b.appendPseudoLegalMovesFrom(mvs, s, p, fromBM.LS1B())
		}
	}
	return mvs
}

func (b *Board) appendPseudoLegalMovesFrom(mvs []Move, s Side, p Piece, from position.Pos) []Move {
	own, enemy := b.sides[s], b.sides[s.Opposite()]
	switch p {
	case PiecePawn:
		return b.appendPawnMoves(mvs, s, from)
	case PieceKing:
		mvs = appendTargets(mvs, from, maskKing[from]&^own, enemy)
		return b.appendCastleMoves(mvs, s, from)
	default:
		return appendTargets(mvs, from, b.genValidDestination(from, p)&^own, enemy)
	}
}

// genValidDestination returns the cells a knight or slider on from reaches,
// including own-occupied blockers.
func (b *Board) genValidDestination(from position.Pos, p Piece) bitmap {
	switch p {
	case PieceBishop:
		return HitDiagonals(from, b.occupied)
	case PieceKnight:
		return maskKnight[from]
	case PieceRook:
		return HitLaterals(from, b.occupied)
	case PieceQueen:
		return HitDiagonals(from, b.occupied) | HitLaterals(from, b.occupied)
	case PieceKing:
		return maskKing[from]
	default:
		return 0
	}
}

func appendTargets(mvs []Move, from position.Pos, toBM, enemy bitmap) []Move {
	for ; toBM != 0; toBM &= toBM - 1 {
		to := toBM.LS1B()
		kind := MoveKindNormal
		if enemy.Has(to) {
			kind = MoveKindCapture
		}
		mvs = append(mvs, Move{From: from, To: to, Kind: kind})
	}
	return mvs
}

func (b *Board) appendPawnMoves(mvs []Move, s Side, from position.Pos) []Move {
	forward := s.Forward()
	promotes := func(to position.Pos) bool {
		return to.Y() == s.PromotionRank()
	}
	appendPawnMove := func(to position.Pos, kind MoveKind) {
		if promotes(to) {
			for _, prom := range PawnPromoteCandidates {
				mvs = append(mvs, Move{From: from, To: to, Promote: prom, Kind: MoveKindPromotion})
			}
			return
		}
		mvs = append(mvs, Move{From: from, To: to, Kind: kind})
	}

	// a pawn never stands on its promotion rank, so one step forward is on the board
	if one := from + forward; !b.occupied.Has(one) {
		appendPawnMove(one, MoveKindNormal)
		if two := one + forward; maskPawnStart[s].Has(from) && !b.occupied.Has(two) {
			mvs = append(mvs, Move{From: from, To: two, Kind: MoveKindDoublePawnPush})
		}
	}

	for toBM := maskPawnAttack[s][from] & b.sides[s.Opposite()]; toBM != 0; toBM &= toBM - 1 {
		appendPawnMove(toBM.LS1B(), MoveKindCapture)
	}

	// the target belongs to the side to move only
	if s == b.turn && maskPawnAttack[s][from]&b.enPassant != 0 {
		mvs = append(mvs, Move{From: from, To: b.enPassant.LS1B(), Kind: MoveKindEnPassant})
	}
	return mvs
}

func (b *Board) appendCastleMoves(mvs []Move, s Side, from position.Pos) []Move {
	if !b.castleRights.IsSideAllowed(s) {
		return mvs
	}
	for _, d := range castleDirections(s) {
		kingFrom, kingTo := d.KingHops()
		rookFrom, _ := d.RookHops()
		if from != kingFrom ||
			!b.castleRights.IsAllowed(d) ||
			!b.GetBitmap(s, PieceRook).Has(rookFrom) ||
			maskCastlePath[d]&b.occupied != 0 ||
			b.isAnyAttacked(maskCastleSafe[d], s.Opposite()) {
			continue
		}
		mvs = append(mvs, Move{From: kingFrom, To: kingTo, Kind: d.MoveKind()})
	}
	return mvs
}

func (b *Board) isAnyAttacked(bm bitmap, by Side) bool {
	for ; bm != 0; bm &= bm - 1 {
		if b.IsAttacked(bm.LS1B(), by) {
			return true
		}
	}
	return false
}
