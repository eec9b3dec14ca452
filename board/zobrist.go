package board

import "github.com/daystram/arbiter/position"

const zobristSeed = 0x_9E37_79B9_7F4A_7C15

var (
	zobristConstantPiece        [2 + 1][6 + 1][TotalCells]uint64
	zobristConstantEnPassant    [TotalCells]uint64
	zobristConstantCastleRights [CastleRightsAll + 1]uint64
	zobristConstantSideWhite    uint64
)

// xorshift is a xorshift64* generator. The zobrist tables must be identical
// between runs so that recorded signatures stay comparable.
type xorshift struct {
	s uint64
}

func (r *xorshift) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func initZobrist() {
	r := &xorshift{s: zobristSeed}
	for _, s := range Sides {
		for _, p := range Pieces {
			for pos := position.Pos(0); pos < TotalCells; pos++ {
				zobristConstantPiece[s][p][pos] = r.Uint64()
			}
		}
	}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		zobristConstantEnPassant[pos] = r.Uint64()
	}
	for c := range zobristConstantCastleRights {
		zobristConstantCastleRights[c] = r.Uint64()
	}
	zobristConstantSideWhite = r.Uint64()
}

// Hash returns the position signature: placement, side to move, castle
// rights and en passant target. Clocks and history are not part of it.
func (b *Board) Hash() uint64 {
	var hash uint64
	for _, s := range Sides {
		for _, p := range Pieces {
			for bm := b.GetBitmap(s, p); bm != 0; bm &= bm - 1 {
				hash ^= zobristConstantPiece[s][p][bm.LS1B()]
			}
		}
	}
	if b.turn == SideWhite {
		hash ^= zobristConstantSideWhite
	}
	hash ^= zobristConstantCastleRights[b.castleRights]
	if b.enPassant != 0 {
		hash ^= zobristConstantEnPassant[b.enPassant.LS1B()]
	}
	return hash
}
