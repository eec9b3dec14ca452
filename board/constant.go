package board

import (
	"github.com/daystram/arbiter/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	// DrawHalfMoveClock is the halfmove clock value at which the 75-move rule
	// ends the game.
	DrawHalfMoveClock = 150

	// DrawRepetitionCount is the number of occurrences of a position that ends
	// the game by repetition.
	DrawRepetitionCount = 3
)

var (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	maskCol = [Width]bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	maskCell       [TotalCells]bitmap
	maskDia        [TotalCells]bitmap
	maskADia       [TotalCells]bitmap
	maskKnight     [TotalCells]bitmap
	maskKing       [TotalCells]bitmap
	maskPawnAttack [2 + 1][TotalCells]bitmap

	// maskPawnStart is the rank a pawn may double push from.
	maskPawnStart = [2 + 1]bitmap{
		SideWhite: maskRow[position.Rank2],
		SideBlack: maskRow[position.Rank7],
	}

	// maskCastlePath must be empty, maskCastleSafe must not be attacked.
	maskCastlePath [4 + 1]bitmap
	maskCastleSafe [4 + 1]bitmap
	posCastling    = [4 + 1][6 + 1][2]position.Pos{
		CastleDirectionWhiteKingside: {
			PieceKing: {position.E1, position.G1},
			PieceRook: {position.H1, position.F1},
		},
		CastleDirectionWhiteQueenside: {
			PieceKing: {position.E1, position.C1},
			PieceRook: {position.A1, position.D1},
		},
		CastleDirectionBlackKingside: {
			PieceKing: {position.E8, position.G8},
			PieceRook: {position.H8, position.F8},
		},
		CastleDirectionBlackQueenside: {
			PieceKing: {position.E8, position.C8},
			PieceRook: {position.A8, position.D8},
		},
	}

	maskCastleRights = [4 + 1]CastleRights{
		CastleDirectionWhiteKingside:  0b1000,
		CastleDirectionWhiteQueenside: 0b0100,
		CastleDirectionBlackKingside:  0b0010,
		CastleDirectionBlackQueenside: 0b0001,
	}

	// maskCastleRevoke lists the rights lost when a move touches a square,
	// either leaving it or capturing on it.
	maskCastleRevoke [TotalCells]CastleRights

	// castleDirectionsBySide lists kingside then queenside per side.
	castleDirectionsBySide [2 + 1][2]CastleDirection
)

func init() {
	initMask()
	initCastling()
	initZobrist()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		mask := bitmap(0)
		x, y := pos%Width, pos/Width
		x, y = x-min(x, y), y-min(x, y)
		for x < Width && y < Height {
			mask |= maskCell[y*Width+x]
			x++
			y++
		}
		maskDia[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		mask := bitmap(0)
		x, y := pos%Width, pos/Width
		x, y = x-min(x, Height-y-1), y+min(x, Height-y-1)
		for x < Width && y >= 0 {
			mask |= maskCell[y*Width+x]
			x++
			y--
		}
		maskADia[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := bitmap(0)
		mask |= ShiftN(ShiftN(ShiftE(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[7])))
		mask |= ShiftN(ShiftN(ShiftW(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[0])))
		mask |= ShiftS(ShiftS(ShiftE(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[7])))
		mask |= ShiftS(ShiftS(ShiftW(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[0])))
		mask |= ShiftE(ShiftE(ShiftN(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[7])))
		mask |= ShiftE(ShiftE(ShiftS(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[0])))
		mask |= ShiftW(ShiftW(ShiftN(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[7])))
		mask |= ShiftW(ShiftW(ShiftS(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[0])))
		maskKnight[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := bitmap(0)
		mask |= ShiftN(cell &^ maskRow[7])
		mask |= ShiftNE(cell &^ maskRow[7] &^ maskCol[7])
		mask |= ShiftE(cell &^ maskCol[7])
		mask |= ShiftSE(cell &^ maskRow[0] &^ maskCol[7])
		mask |= ShiftS(cell &^ maskRow[0])
		mask |= ShiftSW(cell &^ maskRow[0] &^ maskCol[0])
		mask |= ShiftW(cell &^ maskCol[0])
		mask |= ShiftNW(cell &^ maskRow[7] &^ maskCol[0])
		maskKing[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		maskPawnAttack[SideWhite][pos] = ShiftNW(cell&^maskRow[7]&^maskCol[0]) | ShiftNE(cell&^maskRow[7]&^maskCol[7])
		maskPawnAttack[SideBlack][pos] = ShiftSW(cell&^maskRow[0]&^maskCol[0]) | ShiftSE(cell&^maskRow[0]&^maskCol[7])
	}
}

func initCastling() {
	for _, d := range []CastleDirection{
		CastleDirectionWhiteKingside,
		CastleDirectionWhiteQueenside,
		CastleDirectionBlackKingside,
		CastleDirectionBlackQueenside,
	} {
		kingFrom, kingTo := d.KingHops()
		rookFrom, _ := d.RookHops()
		maskCastlePath[d] = between(kingFrom, rookFrom)
		maskCastleSafe[d] = between(kingFrom, kingTo) | maskCell[kingFrom] | maskCell[kingTo]

		maskCastleRevoke[kingFrom] |= maskCastleRights[d]
		maskCastleRevoke[rookFrom] |= maskCastleRights[d]

		if d.IsKingside() {
			castleDirectionsBySide[d.Side()][0] = d
		} else {
			castleDirectionsBySide[d.Side()][1] = d
		}
	}
}

// between returns the cells strictly between two cells of the same rank.
func between(a, b position.Pos) bitmap {
	lo, hi := min(a, b), max(a, b)
	mask := bitmap(0)
	for pos := lo + 1; pos < hi; pos++ {
		mask |= maskCell[pos]
	}
	return mask
}
