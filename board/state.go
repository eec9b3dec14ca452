package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateCheckWhite is when White King is in check.
	StateCheckWhite

	// StateCheckBlack is when Black King is in check.
	StateCheckBlack

	// StateCheckmateWhite is when White King is in checkmate.
	StateCheckmateWhite

	// StateCheckmateBlack is when Black King is in checkmate.
	StateCheckmateBlack

	// StateStalemate is when a side cannot move a piece and King is not in check.
	StateStalemate

	// StateRepetition is when the same position has occurred three times.
	StateRepetition

	// StateSeventyFiveMove is when 75 moves by each side have passed without
	// any captures or pawn moves.
	StateSeventyFiveMove
)

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheck() bool {
	switch s {
	case StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheckmate() bool {
	switch s {
	case StateCheckmateWhite, StateCheckmateBlack:
		return true
	default:
		return false
	}
}

func (s State) IsDraw() bool {
	switch s {
	case StateStalemate, StateRepetition, StateSeventyFiveMove:
		return true
	default:
		return false
	}
}

// Winner returns the side delivering checkmate, SideUnknown otherwise.
func (s State) Winner() Side {
	switch s {
	case StateCheckmateWhite:
		return SideBlack
	case StateCheckmateBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheckWhite:
		return "StateCheckWhite"
	case StateCheckBlack:
		return "StateCheckBlack"
	case StateCheckmateWhite:
		return "StateCheckmateWhite"
	case StateCheckmateBlack:
		return "StateCheckmateBlack"
	case StateStalemate:
		return "StateStalemate"
	case StateRepetition:
		return "StateRepetition"
	case StateSeventyFiveMove:
		return "StateSeventyFiveMove"
	default:
		return ""
	}
}

// State derives the game outcome for the side to move. Checkmate and
// stalemate take precedence over repetition and the 75-move rule.
func (b *Board) State() State {
	inCheck := b.InCheck(b.turn)
	if !b.HasLegalMoves(b.turn) {
		if !inCheck {
			return StateStalemate
		}
		if b.turn == SideWhite {
			return StateCheckmateWhite
		}
		return StateCheckmateBlack
	}
	if b.Repetitions() >= DrawRepetitionCount {
		return StateRepetition
	}
	if b.halfMoveClock >= DrawHalfMoveClock {
		return StateSeventyFiveMove
	}
	if inCheck {
		if b.turn == SideWhite {
			return StateCheckWhite
		}
		return StateCheckBlack
	}
	return StateRunning
}
