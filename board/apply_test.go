package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/daystram/arbiter/position"
)

func applyAll(t *testing.T, b *Board, moves ...string) {
	t.Helper()
	for i, n := range moves {
		if err := b.ApplyNotation(n); err != nil {
			t.Fatalf("unexpected error at ply %d (%s): %v\n%s", i+1, n, err, b.Dump())
		}
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name:  "double push sets en passant",
			fen:   DefaultStartingPositionFEN,
			moves: []string{"e2e4"},
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:  "fullmove after black",
			fen:   DefaultStartingPositionFEN,
			moves: []string{"e2e4", "e7e5"},
			want:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		},
		{
			name:  "quiet move ticks halfmove clock",
			fen:   DefaultStartingPositionFEN,
			moves: []string{"e2e4", "e7e5", "g1f3"},
			want:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:  "uppercase notation",
			fen:   DefaultStartingPositionFEN,
			moves: []string{"E2E4", "G8F6"},
			want:  "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name:  "en passant capture",
			fen:   DefaultStartingPositionFEN,
			moves: []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6"},
			want:  "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:  "black en passant capture",
			fen:   "4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1",
			moves: []string{"e2e4", "d4e3"},
			want:  "4k3/8/8/8/8/4p3/8/4K3 w - - 0 2",
		},
		{
			name:  "castle kingside",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1g1"},
			want:  "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:  "castle queenside",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1g1", "e8c8"},
			want:  "2kr3r/8/8/8/8/8/8/R4RK1 w - - 2 2",
		},
		{
			name:  "rook move revokes one right",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"h1h2"},
			want:  "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1",
		},
		{
			name:  "rook capture revokes both rooks' rights",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"a1a8"},
			want:  "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:  "king move revokes both rights",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1e2"},
			want:  "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1",
		},
		{
			name:  "returning king does not regain rights",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1e2", "e8e7", "e2e1", "e7e8"},
			want:  "r3k2r/8/8/8/8/8/8/R3K2R w - - 4 3",
		},
		{
			name:  "underpromotion",
			fen:   "4k3/1P6/8/8/8/8/8/4K3 w - - 5 40",
			moves: []string{"b7b8n"},
			want:  "1N2k3/8/8/8/8/8/8/4K3 b - - 0 40",
		},
		{
			name:  "fullmove clock saturates",
			fen:   "4k3/8/8/8/8/8/8/R3K3 b - - 0 65535",
			moves: []string{"e8d8"},
			want:  "3k4/8/8/8/8/8/8/R3K3 w - - 1 65535",
		},
		{
			name:  "capture promotion revokes rights",
			fen:   "4k3/8/8/8/8/8/6p1/4K2R b K - 3 10",
			moves: []string{"g2h1q"},
			want:  "4k3/8/8/8/8/8/8/4K2q w - - 0 11",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustNewBoard(t, tt.fen)
			applyAll(t, b, tt.moves...)
			if got := b.FEN(); got != tt.want {
				t.Errorf("unexpected FEN: got=%s want=%s", got, tt.want)
			}
			if got := len(b.History()); got != len(tt.moves)+1 {
				t.Errorf("unexpected history length: got=%d want=%d", got, len(tt.moves)+1)
			}
		})
	}
}

func TestApplyRejected(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		fen        string
		moves      []string
		move       Move
		wantErr    error
		wantReason string
	}{
		{
			name:       "empty source",
			fen:        DefaultStartingPositionFEN,
			move:       Move{From: position.E3, To: position.E4},
			wantErr:    ErrIllegalMove,
			wantReason: "no piece on source square",
		},
		{
			name:       "opponent piece",
			fen:        DefaultStartingPositionFEN,
			move:       Move{From: position.E7, To: position.E5},
			wantErr:    ErrIllegalMove,
			wantReason: "piece belongs to Black",
		},
		{
			name:       "unreachable target",
			fen:        DefaultStartingPositionFEN,
			move:       Move{From: position.E2, To: position.E5},
			wantErr:    ErrIllegalMove,
			wantReason: "Pawn cannot move there",
		},
		{
			name:       "own piece on target",
			fen:        DefaultStartingPositionFEN,
			move:       Move{From: position.D1, To: position.D2},
			wantErr:    ErrIllegalMove,
			wantReason: "Queen cannot move there",
		},
		{
			name:       "kind mismatch",
			fen:        DefaultStartingPositionFEN,
			move:       Move{From: position.E2, To: position.E4, Kind: MoveKindNormal},
			wantErr:    ErrIllegalMove,
			wantReason: "Pawn cannot move there",
		},
		{
			name:       "promotion letter on plain move",
			fen:        DefaultStartingPositionFEN,
			move:       Move{From: position.E2, To: position.E4, Promote: PieceQueen, Kind: MoveKindPromotion},
			wantErr:    ErrIllegalMove,
			wantReason: "Pawn cannot move there",
		},
		{
			name:       "missing promotion",
			fen:        "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
			move:       Move{From: position.B7, To: position.B8},
			wantErr:    ErrIllegalMove,
			wantReason: "promotion piece required",
		},
		{
			name:       "out of range",
			fen:        DefaultStartingPositionFEN,
			move:       Move{From: position.E2, To: position.Pos(64)},
			wantErr:    ErrIllegalMove,
			wantReason: "square out of range",
		},
		{
			name:       "ignores check",
			fen:        "4k3/4r3/8/8/8/8/8/R3K3 w - - 0 1",
			move:       Move{From: position.A1, To: position.A2},
			wantErr:    ErrIllegalMove,
			wantReason: "leaves king in check",
		},
		{
			name:       "pinned piece",
			fen:        "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			move:       Move{From: position.E2, To: position.C3},
			wantErr:    ErrIllegalMove,
			wantReason: "leaves king in check",
		},
		{
			name:       "king into attack",
			fen:        "4k3/3r4/8/8/8/8/8/4K3 w - - 0 1",
			move:       Move{From: position.E1, To: position.D1},
			wantErr:    ErrIllegalMove,
			wantReason: "leaves king in check",
		},
		{
			name:       "castle through attacked cell",
			fen:        "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1",
			move:       Move{From: position.E1, To: position.G1},
			wantErr:    ErrIllegalMove,
			wantReason: "King cannot move there",
		},
		{
			name:       "expired en passant",
			fen:        DefaultStartingPositionFEN,
			moves:      []string{"e2e4", "a7a6", "e4e5", "d7d5", "g1f3", "a6a5"},
			move:       Move{From: position.E5, To: position.D6},
			wantErr:    ErrIllegalMove,
			wantReason: "Pawn cannot move there",
		},
		{
			name:       "game over",
			fen:        DefaultStartingPositionFEN,
			moves:      []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			move:       Move{From: position.E2, To: position.E4},
			wantErr:    ErrGameOver,
			wantReason: "StateCheckmateWhite",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustNewBoard(t, tt.fen)
			applyAll(t, b, tt.moves...)
			wantFEN, wantHistory := b.FEN(), len(b.History())

			err := b.Apply(tt.move)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			// a move refused after the game ended is illegal as well
			if !errors.Is(err, ErrIllegalMove) {
				t.Errorf("unexpected error: got=%v want=%v", err, ErrIllegalMove)
			}
			var mvErr *MoveError
			if !errors.As(err, &mvErr) {
				t.Fatalf("unexpected error type: %T", err)
			}
			if mvErr.Reason != tt.wantReason {
				t.Errorf("unexpected reason: got=%q want=%q", mvErr.Reason, tt.wantReason)
			}
			if mvErr.Move != tt.move {
				t.Errorf("unexpected move: got=%+v want=%+v", mvErr.Move, tt.move)
			}
			if got := b.FEN(); got != wantFEN {
				t.Errorf("unexpected board change: got=%s want=%s", got, wantFEN)
			}
			if got := len(b.History()); got != wantHistory {
				t.Errorf("unexpected history length: got=%d want=%d", got, wantHistory)
			}
		})
	}
}

func TestApplyNotationInvalid(t *testing.T) {
	t.Parallel()
	b := mustNewBoard(t, DefaultStartingPositionFEN)
	for _, n := range []string{"", "e2", "e2e4x", "z2e4", "e2e4e4"} {
		if err := b.ApplyNotation(n); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("unexpected error for %q: got=%v want=%v", n, err, ErrInvalidNotation)
		}
	}
	if got := b.FEN(); got != DefaultStartingPositionFEN {
		t.Errorf("unexpected board change: got=%s", got)
	}
}

func TestMakeMove(t *testing.T) {
	t.Parallel()
	b := mustNewBoard(t, DefaultStartingPositionFEN)
	want := mustNewBoard(t, DefaultStartingPositionFEN)
	for _, mv := range b.GenerateMoves() {
		bb := b.Clone()
		bb.MakeMove(mv)

		ref := want.Clone()
		if err := ref.Apply(mv.Shape()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bb.FEN() != ref.FEN() || bb.Hash() != ref.Hash() {
			t.Errorf("unexpected position after %s: got=%s want=%s", mv, bb.FEN(), ref.FEN())
		}
	}
	if got := b.FEN(); got != DefaultStartingPositionFEN {
		t.Errorf("unexpected mutation through clone: got=%s", got)
	}
}

func TestMakeMoveFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{
			name: "castle",
			fen:  "4k3/8/8/8/8/8/8/4K2R w K - 0 1",
			move: "e1g1",
			want: "4k3/8/8/8/8/8/8/5RK1 b - - 1 1",
		},
		{
			name: "en passant",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			move: "e5d6",
			want: "4k3/8/3P4/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name: "double push",
			fen:  DefaultStartingPositionFEN,
			move: "d2d4",
			want: "rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1",
		},
		{
			name: "promotion",
			fen:  "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
			move: "b7b8q",
			want: "1Q2k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustNewBoard(t, tt.fen)
			mv, err := ParseMove(tt.move)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			b.MakeMove(mv)
			if got := b.FEN(); got != tt.want {
				t.Errorf("unexpected FEN: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b := mustNewBoard(t, DefaultStartingPositionFEN)
	applyAll(t, b, "e2e4")
	bb := b.Clone()
	applyAll(t, bb, "e7e5", "g1f3")
	if len(b.History()) != 2 || len(bb.History()) != 4 {
		t.Errorf("unexpected history lengths: got=%d,%d want=2,4", len(b.History()), len(bb.History()))
	}
	if b.Turn() != SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", b.Turn(), SideBlack)
	}
	if s, p := b.PieceAt(position.G1); s != SideWhite || p != PieceKnight {
		t.Errorf("unexpected piece at g1: got=%s %s", s, p)
	}
}

func TestIsCapture(t *testing.T) {
	t.Parallel()
	b := mustNewBoard(t, "rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	for _, tt := range []struct {
		move Move
		want bool
	}{
		{move: Move{From: position.E5, To: position.D6, Kind: MoveKindEnPassant}, want: true},
		{move: Move{From: position.E5, To: position.E6, Kind: MoveKindNormal}, want: false},
		{move: Move{From: position.F1, To: position.A6, Kind: MoveKindCapture}, want: true},
	} {
		if got := b.IsCapture(tt.move); got != tt.want {
			t.Errorf("unexpected capture for %s: got=%v want=%v", tt.move, got, tt.want)
		}
	}
	if strings.Count(b.DumpEnPassant(), "#") != 1 {
		t.Errorf("unexpected en passant dump:\n%s", b.DumpEnPassant())
	}
}
