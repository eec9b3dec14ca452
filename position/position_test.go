package position

import (
	"errors"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{name: "e4", notation: "e4", want: E4},
		{name: "top corner", notation: "h8", want: Pos(63)},
		{name: "bottom corner", notation: "a1", want: Pos(0)},
		{name: "c6", notation: "c6", want: C6},
		{name: "empty", notation: "", wantErr: ErrInvalidNotation},
		{name: "file only", notation: "a", wantErr: ErrInvalidNotation},
		{name: "rank only", notation: "4", wantErr: ErrInvalidNotation},
		{name: "file past h", notation: "m4", wantErr: ErrInvalidNotation},
		{name: "rank past 8", notation: "e9", wantErr: ErrInvalidNotation},
		{name: "rank zero", notation: "e0", wantErr: ErrInvalidNotation},
		{name: "uppercase", notation: "E4", wantErr: ErrInvalidNotation},
		{name: "trailing digit", notation: "e44", wantErr: ErrInvalidNotation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestNotationRoundTrip(t *testing.T) {
	t.Parallel()
	for p := Pos(0); p < MaxComponentScalar*MaxComponentScalar; p++ {
		got, err := NewPosFromNotation(p.Notation())
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", p, err)
		}
		if got != p {
			t.Errorf("unexpected round trip: got=%d want=%d", got, p)
		}
	}
}

func TestNewPos(t *testing.T) {
	t.Parallel()
	if got, err := NewPos(FileE, Rank2); err != nil || got != E2 {
		t.Errorf("unexpected result: got=%v err=%v want=%v", got, err, E2)
	}
	if got, err := NewPos(FileH, Rank8); err != nil || got != H8 {
		t.Errorf("unexpected result: got=%v err=%v want=%v", got, err, H8)
	}
	for _, xy := range [][2]Pos{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, err := NewPos(xy[0], xy[1]); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("unexpected error for %v: got=%v want=%v", xy, err, ErrInvalidNotation)
		}
	}
	if H1.X() != FileH || H1.Y() != Rank1 || A8.X() != FileA || A8.Y() != Rank8 {
		t.Error("unexpected square components")
	}
	if Pos(64).Notation() != "" || Pos(-1).Valid() {
		t.Error("out of range position must not render")
	}
}
