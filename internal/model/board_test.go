package model

import "testing"

func TestNewBoardInitialSetup(t *testing.T) {
	b := NewBoard()

	wantBackRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range wantBackRank {
		white := b.At(Position{0, col})
		if white == nil || white.Type != kind || white.Color != White {
			t.Fatalf("row 0 col %d = %+v, want white %s", col, white, kind)
		}
		black := b.At(Position{7, col})
		if black == nil || black.Type != kind || black.Color != Black {
			t.Fatalf("row 7 col %d = %+v, want black %s", col, black, kind)
		}
	}
	for col := 0; col < 8; col++ {
		if p := b.At(Position{1, col}); p == nil || p.Type != Pawn || p.Color != White {
			t.Fatalf("row 1 col %d = %+v, want white pawn", col, p)
		}
		if p := b.At(Position{6, col}); p == nil || p.Type != Pawn || p.Color != Black {
			t.Fatalf("row 6 col %d = %+v, want black pawn", col, p)
		}
	}
	for row := 2; row < 6; row++ {
		for col := 0; col < 8; col++ {
			if p := b.At(Position{row, col}); p != nil {
				t.Fatalf("row %d col %d = %+v, want empty", row, col, p)
			}
		}
	}
}

func TestPlaceAndRemove(t *testing.T) {
	b := &Board{}
	pos := Position{3, 3}

	b.Place(&Piece{Type: Queen, Color: White}, pos)
	if p := b.At(pos); p == nil || p.Type != Queen {
		t.Fatalf("At(%v) = %+v after Place, want queen", pos, p)
	}

	// Place overwrites whatever occupies the square.
	b.Place(&Piece{Type: Rook, Color: Black}, pos)
	if p := b.At(pos); p == nil || p.Type != Rook || p.Color != Black {
		t.Fatalf("At(%v) = %+v after overwrite, want black rook", pos, p)
	}

	b.Remove(pos)
	if p := b.At(pos); p != nil {
		t.Fatalf("At(%v) = %+v after Remove, want nil", pos, p)
	}
}

func TestPathClear(t *testing.T) {
	tests := []struct {
		name     string
		occupied []Position
		from     Position
		to       Position
		want     bool
	}{
		{"empty file", nil, Position{0, 0}, Position{7, 0}, true},
		{"empty rank", nil, Position{4, 0}, Position{4, 7}, true},
		{"empty diagonal", nil, Position{0, 0}, Position{7, 7}, true},
		{"blocked file", []Position{{3, 0}}, Position{0, 0}, Position{7, 0}, false},
		{"blocked rank", []Position{{4, 5}}, Position{4, 0}, Position{4, 7}, false},
		{"blocked diagonal", []Position{{2, 2}}, Position{0, 0}, Position{7, 7}, false},
		{"occupied endpoints ignored", []Position{{0, 0}, {7, 0}}, Position{0, 0}, Position{7, 0}, true},
		{"adjacent squares have no path", []Position{{5, 5}}, Position{4, 4}, Position{5, 5}, true},
		{"reverse direction", []Position{{3, 3}}, Position{6, 6}, Position{1, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Board{}
			for _, pos := range tt.occupied {
				b.Place(&Piece{Type: Pawn, Color: White}, pos)
			}
			if got := b.PathClear(tt.from, tt.to); got != tt.want {
				t.Fatalf("PathClear(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSnapshotCopies(t *testing.T) {
	b := NewBoard()
	grid := b.Snapshot()

	if grid[0][4] == nil || grid[0][4].Type != King {
		t.Fatalf("snapshot row 0 col 4 = %+v, want white king", grid[0][4])
	}

	// Mutating the snapshot must not reach the board.
	grid[0][4].Type = Queen
	if b.At(Position{0, 4}).Type != King {
		t.Fatal("snapshot mutation leaked into the board")
	}
}
