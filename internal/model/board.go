package model

// Board is the 8x8 grid. Each square holds at most one piece; nil means
// empty. The board does no bounds checking of its own: callers validate
// coordinates first, and an out-of-range access is a programming error.
type Board struct {
	squares [8][8]*Piece
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard sets up the standard initial position with white on rows 0-1 and
// black on rows 6-7.
func NewBoard() *Board {
	b := &Board{}
	for col, kind := range backRank {
		b.squares[0][col] = &Piece{Type: kind, Color: White}
		b.squares[7][col] = &Piece{Type: kind, Color: Black}
	}
	for col := 0; col < 8; col++ {
		b.squares[1][col] = &Piece{Type: Pawn, Color: White}
		b.squares[6][col] = &Piece{Type: Pawn, Color: Black}
	}
	return b
}

// At returns the occupant of the square, or nil if it is empty.
func (b *Board) At(pos Position) *Piece {
	return b.squares[pos.Row][pos.Col]
}

// Place puts a piece on the square, overwriting any occupant.
func (b *Board) Place(p *Piece, pos Position) {
	b.squares[pos.Row][pos.Col] = p
}

// Remove clears the square.
func (b *Board) Remove(pos Position) {
	b.squares[pos.Row][pos.Col] = nil
}

// PathClear walks the straight or diagonal line between the two squares,
// exclusive of both endpoints, and reports whether every intervening square
// is empty. Callers only invoke it once the shape check has confirmed a
// straight or diagonal displacement; knights skip it entirely.
func (b *Board) PathClear(from, to Position) bool {
	rowStep := sign(to.Row - from.Row)
	colStep := sign(to.Col - from.Col)

	row, col := from.Row+rowStep, from.Col+colStep
	for row != to.Row || col != to.Col {
		if b.squares[row][col] != nil {
			return false
		}
		row += rowStep
		col += colStep
	}
	return true
}

// Snapshot copies the grid into a row-major slice for serialization,
// row 0 (white's back rank) first.
func (b *Board) Snapshot() [][]*Piece {
	grid := make([][]*Piece, 8)
	for row := 0; row < 8; row++ {
		grid[row] = make([]*Piece, 8)
		for col := 0; col < 8; col++ {
			if p := b.squares[row][col]; p != nil {
				copied := *p
				grid[row][col] = &copied
			}
		}
	}
	return grid
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
