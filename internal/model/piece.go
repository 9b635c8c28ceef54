package model

import "strings"

// Color identifies a side. White pieces start on rows 0-1, black on rows 6-7.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
	Falcon PieceType = "falcon"
	Hunter PieceType = "hunter"
)

func (p PieceType) letter() string {
	switch p {
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	case Falcon:
		return "f"
	case Hunter:
		return "h"
	}
	return ""
}

// IsMajor reports whether losing this piece earns the owner a fairy entry.
func (p PieceType) IsMajor() bool {
	switch p {
	case Knight, Rook, Bishop, Queen:
		return true
	}
	return false
}

type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

// Symbol is the display letter, uppercase for white and lowercase for black.
func (p Piece) Symbol() string {
	if p.Color == White {
		return strings.ToUpper(p.Type.letter())
	}
	return p.Type.letter()
}

// MoveResult classifies a candidate move before path collision is considered.
type MoveResult int

const (
	MoveRejected MoveResult = iota
	MovePlain
	MoveCapture
)

// ValidMove checks the movement shape of p from one square to another.
// target is the destination occupant, nil for an empty square. Landing on an
// own-color piece is rejected for every kind. Path collisions are the
// caller's concern; only the pawn's result depends on the destination
// occupant beyond its color.
func (p Piece) ValidMove(from, to Position, target *Piece) MoveResult {
	if target != nil && target.Color == p.Color {
		return MoveRejected
	}
	switch p.Type {
	case Pawn:
		return pawnMove(p.Color, from, to, target)
	case Rook:
		return shapeResult(rookShape(from, to), target)
	case Knight:
		return shapeResult(knightShape(from, to), target)
	case Bishop:
		return shapeResult(bishopShape(from, to), target)
	case Queen:
		return shapeResult(rookShape(from, to) || bishopShape(from, to), target)
	case King:
		return shapeResult(kingShape(from, to), target)
	case Falcon:
		return shapeResult(falconShape(p.Color, from, to), target)
	case Hunter:
		return shapeResult(hunterShape(p.Color, from, to), target)
	}
	return MoveRejected
}

func shapeResult(ok bool, target *Piece) MoveResult {
	if !ok {
		return MoveRejected
	}
	if target == nil {
		return MovePlain
	}
	return MoveCapture
}

// pawnMove: one step forward onto an empty square, two steps forward from the
// start rank onto an empty square, or a one-step forward diagonal onto an
// opponent piece. A pawn never captures straight and never steps diagonally
// onto an empty square.
func pawnMove(c Color, from, to Position, target *Piece) MoveResult {
	direction := 1
	startRow := 1
	if c == Black {
		direction = -1
		startRow = 6
	}

	if from.Col == to.Col {
		if target != nil {
			return MoveRejected
		}
		if to.Row == from.Row+direction {
			return MovePlain
		}
		if from.Row == startRow && to.Row == from.Row+2*direction {
			return MovePlain
		}
		return MoveRejected
	}
	if abs(to.Col-from.Col) == 1 && to.Row == from.Row+direction {
		if target == nil {
			return MoveRejected
		}
		return MoveCapture
	}
	return MoveRejected
}

func rookShape(from, to Position) bool {
	if from.Row == to.Row && from.Col != to.Col {
		return true
	}
	return from.Row != to.Row && from.Col == to.Col
}

func knightShape(from, to Position) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)
}

func bishopShape(from, to Position) bool {
	rowDiff := abs(to.Row - from.Row)
	return rowDiff != 0 && rowDiff == abs(to.Col-from.Col)
}

func kingShape(from, to Position) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	if rowDiff == 0 && colDiff == 0 {
		return false
	}
	return rowDiff <= 1 && colDiff <= 1
}

// falconShape: toward the owner's far side the falcon slides like a bishop;
// otherwise white is limited to its own rank and black to its own file.
func falconShape(c Color, from, to Position) bool {
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	if c == White {
		if rowDiff >= 0 {
			return rowDiff != 0 && abs(rowDiff) == abs(colDiff)
		}
		return from.Row == to.Row && from.Col != to.Col
	}
	if rowDiff <= 0 {
		return rowDiff != 0 && abs(rowDiff) == abs(colDiff)
	}
	return from.Col == to.Col && from.Row != to.Row
}

// hunterShape mirrors the falcon: forward like a rook, backward like a
// bishop, with the direction sense swapped per color.
func hunterShape(c Color, from, to Position) bool {
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	if c == Black {
		if rowDiff >= 0 {
			return rowDiff != 0 && abs(rowDiff) == abs(colDiff)
		}
		return from.Row == to.Row && from.Col != to.Col
	}
	if rowDiff <= 0 {
		return rowDiff != 0 && abs(rowDiff) == abs(colDiff)
	}
	return from.Col == to.Col && from.Row != to.Row
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
