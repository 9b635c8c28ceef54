package model

import "fmt"

// Position is a zero-based board coordinate. Row 0 is white's back rank
// (square a1 = {0, 0}), row 7 is black's back rank.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

// Notation renders the position as an algebraic square token, e.g. "e2".
func (p Position) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// ParseSquare converts an algebraic square token into a Position. The token
// must be a column letter 'a'-'h' followed by a row digit '1'-'8'; anything
// else is ErrInvalidSquare.
func ParseSquare(token string) (Position, error) {
	if len(token) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidSquare, token)
	}
	col := int(token[0] - 'a')
	row := int(token[1] - '1')
	pos := Position{Row: row, Col: col}
	if !pos.InBounds() {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidSquare, token)
	}
	return pos, nil
}

// ParseFairyPiece converts a fairy-piece symbol or name into its kind.
// Accepted forms: "F"/"f"/"falcon" and "H"/"h"/"hunter".
func ParseFairyPiece(symbol string) (PieceType, error) {
	switch symbol {
	case "F", "f", "falcon":
		return Falcon, nil
	case "H", "h", "hunter":
		return Hunter, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPiece, symbol)
}
