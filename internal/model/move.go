package model

// MoveRequest is a move submission in square tokens, as sent over the wire.
type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FairyRequest asks to enter a reserve fairy piece on a square.
type FairyRequest struct {
	Piece  string `json:"piece"`
	Square string `json:"square"`
}

// SimpleMove records an applied move for clients.
type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}
