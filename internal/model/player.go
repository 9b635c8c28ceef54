package model

// Player is a seat in a game.
type Player struct {
	ID    string
	Color Color
}

// ClientPlayer is the seat as presented to clients.
type ClientPlayer struct {
	ID       string `json:"name"`
	Color    Color  `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}

// SideState is the rules-facing state of one color: the pieces it has
// captured from its opponent (in capture order) and its fairy-piece reserve.
type SideState struct {
	Color        Color       `json:"color"`
	Captured     []Piece     `json:"captured"`
	FairyReserve []PieceType `json:"fairyReserve"`
	FairyEntered int         `json:"fairyEntered"`
}

func newSideState(c Color) *SideState {
	return &SideState{
		Color:        c,
		Captured:     make([]Piece, 0),
		FairyReserve: []PieceType{Hunter, Falcon},
	}
}

func (s *SideState) addCaptured(p Piece) {
	s.Captured = append(s.Captured, p)
}

// MajorsCaptured counts the knights, rooks, bishops and queens this side has
// taken from its opponent. Each such loss earns the opponent one fairy entry.
func (s *SideState) MajorsCaptured() int {
	count := 0
	for _, p := range s.Captured {
		if p.Type.IsMajor() {
			count++
		}
	}
	return count
}

func (s *SideState) holdsFairy(kind PieceType) bool {
	for _, k := range s.FairyReserve {
		if k == kind {
			return true
		}
	}
	return false
}

func (s *SideState) removeFairy(kind PieceType) {
	for i, k := range s.FairyReserve {
		if k == kind {
			s.FairyReserve = append(s.FairyReserve[:i], s.FairyReserve[i+1:]...)
			return
		}
	}
}
