package model

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/astark117/falconchess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type GameStatus string

const (
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusWhiteWon   GameStatus = "WHITE_WON"
	StatusBlackWon   GameStatus = "BLACK_WON"
)

const initialClockTime = 600 * time.Second

// GameConnections holds the live websocket connections for one game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{connections: make(map[string]*websocket.Conn)}
}

// Game owns one match: the board, both sides' rules state, the turn, the
// terminal status, the seats and the observers. Every public operation is a
// single critical section; a rejected request leaves the game untouched.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	sides       map[Color]*SideState
	status      GameStatus
	toMove      Color
	seats       map[Color]*Player
	lastMove    *SimpleMove
	connections *GameConnections
	clocks      map[Color]*Clock
}

// GameState is the full snapshot sent to clients: everything the
// presentation layer needs to render a game.
type GameState struct {
	Board    [][]*Piece  `json:"board"`
	ToMove   Color       `json:"toMove"`
	Status   GameStatus  `json:"status"`
	White    SideState   `json:"white"`
	Black    SideState   `json:"black"`
	Players  GamePlayers `json:"players"`
	LastMove *SimpleMove `json:"lastMove"`
}

type GamePlayers struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:    id,
		board: NewBoard(),
		sides: map[Color]*SideState{
			White: newSideState(White),
			Black: newSideState(Black),
		},
		status:      StatusInProgress,
		toMove:      White,
		seats:       map[Color]*Player{},
		connections: NewGameConnections(),
		clocks: map[Color]*Clock{
			White: NewClock(initialClockTime),
			Black: NewClock(initialClockTime),
		},
	}
}

// AddPlayer seats a player, white first. Returns the assigned color.
func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seats[White] == nil {
		g.seats[White] = &Player{ID: playerID, Color: White}
		return White, nil
	}
	if g.seats[Black] == nil {
		g.seats[Black] = &Player{ID: playerID, Color: Black}
		return Black, nil
	}
	return "", errors.New("game is full")
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	for _, seat := range g.seats {
		if seat != nil && seat.ID == playerID {
			return true
		}
	}
	return false
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.seats[White] == nil || g.seats[Black] == nil
}

// Status returns the current game status.
func (g *Game) Status() GameStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// TurnColor returns the color to move.
func (g *Game) TurnColor() Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

// CapturedPieces returns the pieces the given color has captured, in capture
// order.
func (g *Game) CapturedPieces(c Color) []Piece {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Piece(nil), g.sides[c].Captured...)
}

// FairyReserve returns the fairy kinds the color has not yet entered and how
// many it has entered so far.
func (g *Game) FairyReserve(c Color) ([]PieceType, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	side := g.sides[c]
	return append([]PieceType(nil), side.FairyReserve...), side.FairyEntered
}

// GetState builds the client-facing snapshot.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() GameState {
	state := GameState{
		Board:    g.board.Snapshot(),
		ToMove:   g.toMove,
		Status:   g.status,
		White:    g.sideSnapshot(White),
		Black:    g.sideSnapshot(Black),
		LastMove: g.lastMove,
	}
	state.Players.White = g.seatSnapshot(White)
	state.Players.Black = g.seatSnapshot(Black)
	return state
}

func (g *Game) sideSnapshot(c Color) SideState {
	side := g.sides[c]
	return SideState{
		Color:        side.Color,
		Captured:     append([]Piece(nil), side.Captured...),
		FairyReserve: append([]PieceType(nil), side.FairyReserve...),
		FairyEntered: side.FairyEntered,
	}
}

func (g *Game) seatSnapshot(c Color) ClientPlayer {
	cp := ClientPlayer{Color: c, TimeLeft: int(g.clocks[c].TimeLeft().Milliseconds() / 100)}
	if seat := g.seats[c]; seat != nil {
		cp.ID = seat.ID
	}
	return cp
}

// MakeMove applies one move given pre-parsed coordinates. On any rejection
// the game state is unchanged and the turn does not advance.
func (g *Game) MakeMove(from, to Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	mover := g.toMove
	if err := g.makeMove(from, to); err != nil {
		return err
	}
	g.clockTurnover(mover)
	go g.broadcastState()
	return nil
}

// MakeMoveTokens is MakeMove for raw square tokens such as "e2".
func (g *Game) MakeMoveTokens(from, to string) error {
	fromPos, err := ParseSquare(from)
	if err != nil {
		return err
	}
	toPos, err := ParseSquare(to)
	if err != nil {
		return err
	}
	return g.MakeMove(fromPos, toPos)
}

// MakeMoveAs submits a move on behalf of a seated player.
func (g *Game) MakeMoveAs(playerID string, req MoveRequest) error {
	if !g.IsPlayerInGame(playerID) {
		return errors.New("player is not seated in this game")
	}
	return g.MakeMoveTokens(req.From, req.To)
}

func (g *Game) makeMove(from, to Position) error {
	if g.status != StatusInProgress {
		return ErrGameOver
	}
	if !from.InBounds() || !to.InBounds() {
		return ErrOutOfBounds
	}

	mover := g.board.At(from)
	if mover == nil {
		return ErrEmptySquare
	}
	if mover.Color != g.toMove {
		return ErrNotYourTurn
	}

	target := g.board.At(to)
	result := mover.ValidMove(from, to, target)
	if result == MoveRejected {
		return ErrIllegalMove
	}
	// Knights hop; everything else, the pawn's two-step opener included,
	// needs a clear path.
	if mover.Type != Knight && !g.board.PathClear(from, to) {
		return ErrBlockedPath
	}

	if result == MoveCapture {
		g.capture(to)
	}
	g.board.Place(mover, to)
	g.board.Remove(from)
	g.lastMove = &SimpleMove{From: from, To: to}
	g.advanceTurn()
	return nil
}

// capture moves the destination occupant into the mover's captured list.
// Taking the king decides the game on the spot; the move itself still
// completes.
func (g *Game) capture(pos Position) {
	taken := g.board.At(pos)
	g.sides[g.toMove].addCaptured(*taken)
	if taken.Type == King {
		if g.toMove == White {
			g.status = StatusWhiteWon
		} else {
			g.status = StatusBlackWon
		}
	}
	g.board.Remove(pos)
}

// EnterFairyPiece places a reserve fairy piece for the player to move. This
// is an alternative to a move and consumes the turn.
func (g *Game) EnterFairyPiece(kind PieceType, target Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	mover := g.toMove
	if err := g.enterFairy(kind, target); err != nil {
		return err
	}
	g.clockTurnover(mover)
	go g.broadcastState()
	return nil
}

// EnterFairyTokens is EnterFairyPiece for a raw symbol ("F"/"H") and square
// token.
func (g *Game) EnterFairyTokens(symbol, square string) error {
	kind, err := ParseFairyPiece(symbol)
	if err != nil {
		return err
	}
	target, err := ParseSquare(square)
	if err != nil {
		return err
	}
	return g.EnterFairyPiece(kind, target)
}

// EnterFairyAs submits a fairy entry on behalf of a seated player.
func (g *Game) EnterFairyAs(playerID string, req FairyRequest) error {
	if !g.IsPlayerInGame(playerID) {
		return errors.New("player is not seated in this game")
	}
	return g.EnterFairyTokens(req.Piece, req.Square)
}

func (g *Game) enterFairy(kind PieceType, target Position) error {
	if g.status != StatusInProgress {
		return ErrGameOver
	}
	if !target.InBounds() {
		return ErrOutOfBounds
	}

	side := g.sides[g.toMove]
	if !side.holdsFairy(kind) {
		return ErrFairyUsed
	}
	// An entry is earned for every major piece this side has lost, i.e.
	// every major in the opponent's captured list.
	if g.sides[g.toMove.Opponent()].MajorsCaptured() <= side.FairyEntered {
		return ErrFairyNotEarned
	}
	if !homeRank(g.toMove, target) || g.board.At(target) != nil {
		return ErrBadEntrySquare
	}

	g.board.Place(&Piece{Type: kind, Color: g.toMove}, target)
	side.removeFairy(kind)
	side.FairyEntered++
	g.lastMove = &SimpleMove{From: target, To: target}
	g.advanceTurn()
	return nil
}

// homeRank reports whether the square lies in the color's two home-most
// ranks, the only legal fairy entry zone.
func homeRank(c Color, pos Position) bool {
	if c == White {
		return pos.Row == 0 || pos.Row == 1
	}
	return pos.Row == 6 || pos.Row == 7
}

// advanceTurn flips the turn after every applied action, even a game-ending
// one. Once the status is terminal the flip is unobservable: every further
// request is rejected before it looks at the turn.
func (g *Game) advanceTurn() {
	g.toMove = g.toMove.Opponent()
}

func (g *Game) clockTurnover(mover Color) {
	g.clocks[mover].Stop()
	if g.status == StatusInProgress {
		g.clocks[g.toMove].Start()
	}
}

// RegisterConnection attaches a websocket connection to this game. Players
// get one connection each; anyone may spectate while a seat is open.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	authorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !authorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState() {
	state := g.GetState()
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("marshal game state: %v", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		})
		if err != nil {
			log.Printf("send state to player %s: %v", playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
