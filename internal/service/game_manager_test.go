package service

import (
	"testing"
	"time"

	"github.com/astark117/falconchess-backend/internal/model"
)

func TestCreateAndJoinGame(t *testing.T) {
	gm := NewGameManager()

	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := gm.CreateGame("g1"); err == nil {
		t.Fatal("duplicate create succeeded")
	}

	color, err := gm.AddPlayerToGame("g1", "alice")
	if err != nil {
		t.Fatalf("join alice: %v", err)
	}
	if color != model.White {
		t.Fatalf("first seat = %s, want white", color)
	}
	color, err = gm.AddPlayerToGame("g1", "bob")
	if err != nil {
		t.Fatalf("join bob: %v", err)
	}
	if color != model.Black {
		t.Fatalf("second seat = %s, want black", color)
	}
	if _, err := gm.AddPlayerToGame("g1", "carol"); err == nil {
		t.Fatal("third seat handed out")
	}

	if _, err := gm.AddPlayerToGame("missing", "dave"); err == nil {
		t.Fatal("joined a game that does not exist")
	}
}

func TestMakeMoveThroughManager(t *testing.T) {
	gm := NewGameManager()
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := gm.AddPlayerToGame("g1", "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}

	move := model.MoveRequest{From: "e2", To: "e4"}
	if err := gm.MakeMove("g1", "alice", move); err != nil {
		t.Fatalf("move: %v", err)
	}

	state, err := gm.GetGameState("g1")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.ToMove != model.Black {
		t.Fatalf("toMove = %s, want black", state.ToMove)
	}

	// Only seated players may act.
	if err := gm.MakeMove("g1", "mallory", model.MoveRequest{From: "e7", To: "e5"}); err == nil {
		t.Fatal("unseated player moved")
	}
}

func TestMatchmakingPairsPlayers(t *testing.T) {
	gm := NewGameManager()

	chAlice := make(chan MatchFoundEvent, 1)
	chBob := make(chan MatchFoundEvent, 1)
	gm.RegisterMatchmakingChannel("alice", chAlice)
	gm.RegisterMatchmakingChannel("bob", chBob)

	if err := gm.JoinMatchmaking("alice"); err != nil {
		t.Fatalf("queue alice: %v", err)
	}
	if err := gm.JoinMatchmaking("alice"); err == nil {
		t.Fatal("queued twice")
	}
	if err := gm.JoinMatchmaking("bob"); err != nil {
		t.Fatalf("queue bob: %v", err)
	}

	var eventAlice, eventBob MatchFoundEvent
	select {
	case eventAlice = <-chAlice:
	case <-time.After(3 * time.Second):
		t.Fatal("alice never matched")
	}
	select {
	case eventBob = <-chBob:
	case <-time.After(3 * time.Second):
		t.Fatal("bob never matched")
	}

	if eventAlice.GameID == "" || eventAlice.GameID != eventBob.GameID {
		t.Fatalf("game IDs: alice %q, bob %q", eventAlice.GameID, eventBob.GameID)
	}
	if eventAlice.Color == eventBob.Color {
		t.Fatalf("both players got color %s", eventAlice.Color)
	}

	game, err := gm.GetGame(eventAlice.GameID)
	if err != nil {
		t.Fatalf("matched game missing: %v", err)
	}
	if !game.IsPlayerInGame("alice") || !game.IsPlayerInGame("bob") {
		t.Fatal("players not seated in matched game")
	}
}
