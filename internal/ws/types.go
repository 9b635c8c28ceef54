package ws

import (
	"encoding/json"
)

// MessageType discriminates the websocket messages the system exchanges.
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeEnterFairy MessageType = "enterFairy"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeError      MessageType = "error"
)

// Message is the envelope for every websocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
