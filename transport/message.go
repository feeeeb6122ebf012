// Package transport bridges observable streams and WebSocket
// connections using a small JSON envelope protocol.
package transport

import "encoding/json"

// MessageType classifies envelope frames on the wire.
type MessageType string

const (
	// MessageValue carries one stream element in Payload.
	MessageValue MessageType = "value"

	// MessageComplete signals normal end of stream.
	MessageComplete MessageType = "complete"

	// MessageError signals stream failure; Error holds the description.
	MessageError MessageType = "error"
)

// Message is the JSON envelope carrying one stream notification.
type Message struct {
	Type      MessageType     `json:"type"`
	Seq       uint64          `json:"seq"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp int64           `json:"timestamp"`
}
