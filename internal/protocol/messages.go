// Package protocol defines the WebSocket messages exchanged with the chat widget.
package protocol

import "github.com/helloasmak/vyra/internal/domain"

// Message types from client to server
const (
	TypeHello = "hello"
	TypeChat  = "chat"
)

// Message types from server to client
const (
	TypeHelloAck = "hello_ack"
	TypeTyping   = "typing"
	TypeReply    = "reply"
	TypeError    = "error"
)

// BaseMessage contains common fields for all messages.
type BaseMessage struct {
	Type      string `json:"type"`
	Ts        int64  `json:"ts"`
	RequestID string `json:"request_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// HelloMessage binds the connection to a session. An empty session id starts a new one.
type HelloMessage struct {
	BaseMessage
}

// HelloAckMessage carries the session id and its transcript so far.
type HelloAckMessage struct {
	BaseMessage
	Messages []domain.ChatMessage `json:"messages"`
}

// ChatMessage is a guest question.
type ChatMessage struct {
	BaseMessage
	Text string `json:"text"`
}

// TypingMessage tells every connection of a session that a reply is pending.
type TypingMessage struct {
	BaseMessage
}

// ReplyMessage carries the concierge's answer.
type ReplyMessage struct {
	BaseMessage
	Message domain.ChatMessage `json:"message"`
}

// ErrorMessage is sent when a client message cannot be served.
type ErrorMessage struct {
	BaseMessage
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrorCodeInvalidMessage  = "invalid_message"
	ErrorCodeSessionRequired = "session_required"
	ErrorCodeSessionNotFound = "session_not_found"
	ErrorCodeSessionBusy     = "session_busy"
	ErrorCodeRejected        = "message_rejected"
	ErrorCodeInternalError   = "internal_error"
)
