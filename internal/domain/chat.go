// Package domain defines the core domain models for the concierge service.
package domain

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single turn in a concierge conversation.
type ChatMessage struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// ChatSession is an in-memory conversation held for the lifetime of a chat widget.
// Messages are append-only.
type ChatSession struct {
	SessionID    string        `json:"session_id"`
	CreatedAt    time.Time     `json:"created_at"`
	LastActiveAt time.Time     `json:"last_active_at"`
	Messages     []ChatMessage `json:"messages"`
	Busy         bool          `json:"busy"`
}

// WelcomeMessage opens every new chat session.
const WelcomeMessage = "Welcome to Marrakech. I am your Vyra Concierge. How may I assist your journey today?"
