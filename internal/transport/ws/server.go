// Package ws serves the realtime chat widget over WebSocket.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/helloasmak/vyra/internal/config"
	"github.com/helloasmak/vyra/internal/domain"
	"github.com/helloasmak/vyra/internal/hub"
	"github.com/helloasmak/vyra/internal/protocol"
)

// ChatService is the part of the application service the widget needs.
type ChatService interface {
	StartChat(ctx context.Context) domain.ChatSession
	ChatHistory(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	AcceptChatMessage(ctx context.Context, sessionID, text string) error
	ReplyToChatMessage(ctx context.Context, sessionID, text string) (domain.ChatMessage, []domain.ChatMessage, error)
}

// Server handles WebSocket connections.
type Server struct {
	cfg      *config.Config
	hub      *hub.Hub
	chat     ChatService
	upgrader websocket.Upgrader
}

// NewServer creates a new WebSocket server.
func NewServer(cfg *config.Config, h *hub.Hub, chat ChatService) *Server {
	return &Server{
		cfg:  cfg,
		hub:  h,
		chat: chat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return cfg.AllowedOrigin == "*" || origin == "" || origin == cfg.AllowedOrigin
			},
		},
	}
}

// HandleWebSocket upgrades the request and starts the connection pumps.
func (s *Server) HandleWebSocket(c echo.Context) error {
	ws, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Warn("ws_upgrade_failed", "error", err)
		return err
	}

	conn := s.hub.NewConnection(ws)
	s.hub.Register(conn)
	ws.SetReadLimit(s.cfg.WSMaxMessageSize)

	go s.writePump(conn)
	go s.readPump(conn)
	return nil
}

func (s *Server) readPump(conn *hub.Connection) {
	defer func() {
		s.hub.Unregister(conn)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(s.cfg.WSReadTimeout))
	conn.Conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(s.cfg.WSReadTimeout))
		return nil
	})

	for {
		_, message, err := conn.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("ws_read_failed", "conn_id", conn.ID, "error", err)
			}
			return
		}
		s.handleMessage(conn, message)
	}
}

func (s *Server) writePump(conn *hub.Connection) {
	ticker := time.NewTicker(s.cfg.WSPingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WSWriteTimeout))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				slog.Warn("ws_write_failed", "conn_id", conn.ID, "error", err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WSWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Server) handleMessage(conn *hub.Connection, data []byte) {
	var base protocol.BaseMessage
	if err := json.Unmarshal(data, &base); err != nil {
		s.sendError(conn, conn.SessionID, "", protocol.ErrorCodeInvalidMessage, "invalid JSON message")
		return
	}

	switch base.Type {
	case protocol.TypeHello:
		s.handleHello(conn, data)
	case protocol.TypeChat:
		s.handleChat(conn, data)
	default:
		s.sendError(conn, conn.SessionID, base.RequestID, protocol.ErrorCodeInvalidMessage, "unknown message type: "+base.Type)
	}
}

// handleHello binds the connection to an existing session, or to a new one when
// the id is empty or no longer known.
func (s *Server) handleHello(conn *hub.Connection, data []byte) {
	var msg protocol.HelloMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, conn.SessionID, "", protocol.ErrorCodeInvalidMessage, "invalid hello message")
		return
	}

	ctx := context.Background()
	sessionID := msg.SessionID
	var messages []domain.ChatMessage
	if sessionID != "" {
		history, err := s.chat.ChatHistory(ctx, sessionID)
		if err == nil {
			messages = history
		} else {
			sessionID = ""
		}
	}
	if sessionID == "" {
		sess := s.chat.StartChat(ctx)
		sessionID = sess.SessionID
		messages = sess.Messages
	}

	s.hub.BindSession(conn, sessionID)
	s.sendJSON(conn, protocol.HelloAckMessage{
		BaseMessage: protocol.BaseMessage{
			Type:      protocol.TypeHelloAck,
			Ts:        time.Now().UnixMilli(),
			RequestID: msg.RequestID,
			SessionID: sessionID,
		},
		Messages: messages,
	})
	slog.Info("ws_hello_completed", "conn_id", conn.ID, "session_id", sessionID)
}

func (s *Server) handleChat(conn *hub.Connection, data []byte) {
	var msg protocol.ChatMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, conn.SessionID, "", protocol.ErrorCodeInvalidMessage, "invalid chat message")
		return
	}
	if conn.SessionID == "" {
		s.sendError(conn, "", msg.RequestID, protocol.ErrorCodeSessionRequired, "must send hello first")
		return
	}

	sessionID := conn.SessionID
	ctx := context.Background()
	if err := s.chat.AcceptChatMessage(ctx, sessionID, msg.Text); err != nil {
		code, text := errorCode(err)
		s.sendError(conn, sessionID, msg.RequestID, code, text)
		return
	}

	s.broadcastJSON(sessionID, protocol.TypingMessage{
		BaseMessage: protocol.BaseMessage{
			Type:      protocol.TypeTyping,
			Ts:        time.Now().UnixMilli(),
			RequestID: msg.RequestID,
			SessionID: sessionID,
		},
	})

	// The reply can take a while; keep reading other frames meanwhile.
	go func() {
		reply, _, err := s.chat.ReplyToChatMessage(ctx, sessionID, msg.Text)
		if err != nil {
			code, text := errorCode(err)
			s.sendError(conn, sessionID, msg.RequestID, code, text)
			return
		}
		s.broadcastJSON(sessionID, protocol.ReplyMessage{
			BaseMessage: protocol.BaseMessage{
				Type:      protocol.TypeReply,
				Ts:        time.Now().UnixMilli(),
				RequestID: msg.RequestID,
				SessionID: sessionID,
			},
			Message: reply,
		})
	}()
}

func errorCode(err error) (string, string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return protocol.ErrorCodeSessionNotFound, "session not found"
	case errors.Is(err, domain.ErrSessionBusy):
		return protocol.ErrorCodeSessionBusy, "a reply is already pending"
	case errors.Is(err, domain.ErrMessageRejected):
		return protocol.ErrorCodeRejected, err.Error()
	default:
		slog.Error("ws_chat_failed", "error", err)
		return protocol.ErrorCodeInternalError, "internal error"
	}
}

func (s *Server) sendJSON(conn *hub.Connection, v interface{}) {
	if err := s.hub.SendJSONToConnection(conn, v); err != nil {
		slog.Warn("ws_send_failed", "conn_id", conn.ID, "error", err)
	}
}

func (s *Server) broadcastJSON(sessionID string, v interface{}) {
	if err := s.hub.BroadcastJSON(sessionID, v); err != nil {
		slog.Warn("ws_broadcast_failed", "session_id", sessionID, "error", err)
	}
}

func (s *Server) sendError(conn *hub.Connection, sessionID, requestID, code, message string) {
	s.sendJSON(conn, protocol.ErrorMessage{
		BaseMessage: protocol.BaseMessage{
			Type:      protocol.TypeError,
			Ts:        time.Now().UnixMilli(),
			RequestID: requestID,
			SessionID: sessionID,
		},
		Code:    code,
		Message: message,
	})
}
