// Package main provides a terminal client for chatting with the Vyra concierge.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/olekukonko/tablewriter"

	"github.com/helloasmak/vyra/internal/domain"
	"github.com/helloasmak/vyra/internal/protocol"
)

var (
	guestStyle     = color.New(color.FgCyan, color.OpBold)
	conciergeStyle = color.New(color.FgYellow)
	systemStyle    = color.New(color.FgGray)
	errorStyle     = color.New(color.FgRed, color.OpBold)
)

// Client represents a WebSocket client.
type Client struct {
	conn      *websocket.Conn
	sessionID string
	done      chan struct{}
}

// NewClient creates a new client and connects to the server.
func NewClient(addr string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	return &Client{
		conn: conn,
		done: make(chan struct{}),
	}, nil
}

// Close closes the client connection.
func (c *Client) Close() error {
	close(c.done)
	return c.conn.Close()
}

// SendHello binds the connection to sessionID, or to a fresh session when it
// is empty, and returns the transcript carried by hello_ack.
func (c *Client) SendHello(sessionID string) ([]domain.ChatMessage, error) {
	msg := protocol.HelloMessage{
		BaseMessage: protocol.BaseMessage{
			Type:      protocol.TypeHello,
			Ts:        time.Now().UnixMilli(),
			SessionID: sessionID,
		},
	}

	if err := c.conn.WriteJSON(msg); err != nil {
		return nil, fmt.Errorf("write hello: %w", err)
	}

	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read hello_ack: %w", err)
	}

	var base protocol.BaseMessage
	if err := json.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("unmarshal hello_ack: %w", err)
	}

	if base.Type == protocol.TypeError {
		var errMsg protocol.ErrorMessage
		_ = json.Unmarshal(data, &errMsg)
		return nil, fmt.Errorf("hello failed: %s - %s", errMsg.Code, errMsg.Message)
	}

	if base.Type != protocol.TypeHelloAck {
		return nil, fmt.Errorf("expected hello_ack, got: %s", base.Type)
	}

	var ack protocol.HelloAckMessage
	if err := json.Unmarshal(data, &ack); err != nil {
		return nil, fmt.Errorf("unmarshal hello_ack: %w", err)
	}
	c.sessionID = ack.SessionID
	return ack.Messages, nil
}

// SendChat sends a guest message on the bound session.
func (c *Client) SendChat(text string) error {
	msg := protocol.ChatMessage{
		BaseMessage: protocol.BaseMessage{
			Type:      protocol.TypeChat,
			Ts:        time.Now().UnixMilli(),
			SessionID: c.sessionID,
			RequestID: fmt.Sprintf("req_%d", time.Now().UnixNano()),
		},
		Text: text,
	}

	return c.conn.WriteJSON(msg)
}

// ReadMessages reads and prints messages from the server.
func (c *Client) ReadMessages(out io.Writer) {
	for {
		select {
		case <-c.done:
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					log.Printf("Read error: %v", err)
				}
				return
			}
			printFrame(out, data)
		}
	}
}

func printFrame(out io.Writer, data []byte) {
	var base protocol.BaseMessage
	if err := json.Unmarshal(data, &base); err != nil {
		fmt.Fprintln(out, errorStyle.Sprintf("unreadable frame: %v", err))
		return
	}

	switch base.Type {
	case protocol.TypeTyping:
		fmt.Fprintln(out, systemStyle.Sprint("concierge is typing..."))
	case protocol.TypeReply:
		var reply protocol.ReplyMessage
		if err := json.Unmarshal(data, &reply); err != nil {
			fmt.Fprintln(out, errorStyle.Sprintf("unreadable reply: %v", err))
			return
		}
		printChatMessage(out, reply.Message)
	case protocol.TypeError:
		var errMsg protocol.ErrorMessage
		_ = json.Unmarshal(data, &errMsg)
		fmt.Fprintln(out, errorStyle.Sprintf("[%s] %s", errMsg.Code, errMsg.Message))
	default:
		fmt.Fprintln(out, systemStyle.Sprintf("[%s] %s", base.Type, string(data)))
	}
}

func printChatMessage(out io.Writer, msg domain.ChatMessage) {
	switch msg.Role {
	case domain.RoleUser:
		fmt.Fprintln(out, guestStyle.Sprint("you: ")+msg.Text)
	default:
		fmt.Fprintln(out, conciergeStyle.Sprint("concierge: ")+msg.Text)
	}
}

// apiBase derives the REST base URL from the WebSocket address.
func apiBase(wsAddr string) (string, error) {
	u, err := url.Parse(wsAddr)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = ""
	u.RawQuery = ""
	return strings.TrimSuffix(u.String(), "/"), nil
}

func fetchServices(client *http.Client, base string) ([]domain.Service, error) {
	resp, err := client.Get(base + "/v1/services")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var body struct {
		Services []domain.Service `json:"services"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return body.Services, nil
}

func renderServices(out io.Writer, services []domain.Service) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Title", "Description"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, s := range services {
		table.Append([]string{s.ID, s.Title, s.ShortDesc})
	}
	table.Render()
}

func main() {
	addr := flag.String("addr", envOr("VYRA_WS_URL", "ws://localhost:8080/ws"), "WebSocket server address")
	session := flag.String("session", "", "Resume an existing chat session")
	flag.Parse()

	log.SetFlags(log.Ltime)

	base, err := apiBase(*addr)
	if err != nil {
		log.Fatalf("Invalid address: %v", err)
	}

	fmt.Printf("Connecting to %s...\n", *addr)

	client, err := NewClient(*addr)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer client.Close()

	transcript, err := client.SendHello(*session)
	if err != nil {
		log.Fatalf("Hello failed: %v", err)
	}

	fmt.Println(systemStyle.Sprintf("Session %s", client.sessionID))
	for _, msg := range transcript {
		printChatMessage(os.Stdout, msg)
	}
	fmt.Println(systemStyle.Sprint("Commands: /services, /quit"))

	go client.ReadMessages(os.Stdout)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	httpClient := &http.Client{Timeout: 10 * time.Second}
	for {
		select {
		case <-interrupt:
			fmt.Println("\nInterrupted")
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			line = strings.TrimSpace(line)
			switch {
			case line == "":
				continue
			case line == "/quit":
				return
			case line == "/services":
				services, err := fetchServices(httpClient, base)
				if err != nil {
					fmt.Println(errorStyle.Sprintf("services: %v", err))
					continue
				}
				renderServices(os.Stdout, services)
			default:
				if err := client.SendChat(line); err != nil {
					log.Printf("Send error: %v", err)
					return
				}
			}
		}
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
