// Package client implements the interactive line-protocol chat client.
// It interprets ROLE, TURN, MSG, INFO and SHUTDOWN frames from the
// server; on TURN it prompts for input and sends MSG|<text> or QUIT.
package client

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"

	"github.com/gookit/color"

	"turn-chat/domain"
)

// ChatClient is one participant's side of the conversation.
type ChatClient struct {
	log      *slog.Logger
	addr     string
	quitWord string

	conn      net.Conn
	role      string
	turns     chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	mu sync.Mutex
}

func New(log *slog.Logger, addr, quitWord string) *ChatClient {
	return &ChatClient{
		log:      log,
		addr:     addr,
		quitWord: quitWord,
		turns:    make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Connect dials the server and starts the receiver goroutine.
func (c *ChatClient) Connect() error {
	conn, err := net.Dial("tcp", c.addr)
	if err != nil {
		return fmt.Errorf("could not connect to server at %s: %w", c.addr, err)
	}
	c.conn = conn
	go c.receiverLoop()
	return nil
}

// Role returns the identity assigned by the server, once known.
func (c *ChatClient) Role() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.role
}

// Done is closed when the server shuts the session down or the stream ends.
func (c *ChatClient) Done() <-chan struct{} {
	return c.done
}

func (c *ChatClient) receiverLoop() {
	defer c.finish()

	reader := bufio.NewReader(c.conn)
	for {
		raw, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				c.log.Debug("Receiver stopped", "error", err)
			}
			return
		}

		line := strings.TrimRight(raw, "\r\n")
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, domain.FrameSep, 4)
		switch parts[0] {
		case domain.FrameRole:
			if len(parts) < 3 {
				continue
			}
			c.mu.Lock()
			c.role = parts[1]
			c.mu.Unlock()
			color.Cyan.Printf("Você é %s\n", parts[1])
			if parts[2] == "1" {
				c.signalTurn()
			}
		case domain.FrameTurn:
			c.signalTurn()
		case domain.FrameMsg:
			if len(parts) < 4 {
				continue
			}
			color.Green.Printf("[%s -> %s] #%s %s\n", parts[2], c.Role(), parts[1], parts[3])
		case domain.FrameInfo:
			if len(parts) < 2 {
				continue
			}
			color.Yellow.Printf("[INFO] %s\n", parts[1])
		case domain.FrameShutdown:
			color.Red.Println("Servidor encerrou a sessão.")
			return
		default:
			c.log.Debug("Unexpected frame", "line", line)
		}
	}
}

// Run is the sending loop: wait for a turn grant, prompt, send.
// The quit word sends QUIT and returns; the client never echoes its own
// messages locally.
func (c *ChatClient) Run(input io.Reader) error {
	scanner := bufio.NewScanner(input)
	for {
		select {
		case <-c.done:
			return nil
		case <-c.turns:
		}

		fmt.Printf("\n[%s] Digite sua mensagem (ou '%s'): ", c.Role(), c.quitWord)
		if !scanner.Scan() {
			c.sendLine(domain.FrameQuit)
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			c.signalTurn()
			continue
		}
		if strings.EqualFold(text, c.quitWord) {
			c.sendLine(domain.FrameQuit)
			return nil
		}
		c.sendLine(domain.FrameMsg + domain.FrameSep + text)
	}
}

func (c *ChatClient) sendLine(text string) {
	if _, err := c.conn.Write([]byte(text + "\n")); err != nil {
		c.log.Debug("Send failed", "error", err)
		c.finish()
	}
}

// Close releases the connection; safe to call multiple times.
func (c *ChatClient) Close() {
	c.finish()
}

func (c *ChatClient) finish() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

func (c *ChatClient) signalTurn() {
	select {
	case c.turns <- struct{}{}:
	default:
	}
}
