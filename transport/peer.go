// Package transport wraps raw TCP connections into line-oriented peers.
// One frame per line, UTF-8, newline-terminated. No retry logic lives
// here: failures are reported once and the session decides the response.
package transport

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"

	"turn-chat/domain"
	"turn-chat/errors"
)

// Peer is one participant's duplex text stream.
// SendLine is safe for concurrent use; ReceiveLine must only be called
// from the participant's single receiver worker.
type Peer struct {
	dept   domain.Participant
	conn   net.Conn
	reader *bufio.Reader

	writeMu   sync.Mutex
	closeOnce sync.Once
	closed    atomic.Bool
}

func NewPeer(dept domain.Participant, conn net.Conn) *Peer {
	return &Peer{
		dept:   dept,
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
}

func (p *Peer) Dept() domain.Participant {
	return p.dept
}

func (p *Peer) RemoteAddr() string {
	return p.conn.RemoteAddr().String()
}

// Active reports whether the stream is still usable for sending.
func (p *Peer) Active() bool {
	return !p.closed.Load()
}

// SendLine writes one frame. A peer whose stream is gone yields
// ErrDisconnected; the caller owns the session-level reaction.
func (p *Peer) SendLine(text string) error {
	if p.closed.Load() {
		return fmt.Errorf("%w: %s", errors.ErrDisconnected, p.dept)
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if _, err := p.conn.Write([]byte(text + "\n")); err != nil {
		p.closed.Store(true)
		return fmt.Errorf("%w: %s: %v", errors.ErrDisconnected, p.dept, err)
	}
	return nil
}

// ReceiveLine blocks until a full line arrives. A graceful close is
// reported as io.EOF, never as a wrapped failure, so callers can tell
// end-of-stream from a broken pipe.
func (p *Peer) ReceiveLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line == "" {
			return "", io.EOF
		}
		if line != "" {
			// Last unterminated line before EOF still counts.
			return strings.TrimRight(line, "\r\n"), nil
		}
		p.closed.Store(true)
		return "", fmt.Errorf("%w: %s: %v", errors.ErrDisconnected, p.dept, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close is safe to call multiple times.
func (p *Peer) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		err = p.conn.Close()
	})
	return err
}
