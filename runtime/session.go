package runtime

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"turn-chat/contract"
	"turn-chat/domain"
	"turn-chat/domain/event"
	"turn-chat/moderation"
	"turn-chat/observability"
	"turn-chat/transport"
)

// Session owns both peers, the transcript and the turn coordinator, and
// drives the lifecycle WAITING_FOR_BOTH -> ACTIVE -> A_DONE/B_DONE -> CLOSED.
//
// Each peer has a single receiver worker, so a connection's lines are
// handled strictly in arrival order; the two workers serialize through
// the transcript's and coordinator's own exclusive-access guarantees,
// plus the session mutex for lifecycle state.
type Session struct {
	ID         uuid.UUID
	log        *slog.Logger
	peers      map[domain.Participant]*transport.Peer
	transcript contract.ITranscript
	turns      contract.ITurnCoordinator
	monitor    *observability.Monitor
	moderator  *moderation.Moderator
	events     chan<- event.DomainEvent

	mu    sync.Mutex
	state domain.SessionState
	done  map[domain.Participant]bool

	ended     chan struct{}
	closeOnce sync.Once
}

func NewSession(
	log *slog.Logger,
	peers map[domain.Participant]*transport.Peer,
	transcript contract.ITranscript,
	turns contract.ITurnCoordinator,
	monitor *observability.Monitor,
	moderator *moderation.Moderator,
	events chan<- event.DomainEvent,
) *Session {
	id := uuid.New()
	return &Session{
		ID:         id,
		log:        log.With("session", id.String()),
		peers:      peers,
		transcript: transcript,
		turns:      turns,
		monitor:    monitor,
		moderator:  moderator,
		events:     events,
		state:      domain.WaitingForBoth,
		done:       make(map[domain.Participant]bool, 2),
		ended:      make(chan struct{}),
	}
}

// Begin completes role negotiation: every peer learns its identity and
// whether it starts, then the starter is granted the first turn.
func (s *Session) Begin(starter domain.Participant) error {
	s.mu.Lock()
	if s.state != domain.WaitingForBoth {
		s.mu.Unlock()
		return fmt.Errorf("session already started (state %s)", s.state)
	}
	s.state = domain.Active
	s.mu.Unlock()

	for dept, peer := range s.peers {
		if err := peer.SendLine(domain.EncodeRole(dept, dept == starter)); err != nil {
			return err
		}
		welcome := fmt.Sprintf("Bem-vindo ao chat %s. Aguarde seu turno.", dept)
		if err := peer.SendLine(domain.EncodeInfo(welcome)); err != nil {
			return err
		}
	}

	s.log.Info("Session active", "starter", starter)
	s.turns.Grant(starter)
	return nil
}

// HandleLine processes one inbound line from participant p.
// Malformed lines are a protocol error for that connection only: they
// are logged, rejected with an INFO notice, and never touch turn state
// or the transcript.
func (s *Session) HandleLine(p domain.Participant, line string) {
	if line == "" {
		return
	}

	cmd, err := domain.DecodeCommand(line)
	if err != nil {
		s.monitor.IncrProtocolErrors()
		s.log.Warn("Unrecognized line", "dept", p, "line", line)
		s.sendInfo(p, "Comando não reconhecido.")
		return
	}

	switch c := cmd.(type) {
	case domain.MsgCommand:
		s.handleMsg(p, c.Text)
	case domain.QuitCommand:
		s.markDone(p, "saiu")
	}
}

// HandleDisconnect marks p done after its stream closed mid-session.
// Idempotent with an earlier QUIT from the same participant.
func (s *Session) HandleDisconnect(p domain.Participant) {
	s.markDone(p, "desconectou")
}

func (s *Session) handleMsg(p domain.Participant, text string) {
	if s.isDone(p) {
		s.sendInfo(p, "Sua sessão já foi encerrada.")
		return
	}

	holder, ok := s.turns.Holder()
	if !ok || holder != p {
		s.monitor.IncrRejected()
		s.sendInfo(p, "Não é seu turno. Aguarde.")
		return
	}

	if s.moderator != nil {
		text = s.moderator.Censor(text)
	}

	other := p.Other()
	recipient := s.peers[other]
	deliverable := !s.isDone(other) && recipient.Active()

	msg := s.transcript.Append(p, text, deliverable)
	s.monitor.IncrAccepted()
	s.log.Info("Message accepted", "seq", msg.Seq, "from", p)

	if deliverable {
		if err := recipient.SendLine(domain.EncodeDelivery(msg)); err != nil {
			// The recipient vanished between the liveness check and the
			// forward; the record must not claim a delivery.
			s.log.Warn("Forward failed", "seq", msg.Seq, "to", other, "error", err)
			s.transcript.MarkUndelivered(msg.Seq)
			deliverable = false
		}
	}

	if !deliverable {
		// Recipient offline: the sender keeps the turn so it is never
		// stuck waiting for a reply that will not come.
		s.monitor.IncrDeliveryFailures()
		s.sendInfo(p, fmt.Sprintf("%s offline. Sua mensagem foi registrada.", other))
		s.turns.Return(p)
		s.publish(event.DeliveryFailed{ID: msg.ID, Seq: msg.Seq, Sender: p, Recipient: other, At: time.Now()})
		return
	}

	// The done check and the handover share the session mutex with
	// markDone, so a disconnect observed after a successful forward can
	// never leave the turn on a done participant.
	s.mu.Lock()
	if s.done[other] {
		s.turns.Return(p)
	} else {
		s.turns.Advance(p)
	}
	s.mu.Unlock()
	s.publish(event.MessageDelivered{ID: msg.ID, Seq: msg.Seq, Sender: p, Text: msg.Text, At: time.Now()})
}

// markDone records that p finished (QUIT or disconnect), keeps the other
// side unblocked, and closes the session once both are done.
func (s *Session) markDone(p domain.Participant, how string) {
	s.mu.Lock()
	if s.done[p] || s.state == domain.Closed {
		s.mu.Unlock()
		return
	}
	s.done[p] = true
	switch {
	case s.done[p.Other()]:
		s.state = domain.Closed
	case p == domain.DeptRH:
		s.state = domain.ADone
	default:
		s.state = domain.BDone
	}
	bothDone := s.state == domain.Closed
	if !bothDone {
		if holder, ok := s.turns.Holder(); ok && holder == p {
			s.turns.Advance(p)
		}
	}
	s.mu.Unlock()

	s.monitor.IncrQuits()
	s.log.Info("Participant done", "dept", p, "how", how, "state", s.State())
	s.publish(event.ParticipantQuit{Who: p, At: time.Now()})

	other := p.Other()
	if !bothDone && s.peers[other].Active() {
		s.sendInfo(other, fmt.Sprintf("%s %s. Você ainda pode enviar mensagens.", p, how))
	}

	if bothDone {
		close(s.ended)
	}
}

// Ended is closed once both participants are done.
func (s *Session) Ended() <-chan struct{} {
	return s.ended
}

func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Shutdown performs the CLOSED transition exactly once: the coordinator
// wakes any stragglers, remaining peers are told to terminate, and all
// connections are released. Safe to call multiple times.
func (s *Session) Shutdown() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.state = domain.Closed
		s.mu.Unlock()

		s.turns.Close()
		for _, peer := range s.peers {
			if peer.Active() {
				_ = peer.SendLine(domain.FrameShutdown)
			}
			_ = peer.Close()
		}
		s.publish(event.SessionClosed{Messages: uint64(s.transcript.Len()), At: time.Now()})
		s.log.Info("Session closed", "messages", s.transcript.Len())
	})
}

func (s *Session) isDone(p domain.Participant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done[p]
}

func (s *Session) sendInfo(p domain.Participant, text string) {
	if err := s.peers[p].SendLine(domain.EncodeInfo(text)); err != nil {
		s.log.Debug("INFO not delivered", "dept", p, "error", err)
	}
}

// publish is best effort: a full event buffer drops the event rather
// than stalling the turn machine.
func (s *Session) publish(e event.DomainEvent) {
	select {
	case s.events <- e:
	default:
		s.log.Debug("Event buffer full, event dropped")
	}
}
