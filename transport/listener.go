package transport

import (
	"fmt"
	"log/slog"
	"net"

	"turn-chat/domain"
	"turn-chat/errors"
)

// AcceptPair blocks until both participants are connected and assigns
// identities positionally: the first connection becomes RH, the second TI.
// This is the only phase allowed to block indefinitely.
func AcceptPair(ln net.Listener, log *slog.Logger) (map[domain.Participant]*Peer, error) {
	peers := make(map[domain.Participant]*Peer, 2)

	for _, dept := range []domain.Participant{domain.DeptRH, domain.DeptTI} {
		conn, err := ln.Accept()
		if err != nil {
			for _, p := range peers {
				_ = p.Close()
			}
			return nil, fmt.Errorf("%w: accept: %v", errors.ErrSetup, err)
		}
		peers[dept] = NewPeer(dept, conn)
		log.Info("Participant connected", "dept", dept, "addr", conn.RemoteAddr().String())
	}
	return peers, nil
}
