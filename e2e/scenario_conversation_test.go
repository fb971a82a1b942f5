package e2e

import (
	"context"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"turn-chat/client"
	"turn-chat/domain"
	"turn-chat/observability"
	"turn-chat/runtime"
	"turn-chat/sink"
)

// Test_Scenario_TwoScriptedClients drives a complete conversation through
// the real client implementation over TCP: role negotiation, alternation,
// and shutdown after both sides quit.
func Test_Scenario_TwoScriptedClients(t *testing.T) {
	req := require.New(t)

	cfg, err := LoadConfig()
	req.NoError(err)
	if !cfg.Colours {
		color.Disable()
	}

	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	addr := cfg.ServerAddr
	var (
		timeline *sink.Timeline
		served   chan error
	)
	if addr == "" {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		req.NoError(err)
		addr = ln.Addr().String()

		timeline = sink.NewTimeline()
		monitor := observability.NewMonitor(log)
		engine := runtime.NewEngine(log, domain.DeptRH, nil, monitor, 0, nil, timeline)

		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)

		served = make(chan error, 1)
		go func() {
			served <- engine.Serve(ctx, ln)
		}()
	}

	// Connection order decides identity: RH dials first.
	rh := client.New(log, addr, cfg.QuitWord)
	req.NoError(rh.Connect())
	t.Cleanup(rh.Close)

	ti := client.New(log, addr, cfg.QuitWord)
	req.NoError(ti.Connect())
	t.Cleanup(ti.Close)

	rhDone := make(chan error, 1)
	go func() {
		rhDone <- rh.Run(strings.NewReader("Olá TI\nsair\n"))
	}()
	tiDone := make(chan error, 1)
	go func() {
		tiDone <- ti.Run(strings.NewReader("Oi RH\nsair\n"))
	}()

	for name, ch := range map[string]chan error{"RH": rhDone, "TI": tiDone} {
		select {
		case err := <-ch:
			req.NoError(err)
		case <-time.After(5 * time.Second):
			t.Fatalf("client %s did not finish its script", name)
		}
	}

	for name, c := range map[string]*client.ChatClient{"RH": rh, "TI": ti} {
		select {
		case <-c.Done():
		case <-time.After(5 * time.Second):
			t.Fatalf("client %s never saw the shutdown", name)
		}
	}

	req.Equal("RH", rh.Role())
	req.Equal("TI", ti.Role())

	if served != nil {
		select {
		case err := <-served:
			req.NoError(err)
		case <-time.After(5 * time.Second):
			t.Fatal("engine did not finish")
		}
		msgs := timeline.Messages()
		req.Len(msgs, 2)
		req.Equal("Olá TI", msgs[0].Text)
		req.Equal("Oi RH", msgs[1].Text)
	}
}
