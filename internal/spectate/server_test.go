package spectate

import (
	"testing"

	"tankduel/internal/arena"
)

func TestClientEnqueue_DropsWhenFull(t *testing.T) {
	c := &Client{send: make(chan []byte, 2)}

	c.Enqueue([]byte("a"))
	c.Enqueue([]byte("b"))
	// Buffer full: this must not block the tick loop.
	done := make(chan struct{})
	go func() {
		c.Enqueue([]byte("c"))
		close(done)
	}()
	<-done

	if got := len(c.send); got != 2 {
		t.Errorf("queued messages = %d, want 2 (overflow dropped)", got)
	}
}

func TestHub_AddRemoveSpectators(t *testing.T) {
	sim := arena.NewBattleSim(
		arena.WithTank("only", arena.SittingDuck{}, 200, 200, 0),
	)
	h := NewHub(sim)

	a := &Client{send: make(chan []byte, 4)}
	b := &Client{send: make(chan []byte, 4)}
	h.add(a)
	h.add(b)
	if h.SpectatorCount() != 2 {
		t.Fatalf("spectators = %d, want 2", h.SpectatorCount())
	}

	h.remove(a)
	h.remove(a) // double-remove is a no-op
	if h.SpectatorCount() != 1 {
		t.Errorf("spectators after remove = %d, want 1", h.SpectatorCount())
	}

	// Broadcast reaches the remaining client only.
	sim.Engine.Step()
	h.broadcast()
	if len(b.send) != 1 {
		t.Errorf("remaining client queued = %d messages, want 1", len(b.send))
	}
}
