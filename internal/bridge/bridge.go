// Package bridge hands puzzle moves from the generator goroutine to the
// presenter one at a time.
//
// A Bridge carries a ready flag, a finished latch and a move counter behind
// one mutex, with a condition variable that is broadcast whenever any of them
// changes. The generator publishes; the presenter awaits and acknowledges.
//
// In [ModeSleep] the generator never waits for the presenter, so rendering
// must finish within the move delay or intermediate moves are skipped (the
// counter still advances). [ModeHandshake] blocks each publish until the
// presenter has acknowledged the move.
package bridge

import (
	"fmt"
	"sync"
	"time"

	"github.com/san-kum/hanoisim/internal/hanoi"
)

type Mode int

const (
	ModeSleep Mode = iota
	ModeHandshake
)

func (m Mode) String() string {
	switch m {
	case ModeSleep:
		return "sleep"
	case ModeHandshake:
		return "handshake"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "sleep" or "handshake".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sleep", "":
		return ModeSleep, nil
	case "handshake":
		return ModeHandshake, nil
	}
	return 0, fmt.Errorf("bridge: unknown handoff mode %q", s)
}

// Signal tells the presenter why a wait returned.
type Signal int

const (
	SignalNone Signal = iota
	SignalMove
	SignalFinished
	SignalClosed
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalMove:
		return "move"
	case SignalFinished:
		return "finished"
	case SignalClosed:
		return "closed"
	default:
		return fmt.Sprintf("Signal(%d)", int(s))
	}
}

// Update is what a wait observed.
type Update struct {
	Signal    Signal
	Iteration int
	Move      hanoi.Move
	Board     hanoi.Snapshot
}

type Bridge struct {
	mu   sync.Mutex
	cond *sync.Cond
	mode Mode

	ready     bool
	finished  bool
	closed    bool
	iteration int
	move      hanoi.Move
	board     hanoi.Snapshot
}

func New(mode Mode) *Bridge {
	b := &Bridge{mode: mode}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *Bridge) Mode() Mode { return b.mode }

// PublishMove records a committed move and wakes the presenter. In
// handshake mode it returns once the move is acknowledged or the bridge is
// closed. The returned iteration is the move's 1-based index.
func (b *Bridge) PublishMove(m hanoi.Move, board hanoi.Snapshot) int {
	b.mu.Lock()
	b.ready = true
	b.iteration++
	b.move = m
	b.board = board
	iteration := b.iteration
	b.mu.Unlock()
	b.cond.Broadcast()

	if b.mode == ModeHandshake {
		b.mu.Lock()
		for b.ready && !b.closed {
			b.cond.Wait()
		}
		b.mu.Unlock()
	}
	return iteration
}

// PublishFinished latches completion. It is called once, after the last move.
func (b *Bridge) PublishFinished() {
	b.mu.Lock()
	b.finished = true
	b.mu.Unlock()
	b.cond.Broadcast()
}

// AwaitMoveOrFinish blocks until a move is pending, the run has finished or
// the bridge is closed. A pending move is reported before completion.
func (b *Bridge) AwaitMoveOrFinish() Update {
	b.mu.Lock()
	defer b.mu.Unlock()
	for !b.signalledLocked() {
		b.cond.Wait()
	}
	return b.updateLocked()
}

// AwaitTimeout is AwaitMoveOrFinish bounded by d. It reports false when d
// elapses with nothing to observe.
func (b *Bridge) AwaitTimeout(d time.Duration) (Update, bool) {
	expired := false
	timer := time.AfterFunc(d, func() {
		b.mu.Lock()
		expired = true
		b.mu.Unlock()
		b.cond.Broadcast()
	})
	defer timer.Stop()

	b.mu.Lock()
	defer b.mu.Unlock()
	for !b.signalledLocked() && !expired {
		b.cond.Wait()
	}
	if !b.signalledLocked() {
		return Update{Signal: SignalNone, Iteration: b.iteration}, false
	}
	return b.updateLocked(), true
}

// Acknowledge marks the pending move as rendered.
func (b *Bridge) Acknowledge() {
	b.mu.Lock()
	b.ready = false
	b.mu.Unlock()
	b.cond.Broadcast()
}

// Close releases every waiter. Publishing after Close never blocks.
func (b *Bridge) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.cond.Broadcast()
}

func (b *Bridge) Iteration() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.iteration
}

func (b *Bridge) Finished() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.finished
}

func (b *Bridge) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

func (b *Bridge) signalledLocked() bool {
	return b.ready || b.finished || b.closed
}

func (b *Bridge) updateLocked() Update {
	u := Update{Iteration: b.iteration, Move: b.move, Board: b.board}
	switch {
	case b.closed:
		u.Signal = SignalClosed
	case b.ready:
		u.Signal = SignalMove
	default:
		u.Signal = SignalFinished
	}
	return u
}
