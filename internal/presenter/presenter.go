// Package presenter runs the display side of the move handoff.
//
// The presenter owns a Display and moves through three states:
//
//	Running  -> Running   a move arrived; draw it and acknowledge
//	Running  -> Draining  the generator finished
//	Draining -> Draining  redraw the final frame until the viewer closes
//	*        -> Closed    the display reported a close request
//
// Close requests are only noticed between waits. With a zero event tick that
// means once per move; a positive tick bounds each wait instead.
package presenter

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/hanoisim/internal/bridge"
	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/layout"
	"github.com/san-kum/hanoisim/internal/render"
)

type State int

const (
	Running State = iota
	Draining
	Closed
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Draining:
		return "DRAINING"
	case Closed:
		return "CLOSED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Display is a drawing surface owned by the presenter goroutine.
type Display interface {
	// PollClose drains pending input and reports whether the viewer asked
	// to close the display.
	PollClose() bool
	// Draw paints a full frame. It may block to pace the frame rate.
	Draw(f render.Frame)
	Close()
}

// Report summarises a presenter run.
type Report struct {
	State      State
	Frames     int
	Iterations []int
}

// LastIteration returns the last move drawn, or zero.
func (r Report) LastIteration() int {
	if len(r.Iterations) == 0 {
		return 0
	}
	return r.Iterations[len(r.Iterations)-1]
}

type Presenter struct {
	display   Display
	bridge    *bridge.Bridge
	geometry  layout.Geometry
	eventTick time.Duration
	logger    *log.Logger

	state  State
	frame  render.Frame
	report Report
}

func New(d Display, b *bridge.Bridge, geo layout.Geometry) *Presenter {
	return &Presenter{
		display:  d,
		bridge:   b,
		geometry: geo,
		logger:   log.Default(),
	}
}

func (p *Presenter) SetLogger(l *log.Logger) { p.logger = l }

// SetEventTick bounds every wait on the bridge so close requests are polled
// at least once per tick. Zero polls only when a move arrives.
func (p *Presenter) SetEventTick(d time.Duration) { p.eventTick = d }

// Run draws the initial board and then follows the bridge until the display
// is closed. It always leaves the bridge closed.
func (p *Presenter) Run(initial hanoi.Snapshot) Report {
	defer p.bridge.Close()

	p.state = Running
	p.draw(render.Compose(p.geometry, initial, 0))

	for p.state == Running {
		if p.display.PollClose() {
			p.close()
			break
		}

		u, ok := p.await()
		if !ok {
			continue
		}
		switch u.Signal {
		case bridge.SignalMove:
			p.draw(render.Compose(p.geometry, u.Board, u.Iteration))
			p.report.Iterations = append(p.report.Iterations, u.Iteration)
			p.bridge.Acknowledge()
		case bridge.SignalFinished:
			// in sleep mode the last move can be acknowledged away unseen
			if u.Iteration != p.report.LastIteration() {
				p.draw(render.Compose(p.geometry, u.Board, u.Iteration))
				p.report.Iterations = append(p.report.Iterations, u.Iteration)
			}
			p.logger.Debug("presenter draining", "moves", u.Iteration, "frames", p.report.Frames)
			p.state = Draining
		case bridge.SignalClosed:
			p.close()
		}
	}

	for p.state == Draining {
		if p.display.PollClose() {
			p.close()
			break
		}
		p.draw(p.frame)
	}

	p.report.State = p.state
	return p.report
}

func (p *Presenter) await() (bridge.Update, bool) {
	if p.eventTick > 0 {
		return p.bridge.AwaitTimeout(p.eventTick)
	}
	return p.bridge.AwaitMoveOrFinish(), true
}

func (p *Presenter) draw(f render.Frame) {
	p.frame = f
	p.display.Draw(f)
	p.report.Frames++
}

func (p *Presenter) close() {
	p.logger.Debug("presenter closing", "state", p.state, "frames", p.report.Frames)
	p.state = Closed
	p.bridge.Close()
	p.display.Close()
}
