package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/hanoisim/internal/render"
)

// Terminal implements presenter.Display on top of a Bubble Tea program.
// The program owns the terminal on its own goroutines; frames are handed
// over with Program.Send.
type Terminal struct {
	program  *tea.Program
	interval time.Duration
	done     chan struct{}
	err      error
	last     time.Time
}

// NewTerminal starts the program. fps bounds how often Draw returns.
func NewTerminal(title string, fps int, opts ...tea.ProgramOption) *Terminal {
	if fps <= 0 {
		fps = 30
	}
	t := &Terminal{
		program:  tea.NewProgram(NewModel(title), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...),
		interval: time.Second / time.Duration(fps),
		done:     make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		_, t.err = t.program.Run()
	}()
	return t
}

func (t *Terminal) PollClose() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Draw sends f to the program and then waits out the rest of the frame
// interval, so redrawing a held frame does not spin.
func (t *Terminal) Draw(f render.Frame) {
	t.program.Send(FrameMsg(f))

	wait := t.interval - time.Since(t.last)
	if wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-t.done:
		case <-timer.C:
		}
		timer.Stop()
	}
	t.last = time.Now()
}

// Close stops the program and waits until the terminal is restored.
func (t *Terminal) Close() {
	t.program.Quit()
	<-t.done
}

// Err returns the program's exit error once it has stopped.
func (t *Terminal) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}
