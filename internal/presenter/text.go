package presenter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/render"
)

// TextDisplay is a headless Display that logs one line per new frame. It
// asks to close once the final frame has been drawn linger times, which
// stands in for a viewer dismissing the window.
type TextDisplay struct {
	logger   *log.Logger
	linger   int
	interval time.Duration

	last    int
	repeats int
	closed  bool
}

func NewTextDisplay(logger *log.Logger, linger int) *TextDisplay {
	return &TextDisplay{logger: logger, linger: linger, last: -1}
}

// SetInterval paces repeated draws of an unchanged frame.
func (d *TextDisplay) SetInterval(interval time.Duration) { d.interval = interval }

func (d *TextDisplay) PollClose() bool {
	return d.closed || (d.linger > 0 && d.repeats >= d.linger)
}

func (d *TextDisplay) Draw(f render.Frame) {
	if f.Iteration == d.last {
		d.repeats++
		if d.interval > 0 {
			time.Sleep(d.interval)
		}
		return
	}
	d.last = f.Iteration
	d.repeats = 0
	d.logger.Info(fmt.Sprintf("Iteration: %d", f.Iteration), "towers", Describe(f))
}

func (d *TextDisplay) Close() { d.closed = true }

// Describe lists the disk ranks of each tower, e.g. "[1 2] [] [3]".
func Describe(f render.Frame) string {
	parts := make([]string, hanoi.NumTowers)
	for t := range parts {
		ranks := make([]string, 0)
		for _, r := range f.Disks(t) {
			ranks = append(ranks, fmt.Sprint(r.Rank))
		}
		parts[t] = "[" + strings.Join(ranks, " ") + "]"
	}
	return strings.Join(parts, " ")
}
