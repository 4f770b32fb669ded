// Package generator drives the recursive solver against a shared board and
// publishes each committed move through the bridge.
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/hanoisim/internal/bridge"
	"github.com/san-kum/hanoisim/internal/hanoi"
)

// Source, auxiliary and destination towers of the top-level solve.
const (
	SourceTower      = 0
	AuxiliaryTower   = 1
	DestinationTower = 2
)

// Observer is called on the generator goroutine after each committed move.
type Observer interface {
	OnMove(m hanoi.Move, iteration int, board *hanoi.Board)
}

type ObserverFunc func(m hanoi.Move, iteration int, board *hanoi.Board)

func (f ObserverFunc) OnMove(m hanoi.Move, iteration int, board *hanoi.Board) {
	f(m, iteration, board)
}

type Generator struct {
	board     *hanoi.Board
	bridge    *bridge.Bridge
	delay     time.Duration
	logger    *log.Logger
	observers []Observer
}

func New(board *hanoi.Board, b *bridge.Bridge, delay time.Duration) *Generator {
	return &Generator{
		board:  board,
		bridge: b,
		delay:  delay,
		logger: log.Default(),
	}
}

func (g *Generator) SetLogger(l *log.Logger) { g.logger = l }
func (g *Generator) AddObserver(o Observer)  { g.observers = append(g.observers, o) }
func (g *Generator) Board() *hanoi.Board     { return g.board }

// Run moves every disk from the source to the destination tower, then
// latches completion on the bridge. It returns early only if ctx ends
// during a delay; completion is still published so the presenter can
// leave its wait.
func (g *Generator) Run(ctx context.Context) error {
	n := g.board.DiskCount()
	g.logger.Debug("generator started", "disks", n, "moves", hanoi.MoveCount(n), "delay", g.delay, "handoff", g.bridge.Mode())
	start := time.Now()
	defer g.bridge.PublishFinished()

	var runErr error
	hanoi.Solve(n, SourceTower, DestinationTower, AuxiliaryTower, func(from, to int) {
		if runErr != nil {
			return
		}
		runErr = g.transfer(ctx, from, to)
	})
	if runErr != nil {
		return fmt.Errorf("generator: stopped after %d moves: %w", g.bridge.Iteration(), runErr)
	}

	g.logger.Debug("generator finished", "moves", g.bridge.Iteration(), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func (g *Generator) transfer(ctx context.Context, from, to int) error {
	m, ok := g.board.Transfer(from, to)
	if !ok {
		return nil
	}
	iteration := g.bridge.PublishMove(m, g.board.Snapshot())
	for _, o := range g.observers {
		o.OnMove(m, iteration, g.board)
	}

	// nobody is watching once the presenter has closed
	if g.delay <= 0 || g.bridge.Closed() {
		return nil
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
