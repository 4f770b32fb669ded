// Package layout derives on-screen geometry for a puzzle of n disks.
package layout

import (
	"errors"
	"fmt"

	"github.com/san-kum/hanoisim/internal/hanoi"
)

const (
	DiskHeight   = 20
	MinDiskWidth = 50
	TowerWidth   = 10
	BarHeight    = 10
	BarWidth     = TowerWidth + 45

	// distance between the base bars and the bottom of the window
	baseMargin = 100
	// room kept above the rods for the iteration readout
	headerHeight = 60
)

var ErrDoesNotFit = errors.New("layout: towers do not fit the window")

// Geometry holds the fixed scene measurements. It implements hanoi.Placer.
type Geometry struct {
	Disks        int
	Width        int
	Height       int
	MaxDiskWidth float32
	WidthStep    float32
	TowerSpacing float32
	LeftMargin   float32
	TowerHeight  float32
	BaseY        float32
}

// New computes the geometry for n disks in a width x height window.
func New(n, width, height int) Geometry {
	maxWidth := max(float32(MinDiskWidth), 200-float32(n-1)*3)
	var step float32
	if n > 1 {
		step = (maxWidth - MinDiskWidth) / float32(n-1)
	}
	spacing := 50 + maxWidth
	return Geometry{
		Disks:        n,
		Width:        width,
		Height:       height,
		MaxDiskWidth: maxWidth,
		WidthStep:    step,
		TowerSpacing: spacing,
		LeftMargin:   (float32(width) - 2*spacing) / 2,
		TowerHeight:  float32((n + 1) * DiskHeight),
		BaseY:        float32(height - baseMargin),
	}
}

// Validate reports whether the rods and the widest disk stay on screen.
func (g Geometry) Validate() error {
	if top := g.BaseY - g.TowerHeight; top < headerHeight {
		return fmt.Errorf("%w: rods of %.0fpx need a window taller than %d", ErrDoesNotFit, g.TowerHeight, g.Height)
	}
	if left := g.LeftMargin - g.MaxDiskWidth/2; left < 0 {
		return fmt.Errorf("%w: disks of %.0fpx need a window wider than %d", ErrDoesNotFit, g.MaxDiskWidth, g.Width)
	}
	return nil
}

// TowerX returns the horizontal center of a tower.
func (g Geometry) TowerX(tower int) float32 {
	return g.LeftMargin + g.TowerSpacing*float32(tower)
}

func (g Geometry) DiskSize(rank int) (float32, float32) {
	return g.MaxDiskWidth - float32(rank-1)*g.WidthStep, DiskHeight
}

// DiskColor shades disks from blue toward green as they shrink; channels
// wrap past 255 for large disk counts.
func (g Geometry) DiskColor(rank int) hanoi.Color {
	i := rank - 1
	return hanoi.Color{
		R: uint8(50 * i),
		G: uint8(100 + 30*i),
		B: uint8(200 - 20*i),
		A: 255,
	}
}

func (g Geometry) Place(tower, level int, width float32) (float32, float32) {
	x := g.TowerX(tower) - width/2
	y := g.BaseY - DiskHeight - float32(level*DiskHeight)
	return x, y
}

// Rod returns the rectangle of a tower's vertical rod.
func (g Geometry) Rod(tower int) (x, y, w, h float32) {
	return g.TowerX(tower) - TowerWidth/2, g.BaseY - g.TowerHeight, TowerWidth, g.TowerHeight
}

// Bar returns the rectangle of the base bar under a tower.
func (g Geometry) Bar(tower int) (x, y, w, h float32) {
	return g.TowerX(tower) - BarWidth/2, g.BaseY, BarWidth, BarHeight
}
