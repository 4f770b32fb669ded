package render

import (
	"fmt"

	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/layout"
)

type Kind int

const (
	KindRod Kind = iota
	KindBar
	KindDisk
)

func (k Kind) String() string {
	switch k {
	case KindRod:
		return "rod"
	case KindBar:
		return "bar"
	case KindDisk:
		return "disk"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	White = hanoi.Color{R: 255, G: 255, B: 255, A: 255}
	Black = hanoi.Color{A: 255}
)

const TextSize = 24

// Rect is a filled rectangle. Rank is zero for rods and bars.
type Rect struct {
	Kind  Kind
	Rank  int
	Tower int
	X, Y  float32
	W, H  float32
	Color hanoi.Color
}

type Text struct {
	X, Y  float32
	Size  int
	Body  string
	Color hanoi.Color
}

type Frame struct {
	Width      int
	Height     int
	Iteration  int
	Background hanoi.Color
	Rects      []Rect
	Texts      []Text
}

// Compose draws rods and base bars, then every disk bottom to top tower by
// tower, then the iteration readout.
func Compose(geo layout.Geometry, snap hanoi.Snapshot, iteration int) Frame {
	f := Frame{
		Width:      geo.Width,
		Height:     geo.Height,
		Iteration:  iteration,
		Background: White,
		Rects:      make([]Rect, 0, 2*hanoi.NumTowers+geo.Disks),
	}

	for t := 0; t < hanoi.NumTowers; t++ {
		x, y, w, h := geo.Rod(t)
		f.Rects = append(f.Rects, Rect{Kind: KindRod, Tower: t, X: x, Y: y, W: w, H: h, Color: Black})
		x, y, w, h = geo.Bar(t)
		f.Rects = append(f.Rects, Rect{Kind: KindBar, Tower: t, X: x, Y: y, W: w, H: h, Color: Black})
	}

	for t, tower := range snap.Towers {
		for _, d := range tower {
			f.Rects = append(f.Rects, Rect{
				Kind:  KindDisk,
				Rank:  d.Rank,
				Tower: t,
				X:     d.X,
				Y:     d.Y,
				W:     d.Width,
				H:     d.Height,
				Color: d.Color,
			})
		}
	}

	f.Texts = []Text{{
		X:     float32(geo.Width)/2 - 50,
		Y:     20,
		Size:  TextSize,
		Body:  fmt.Sprintf("Iteration: %d", iteration),
		Color: Black,
	}}
	return f
}

// Disks returns the disk rectangles of one tower, bottom to top.
func (f Frame) Disks(tower int) []Rect {
	var out []Rect
	for _, r := range f.Rects {
		if r.Kind == KindDisk && r.Tower == tower {
			out = append(out, r)
		}
	}
	return out
}
