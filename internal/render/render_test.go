package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/layout"
)

func TestComposeIsIdempotent(t *testing.T) {
	geo := layout.New(4, 800, 600)
	board := hanoi.NewBoard(4, geo)
	board.Transfer(0, 1)
	snap := board.Snapshot()

	a := Compose(geo, snap, 1)
	b := Compose(geo, snap, 1)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("frames differ (-first +second):\n%s", diff)
	}
}

func TestComposeOrder(t *testing.T) {
	geo := layout.New(3, 800, 600)
	board := hanoi.NewBoard(3, geo)
	board.Transfer(0, 2)
	f := Compose(geo, board.Snapshot(), 1)

	if len(f.Rects) != 2*hanoi.NumTowers+3 {
		t.Fatalf("expected 9 rects, got %d", len(f.Rects))
	}
	for i := 0; i < 2*hanoi.NumTowers; i++ {
		if f.Rects[i].Kind == KindDisk {
			t.Errorf("rect %d: fixed geometry must come before disks", i)
		}
	}

	var ranks []int
	for _, r := range f.Disks(0) {
		ranks = append(ranks, r.Rank)
	}
	if diff := cmp.Diff([]int{1, 2}, ranks); diff != "" {
		t.Errorf("tower 0 ranks (-want +got):\n%s", diff)
	}
	if d := f.Disks(2); len(d) != 1 || d[0].Rank != 3 {
		t.Errorf("expected the smallest disk on tower 2, got %+v", d)
	}
}

func TestComposeFixedGeometryIgnoresBoard(t *testing.T) {
	geo := layout.New(3, 800, 600)
	board := hanoi.NewBoard(3, geo)
	before := Compose(geo, board.Snapshot(), 0)
	board.Transfer(0, 1)
	after := Compose(geo, board.Snapshot(), 1)

	if diff := cmp.Diff(before.Rects[:6], after.Rects[:6]); diff != "" {
		t.Errorf("rods and bars moved (-before +after):\n%s", diff)
	}
}

func TestComposeReadout(t *testing.T) {
	geo := layout.New(3, 800, 600)
	f := Compose(geo, hanoi.NewBoard(3, geo).Snapshot(), 42)

	if len(f.Texts) != 1 {
		t.Fatalf("expected one text, got %d", len(f.Texts))
	}
	txt := f.Texts[0]
	if txt.Body != "Iteration: 42" {
		t.Errorf("unexpected readout %q", txt.Body)
	}
	if txt.X != 350 || txt.Y != 20 || txt.Size != TextSize {
		t.Errorf("unexpected placement %+v", txt)
	}
}

func TestSVG(t *testing.T) {
	geo := layout.New(2, 800, 600)
	f := Compose(geo, hanoi.NewBoard(2, geo).Snapshot(), 0)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, f); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("expected a complete svg document")
	}
	if got := strings.Count(out, `class="disk"`); got != 2 {
		t.Errorf("expected 2 disks, got %d", got)
	}
	if got := strings.Count(out, `class="rod"`); got != 3 {
		t.Errorf("expected 3 rods, got %d", got)
	}
	if !strings.Contains(out, "Iteration: 0") {
		t.Error("missing readout")
	}
	if !strings.Contains(out, `fill="#0064c8"`) {
		t.Error("missing color of the largest disk")
	}
}
