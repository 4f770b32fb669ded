package hanoi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type gridPlacer struct{}

func (gridPlacer) DiskSize(rank int) (float32, float32) { return float32(100 - rank*10), 20 }
func (gridPlacer) DiskColor(rank int) Color             { return Color{R: uint8(rank), A: 255} }
func (gridPlacer) Place(tower, level int, width float32) (float32, float32) {
	return float32(tower*200) - width/2, float32(500 - level*20)
}

func TestMoveCount(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 7},
		{7, 127},
		{20, 1048575},
	}
	for _, tt := range tests {
		if got := MoveCount(tt.n); got != tt.want {
			t.Errorf("MoveCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSolveMoveCount(t *testing.T) {
	for n := 1; n <= 12; n++ {
		calls := 0
		Solve(n, 0, 2, 1, func(from, to int) { calls++ })
		if uint64(calls) != MoveCount(n) {
			t.Errorf("n=%d: expected %d transfers, got %d", n, MoveCount(n), calls)
		}
	}
}

func TestSequenceThreeDisks(t *testing.T) {
	want := []Move{{0, 2}, {0, 1}, {2, 1}, {0, 2}, {1, 0}, {1, 2}, {0, 2}}
	got := Sequence(3, 0, 2, 1)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSequenceOneDisk(t *testing.T) {
	got := Sequence(1, 0, 2, 1)
	if diff := cmp.Diff([]Move{{0, 2}}, got); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveIterativeMatchesRecursive(t *testing.T) {
	for n := 1; n <= 10; n++ {
		var got []Move
		SolveIterative(n, 0, 2, 1, func(from, to int) {
			got = append(got, Move{From: from, To: to})
		})
		if diff := cmp.Diff(Sequence(n, 0, 2, 1), got); diff != "" {
			t.Fatalf("n=%d: iterative diverges (-recursive +iterative):\n%s", n, diff)
		}
	}
}

func TestSolveKeepsBoardLegal(t *testing.T) {
	for n := 1; n <= 8; n++ {
		board := NewBoard(n, gridPlacer{})
		step := 0
		Solve(n, 0, 2, 1, func(from, to int) {
			step++
			if _, ok := board.Transfer(from, to); !ok {
				t.Fatalf("n=%d step %d: transfer from empty tower %d", n, step, from)
			}
			if err := board.Check(); err != nil {
				t.Fatalf("n=%d step %d: %v", n, step, err)
			}
		})

		if board.Tower(0).Len() != 0 || board.Tower(1).Len() != 0 {
			t.Errorf("n=%d: source and auxiliary should be empty", n)
		}
		want := make([]int, n)
		for i := range want {
			want[i] = i + 1
		}
		if diff := cmp.Diff(want, board.Snapshot().Ranks(2)); diff != "" {
			t.Errorf("n=%d: final destination (-want +got):\n%s", n, diff)
		}
	}
}

func TestTransferEmptySourceIsNoop(t *testing.T) {
	board := NewBoard(2, gridPlacer{})
	before := board.Snapshot()

	if _, ok := board.Transfer(1, 2); ok {
		t.Error("expected transfer from empty tower to report false")
	}
	if diff := cmp.Diff(before, board.Snapshot()); diff != "" {
		t.Errorf("board changed (-before +after):\n%s", diff)
	}
}

func TestTransferPlacesOnTop(t *testing.T) {
	board := NewBoard(3, gridPlacer{})
	board.Transfer(0, 2)
	board.Transfer(0, 2)

	top, ok := board.Tower(2).Top()
	if !ok {
		t.Fatal("expected a disk on tower 2")
	}
	disks := board.Tower(2).Disks()
	if len(disks) != 2 || disks[0].Rank != 3 || disks[1] != top {
		t.Errorf("unexpected tower 2 contents: %+v", disks)
	}
	wantX, wantY := gridPlacer{}.Place(2, 1, top.Width)
	if top.X != wantX || top.Y != wantY {
		t.Errorf("expected position (%v,%v), got (%v,%v)", wantX, wantY, top.X, top.Y)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	board := NewBoard(3, gridPlacer{})
	snap := board.Snapshot()
	board.Transfer(0, 2)

	if snap.Len(0) != 3 || snap.Len(2) != 0 {
		t.Errorf("snapshot changed after transfer: %v", snap.Towers)
	}
}

func TestCheckDetectsViolations(t *testing.T) {
	disk := func(rank int) Placed { return Placed{Disk: Disk{Rank: rank}} }

	tests := []struct {
		name string
		snap Snapshot
		want error
	}{
		{"legal", Snapshot{Towers: [NumTowers][]Placed{{disk(1), disk(3)}, {disk(2)}, nil}}, nil},
		{"inverted", Snapshot{Towers: [NumTowers][]Placed{{disk(2), disk(1)}, nil, {disk(3)}}}, ErrIllegalStack},
		{"duplicate", Snapshot{Towers: [NumTowers][]Placed{{disk(1)}, {disk(1)}, {disk(3)}}}, ErrDiskSet},
		{"missing", Snapshot{Towers: [NumTowers][]Placed{{disk(1)}, nil, {disk(3)}}}, ErrDiskSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Check(3)
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
