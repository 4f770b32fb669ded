package hanoi

import "fmt"

// NumTowers is fixed by the puzzle.
const NumTowers = 3

type Color struct {
	R, G, B, A uint8
}

// Disk is a ranked visual token. Rank 1 is the largest disk.
type Disk struct {
	Rank   int
	Width  float32
	Height float32
	Color  Color
}

// Placed is a disk with the top-left corner it occupies on screen.
type Placed struct {
	Disk
	X, Y float32
}

// Move is the transfer of the top disk of one tower onto another.
type Move struct {
	From int
	To   int
}

func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

// Placer supplies disk geometry and computes where a disk lands.
type Placer interface {
	// DiskSize returns width and height for a rank in 1..n.
	DiskSize(rank int) (float32, float32)
	DiskColor(rank int) Color
	// Place returns the top-left corner of a disk of the given width at
	// stack level (0 = bottom) on a tower.
	Place(tower, level int, width float32) (float32, float32)
}

// MoveCount returns 2^n - 1, the length of the optimal solution.
func MoveCount(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return 1<<uint(n) - 1
}
