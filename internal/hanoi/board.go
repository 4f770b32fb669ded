package hanoi

// Tower is a stack of disks. The last element is the top.
type Tower struct {
	disks []Placed
}

func (t *Tower) Len() int { return len(t.disks) }

// Top returns the top disk; ok is false on an empty tower.
func (t *Tower) Top() (Placed, bool) {
	if len(t.disks) == 0 {
		return Placed{}, false
	}
	return t.disks[len(t.disks)-1], true
}

// Disks returns the disks bottom to top. The slice must not be modified.
func (t *Tower) Disks() []Placed { return t.disks }

func (t *Tower) push(d Placed) { t.disks = append(t.disks, d) }

func (t *Tower) pop() Placed {
	d := t.disks[len(t.disks)-1]
	t.disks = t.disks[:len(t.disks)-1]
	return d
}

// Board holds the three towers of a puzzle with n disks.
type Board struct {
	n      int
	towers [NumTowers]Tower
	placer Placer
}

// NewBoard stacks n disks on tower 0, largest at the bottom.
func NewBoard(n int, placer Placer) *Board {
	b := &Board{n: n, placer: placer}
	b.towers[0].disks = make([]Placed, 0, n)
	for i := 0; i < n; i++ {
		rank := i + 1
		w, h := placer.DiskSize(rank)
		x, y := placer.Place(0, i, w)
		b.towers[0].push(Placed{
			Disk: Disk{Rank: rank, Width: w, Height: h, Color: placer.DiskColor(rank)},
			X:    x,
			Y:    y,
		})
	}
	return b
}

func (b *Board) DiskCount() int { return b.n }

// Tower returns the tower with the given id (0, 1 or 2).
func (b *Board) Tower(id int) *Tower { return &b.towers[id] }

// Transfer moves the top disk of from onto to. The landing position is
// derived from the destination's current height so disks never overlap.
// An empty source is a no-op and reports false.
func (b *Board) Transfer(from, to int) (Move, bool) {
	src := &b.towers[from]
	if src.Len() == 0 {
		return Move{}, false
	}
	d := src.pop()
	dst := &b.towers[to]
	d.X, d.Y = b.placer.Place(to, dst.Len(), d.Width)
	dst.push(d)
	return Move{From: from, To: to}, true
}

// Snapshot copies the current tower contents.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for i := range b.towers {
		s.Towers[i] = append([]Placed(nil), b.towers[i].disks...)
	}
	return s
}

// Check verifies that every tower is strictly descending bottom to top and
// that each rank 1..n appears exactly once across the board.
func (b *Board) Check() error {
	return b.Snapshot().Check(b.n)
}

// Snapshot is an immutable copy of the three towers.
type Snapshot struct {
	Towers [NumTowers][]Placed
}

// Len returns the number of disks on a tower.
func (s Snapshot) Len(tower int) int { return len(s.Towers[tower]) }

// Ranks returns the disk ranks of a tower bottom to top.
func (s Snapshot) Ranks(tower int) []int {
	ranks := make([]int, len(s.Towers[tower]))
	for i, d := range s.Towers[tower] {
		ranks[i] = d.Rank
	}
	return ranks
}

func (s Snapshot) Check(n int) error {
	seen := make([]bool, n+1)
	for t, tower := range s.Towers {
		prev := 0
		for _, d := range tower {
			if d.Rank < 1 || d.Rank > n || seen[d.Rank] {
				return &InvariantError{Tower: t, Rank: d.Rank, Wrapped: ErrDiskSet}
			}
			seen[d.Rank] = true
			// ranks grow as disks shrink
			if d.Rank <= prev {
				return &InvariantError{Tower: t, Rank: d.Rank, Wrapped: ErrIllegalStack}
			}
			prev = d.Rank
		}
	}
	for rank := 1; rank <= n; rank++ {
		if !seen[rank] {
			return &InvariantError{Tower: -1, Rank: rank, Wrapped: ErrDiskSet}
		}
	}
	return nil
}
