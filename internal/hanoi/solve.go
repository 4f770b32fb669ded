package hanoi

// Solve emits the optimal move order for n disks from src to dst using aux,
// calling transfer once per move (2^n - 1 calls). Each call observes the
// board as left by the previous one.
func Solve(n, src, dst, aux int, transfer func(from, to int)) {
	if n < 1 {
		return
	}
	if n == 1 {
		transfer(src, dst)
		return
	}
	Solve(n-1, src, aux, dst, transfer)
	transfer(src, dst)
	Solve(n-1, aux, dst, src, transfer)
}

type frame struct {
	n             int
	src, dst, aux int
	// expanded frames emit their middle move when popped again
	expanded bool
}

// SolveIterative produces the same sequence as Solve with an explicit work
// stack, so depth does not grow the goroutine stack for large n.
func SolveIterative(n, src, dst, aux int, transfer func(from, to int)) {
	if n < 1 {
		return
	}
	stack := make([]frame, 0, n*2)
	stack = append(stack, frame{n: n, src: src, dst: dst, aux: aux})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.n == 1 || f.expanded {
			transfer(f.src, f.dst)
			if f.expanded {
				stack = append(stack, frame{n: f.n - 1, src: f.aux, dst: f.dst, aux: f.src})
			}
			continue
		}
		f.expanded = true
		stack = append(stack, f)
		stack = append(stack, frame{n: f.n - 1, src: f.src, dst: f.aux, aux: f.dst})
	}
}

// Sequence collects the optimal move order for n disks.
func Sequence(n, src, dst, aux int) []Move {
	moves := make([]Move, 0, MoveCount(n))
	Solve(n, src, dst, aux, func(from, to int) {
		moves = append(moves, Move{From: from, To: to})
	})
	return moves
}
