// Package hanoi provides the Towers of Hanoi data model and move generators.
//
// The package defines the puzzle state and the canonical solution:
//
//   - [Disk]: immutable ranked token, rank 1 is the largest
//   - [Tower]: stack of placed disks, push/pop at the top only
//   - [Board]: the three towers plus a [Placer] for on-screen positions
//   - [Solve]: recursive generator of the optimal move order
//
// # Example
//
//	board := hanoi.NewBoard(3, placer)
//	hanoi.Solve(3, 0, 2, 1, func(from, to int) {
//		board.Transfer(from, to)
//	})
//
// # Thread Safety
//
// Board is NOT thread-safe. A single goroutine mutates it; other goroutines
// read [Snapshot] values, which never change once taken.
package hanoi
