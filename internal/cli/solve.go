package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/hanoisim/internal/config"
	"github.com/san-kum/hanoisim/internal/generator"
	"github.com/san-kum/hanoisim/internal/hanoi"
)

// listLimit caps how many moves solve prints unless --all is given.
const listLimit = 1023

func newSolveCmd() *cobra.Command {
	var (
		disks   int
		all     bool
		noChart bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "print the optimal move sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if disks < 1 || disks > config.MaxDiskCount {
				return fmt.Errorf("%w: %d (want 1..%d)", config.ErrInvalidDiskCount, disks, config.MaxDiskCount)
			}
			logger := loggerFromContext(cmd.Context())
			start := time.Now()
			occupancy := solve(cmd.OutOrStdout(), disks, all)
			elapsed(logger, start, "solved", "disks", disks, "moves", hanoi.MoveCount(disks))
			if !noChart {
				fmt.Fprintln(cmd.OutOrStdout(), occupancyChart(occupancy))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&disks, "disks", config.DefaultDiskCount, "number of disks")
	cmd.Flags().BoolVar(&all, "all", false, fmt.Sprintf("print every move even past %d", listLimit))
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "skip the tower occupancy chart")
	return cmd
}

// solve writes the move list and returns the disk count of each tower after
// every move, starting with the initial state.
func solve(w io.Writer, n int, all bool) [hanoi.NumTowers][]float64 {
	total := hanoi.MoveCount(n)
	counts := [hanoi.NumTowers]int{n, 0, 0}
	var occupancy [hanoi.NumTowers][]float64
	record := func() {
		for t := range counts {
			occupancy[t] = append(occupancy[t], float64(counts[t]))
		}
	}
	record()

	fmt.Fprintf(w, "%s %s disks, %s moves\n",
		StyleTitle.Render("towers of hanoi:"), StyleNumber.Render(fmt.Sprint(n)), StyleNumber.Render(fmt.Sprint(total)))

	var i uint64
	hanoi.SolveIterative(n, generator.SourceTower, generator.DestinationTower, generator.AuxiliaryTower, func(from, to int) {
		i++
		counts[from]--
		counts[to]++
		record()
		if all || i <= listLimit {
			fmt.Fprintf(w, "%s %s\n", StyleDim.Render(fmt.Sprintf("%7d", i)), StyleValue.Render(hanoi.Move{From: from, To: to}.String()))
		}
	})
	if !all && total > listLimit {
		fmt.Fprintf(w, "%s\n", StyleDim.Render(fmt.Sprintf("... %d more moves (use --all)", total-listLimit)))
	}
	fmt.Fprintln(w, StyleSuccess.Render(fmt.Sprintf("done: all %d disks on tower %d", n, generator.DestinationTower)))
	return occupancy
}

func occupancyChart(occupancy [hanoi.NumTowers][]float64) string {
	return asciigraph.PlotMany(occupancy[:],
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Red),
		asciigraph.Caption("disks per tower (blue=0 green=1 red=2)"),
	)
}
