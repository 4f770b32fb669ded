package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/hanoisim/internal/config"
	"github.com/san-kum/hanoisim/internal/generator"
	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/render"
)

func newExportCmd() *cobra.Command {
	var (
		disks int
		after int
	)
	cmd := &cobra.Command{
		Use:   "export [file.svg]",
		Short: "write the board after some moves as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			cfg.DiskCount = disks
			if err := cfg.Validate(); err != nil {
				return err
			}
			frame, err := frameAfter(cfg, after)
			if err != nil {
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := render.WriteSVG(f, frame); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("exported", "file", args[0], "iteration", frame.Iteration)
			return nil
		},
	}
	cmd.Flags().IntVar(&disks, "disks", config.DefaultDiskCount, "number of disks")
	cmd.Flags().IntVar(&after, "after", -1, "moves to apply before drawing (-1 = all)")
	return cmd
}

// frameAfter replays the first moves of the solution on a fresh board.
func frameAfter(cfg *config.Config, moves int) (render.Frame, error) {
	total := hanoi.MoveCount(cfg.DiskCount)
	if moves < 0 {
		moves = int(total)
	}
	if uint64(moves) > total {
		return render.Frame{}, fmt.Errorf("--after %d exceeds the %d moves of %d disks", moves, total, cfg.DiskCount)
	}

	geo := cfg.Geometry()
	board := hanoi.NewBoard(cfg.DiskCount, geo)
	applied := 0
	hanoi.SolveIterative(cfg.DiskCount, generator.SourceTower, generator.DestinationTower, generator.AuxiliaryTower, func(from, to int) {
		if applied < moves {
			board.Transfer(from, to)
			applied++
		}
	})
	return render.Compose(geo, board.Snapshot(), applied), nil
}
