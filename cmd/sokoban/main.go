// Command sokoban decides whether one encoded Sokoban level is solvable.
//
//	sokoban 0706111100102100100111154001100301100111111100
//
// prints "<level>::<elapsed>" when solvable, "<level>::notsolved" otherwise.
package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hassek/SokobanSolver/solver"
)

var (
	costLimit int
	verbose   bool
)

func main() {
	root := &cobra.Command{
		Use:   "sokoban <level>",
		Short: "Decide whether an encoded Sokoban level is solvable",
		Long: `Solve a Sokoban level given as HHWW followed by height*width digits
(0 empty, 1 wall, 2 goal, 3 box, 4 player, 5 box-on-goal, 6 player-on-goal),
read row-major.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().IntVar(&costLimit, "cost-limit", 0, "prune branches whose cost plus heuristic exceeds this bound (0 = unbounded)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	level := args[0]

	var opts []solver.Option
	if costLimit > 0 {
		opts = append(opts, solver.WithCostLimit(costLimit))
	}
	s, err := solver.New(level, opts...)
	if err != nil {
		return err
	}
	log.Infof("%s", s.Board())

	start := time.Now()
	solved := s.Solve()
	elapsed := time.Since(start)
	log.Infof("solved=%v steps=%d elapsed=%s", solved, s.Steps, elapsed)

	if solved {
		fmt.Printf("%s::%s\n", level, elapsed)
	} else {
		fmt.Printf("%s::notsolved\n", level)
	}
	return nil
}
