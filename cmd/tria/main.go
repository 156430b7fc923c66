package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/technolapin/triangle-automata/internal/config"
	"github.com/technolapin/triangle-automata/internal/render"
	"github.com/technolapin/triangle-automata/internal/sim"
	_ "github.com/technolapin/triangle-automata/internal/sims/light"
	_ "github.com/technolapin/triangle-automata/internal/sims/trilife"
	"github.com/technolapin/triangle-automata/internal/tui"
)

var (
	configFile  string
	width       int
	height      int
	generations int
	seed        int64
	tps         int
	parallel    bool
	plot        bool
	quiet       bool
	scale       int
	benchSteps  int
)

func main() {
	root := &cobra.Command{
		Use:   "tria",
		Short: "cellular automata on a triangular mesh",
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [sim]",
		Short: "run a simulation and print the mesh per generation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSim,
	}
	runCmd.Flags().IntVar(&width, "width", 30, "grid width")
	runCmd.Flags().IntVar(&height, "height", 20, "grid height")
	runCmd.Flags().IntVar(&generations, "gens", 30, "generations to run")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	runCmd.Flags().BoolVar(&parallel, "parallel", false, "evolve rows in parallel")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot total light level per generation")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "print only the final mesh")

	liveCmd := &cobra.Command{
		Use:   "live [sim]",
		Short: "watch a simulation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&width, "width", 30, "grid width")
	liveCmd.Flags().IntVar(&height, "height", 20, "grid height")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	liveCmd.Flags().IntVar(&tps, "tps", 10, "simulation steps per second")
	liveCmd.Flags().BoolVar(&parallel, "parallel", false, "evolve rows in parallel")

	simsCmd := &cobra.Command{
		Use:   "sims",
		Short: "list available simulations",
		RunE:  listSims,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [sim]",
		Short: "measure serial vs parallel stepping across grid sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchSteps, "steps", 200, "generations per measurement")
	benchCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")

	guiCmd := newGUICmd()
	guiCmd.Flags().IntVar(&width, "width", 128, "grid width")
	guiCmd.Flags().IntVar(&height, "height", 96, "grid height")
	guiCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	guiCmd.Flags().IntVar(&tps, "tps", 10, "simulation steps per second")
	guiCmd.Flags().IntVar(&scale, "scale", 6, "pixels per cell")

	root.AddCommand(runCmd, liveCmd, simsCmd, benchCmd, guiCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, then the optional config file, then any
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Sim = args[0]
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = width
	}
	if f.Changed("height") {
		cfg.Height = height
	}
	if f.Changed("gens") {
		cfg.Generations = generations
	}
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("tps") {
		cfg.TPS = tps
	}
	if f.Changed("parallel") {
		cfg.Parallel = parallel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildSim(cfg *config.Config) (sim.Sim, error) {
	factory, ok := sim.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", cfg.Sim, sim.Names())
	}
	world := factory(cfg.ToParams())
	world.Reset(cfg.Seed)
	return world, nil
}

func totalLight(cells []uint8) float64 {
	total := 0.0
	for _, v := range cells {
		total += float64(v)
	}
	return total
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	world, err := buildSim(cfg)
	if err != nil {
		return err
	}

	totals := make([]float64, 0, cfg.Generations)
	for g := 0; g < cfg.Generations; g++ {
		if !quiet {
			fmt.Println(render.Mesh(world.Size(), world.Cells()))
		}
		world.Step()
		totals = append(totals, totalLight(world.Cells()))
	}
	fmt.Println(render.Mesh(world.Size(), world.Cells()))

	if plot && len(totals) > 1 {
		graph := asciigraph.Plot(totals,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("total light level per generation"),
		)
		fmt.Println(graph)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	world, err := buildSim(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(world, cfg.Seed, cfg.TPS), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func listSims(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME")
	for _, name := range sim.Names() {
		fmt.Fprintln(w, name)
	}
	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	factory, ok := sim.Sims()[cfg.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q (available: %v)", cfg.Sim, sim.Names())
	}

	fmt.Printf("benchmarking %s (%d steps per cell count)\n\n", cfg.Sim, benchSteps)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tMODE\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range []int{32, 64, 128, 256} {
		for _, mode := range []string{"serial", "parallel"} {
			params := cfg.ToParams()
			params["w"] = strconv.Itoa(n)
			params["h"] = strconv.Itoa(n)
			params["lifetime"] = "0"
			params["parallel"] = strconv.FormatBool(mode == "parallel")

			world := factory(params)
			world.Reset(cfg.Seed)

			start := time.Now()
			for i := 0; i < benchSteps; i++ {
				world.Step()
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%dx%d\t%s\t%d\t%v\t%.0f\n",
				n, n, mode, benchSteps, elapsed,
				float64(benchSteps)/elapsed.Seconds())
		}
	}
	return w.Flush()
}
