package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/commanderjcc/hotplate/internal/config"
	"github.com/commanderjcc/hotplate/internal/metrics"
	"github.com/commanderjcc/hotplate/internal/plate"
	"github.com/commanderjcc/hotplate/internal/plateio"
	"github.com/commanderjcc/hotplate/internal/relax"
	"github.com/commanderjcc/hotplate/internal/storage"
	"github.com/commanderjcc/hotplate/internal/viz"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	rows         int
	cols         int
	boundaryTemp float64
	epsilon      float64
	maxIters     int
	outFile      string
	sweeps       int
	configFile   string
	preset       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hotplate",
		Short: "steady-state heat diffusion simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hotplate", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "relax a constant-boundary plate to steady state",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "plate rows")
	runCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "plate columns")
	runCmd.Flags().Float64Var(&boundaryTemp, "boundary", config.DefaultBoundaryTemp, "boundary temperature")
	runCmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "convergence threshold")
	runCmd.Flags().IntVar(&maxIters, "max-iters", config.DefaultMaxIterations, "iteration cap")
	runCmd.Flags().StringVar(&outFile, "out", config.DefaultOutput, "export file")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	loadCmd := &cobra.Command{
		Use:   "load [file]",
		Short: "load a plate from a text file and run fixed sweeps",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLoaded,
	}
	loadCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "plate rows")
	loadCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "plate columns")
	loadCmd.Flags().IntVar(&sweeps, "sweeps", config.DefaultSweeps, "number of sweeps")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the relaxation converge in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "plate rows")
	liveCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "plate columns")
	liveCmd.Flags().Float64Var(&boundaryTemp, "boundary", config.DefaultBoundaryTemp, "boundary temperature")
	liveCmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "convergence threshold")
	liveCmd.Flags().IntVar(&maxIters, "max-iters", config.DefaultMaxIterations, "iteration cap")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's convergence history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and delta history to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(runCmd, loadCmd, liveCmd, listCmd, plotCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and flags, with flags
// winning over the file and the file winning over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("rows") {
		cfg.Rows = rows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Cols = cols
	}
	if cmd.Flags().Changed("boundary") {
		cfg.BoundaryTemp = boundaryTemp
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if cmd.Flags().Changed("max-iters") {
		cfg.MaxIterations = maxIters
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = outFile
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	format := plateio.Format{Width: cfg.Format.Width, Precision: cfg.Format.Precision}

	p, err := plate.NewWithBoundary(cfg.Rows, cfg.Cols, cfg.BoundaryTemp)
	if err != nil {
		return err
	}

	fmt.Println("Hotplate simulator")
	fmt.Println()
	fmt.Println("Printing the initial plate values...")
	if err := plateio.Write(os.Stdout, p, format); err != nil {
		return err
	}

	solver := relax.NewSolver()
	solver.AddMetric(metrics.NewCenterTemp())
	solver.AddMetric(metrics.NewPeakInterior())
	solver.AddMetric(metrics.NewMeanInterior())
	solver.AddObserver(relax.ObserverFunc(func(plt *plate.Plate, iteration int, delta float64) {
		if iteration == 1 {
			fmt.Println()
			fmt.Println("Printing plate after one iteration...")
			plateio.Write(os.Stdout, plt, format)
		}
	}))

	relaxCfg := relax.Config{
		Epsilon:       cfg.Epsilon,
		MaxIterations: cfg.MaxIterations,
	}

	result, err := solver.Run(context.Background(), p, relaxCfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Printing final plate...")
	if err := plateio.Write(os.Stdout, result.Plate, format); err != nil {
		return err
	}

	if result.Converged {
		fmt.Printf("\nreached steady state after %d iterations\n", result.Iterations)
	} else {
		fmt.Printf("\niteration cap (%d) hit before steady state\n", result.Iterations)
	}

	fmt.Printf("\nWriting final plate to %q...\n", cfg.Output)
	if err := plateio.WriteFile(cfg.Output, result.Plate, format); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.BoundaryTemp, relaxCfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("\nrun id: %s\n", runID)
	fmt.Println("metrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLoaded(cmd *cobra.Command, args []string) error {
	path := config.DefaultInput
	if len(args) > 0 {
		path = args[0]
	}

	p, err := plateio.ReadFile(path, rows, cols)
	if err != nil {
		return err
	}

	solver := relax.NewSolver()
	result, err := solver.RunSweeps(context.Background(), p, sweeps)
	if err != nil {
		return err
	}

	fmt.Printf("Printing input plate after %d updates...\n", sweeps)
	return plateio.Write(os.Stdout, result.Plate, plateio.DefaultFormat())
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p, err := plate.NewWithBoundary(cfg.Rows, cfg.Cols, cfg.BoundaryTemp)
	if err != nil {
		return err
	}

	m := viz.NewModel(p, relax.Config{
		Epsilon:       cfg.Epsilon,
		MaxIterations: cfg.MaxIterations,
	})

	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tBOUNDARY\tEPSILON\tITERS\tCONVERGED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%.1f\t%.4f\t%d\t%t\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows, run.Cols,
			run.BoundaryTemp,
			run.Epsilon,
			run.Iterations,
			run.Converged,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	deltas, err := st.LoadDeltas(runID)
	if err != nil {
		return err
	}
	if len(deltas) < 2 {
		return fmt.Errorf("not enough data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("size: %dx%d  epsilon: %.4f  iterations: %d\n\n", meta.Rows, meta.Cols, meta.Epsilon, meta.Iterations)

	graph := asciigraph.Plot(deltas,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("max delta per sweep"),
	)
	fmt.Println(graph)

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	deltas, err := st.LoadDeltas(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, deltas)
}
