package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/shipwake/internal/automation"
	"github.com/san-kum/shipwake/internal/config"
	"github.com/san-kum/shipwake/internal/experiment"
	"github.com/san-kum/shipwake/internal/gui"
	"github.com/san-kum/shipwake/internal/metrics"
	"github.com/san-kum/shipwake/internal/optim"
	"github.com/san-kum/shipwake/internal/sim"
	"github.com/san-kum/shipwake/internal/viz"
)

var (
	configFile string
	preset     string
	dt         float64
	duration   float64
	seed       int64
	scriptFile string
	csvOut     bool
	runs       int
	// sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	// tune
	tuneGrid     []string
	tuneMetric   string
	tuneMaximize bool
	// bench
	benchCounts []int
	benchTicks  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shipwake",
		Short: "water particles pushed around by a ship",
		RunE: func(cmd *cobra.Command, args []string) error {
			if preset == "" && configFile == "" {
				return viz.RunInteractive()
			}
			exp, err := loadExperiment(cmd)
			if err != nil {
				return err
			}
			return viz.Run(exp)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := loadExperiment(cmd)
			if err != nil {
				return err
			}
			return viz.Run(exp)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := loadExperiment(cmd)
			if err != nil {
				return err
			}
			return gui.Run(exp)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print metrics",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 keeps the config seed)")
	runCmd.Flags().StringVar(&scriptFile, "script", "", "scenario file to play (yaml)")
	runCmd.Flags().BoolVar(&csvOut, "csv", false, "write the per-tick trace to stdout as CSV")
	runCmd.Flags().IntVar(&runs, "runs", 1, "number of seeded runs to average")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep a config parameter",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "repel_strength", fmt.Sprintf("parameter %v", automation.SweepParams()))
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 50, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 500, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")
	sweepCmd.Flags().Float64Var(&duration, "time", 2, "duration per step")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search parameters for the best metric",
		RunE:  runTune,
	}
	tuneCmd.Flags().StringArrayVar(&tuneGrid, "grid", nil, "name=v1,v2,... (repeatable)")
	tuneCmd.Flags().StringVar(&tuneMetric, "metric", "saturation", fmt.Sprintf("metric %v", metrics.Names()))
	tuneCmd.Flags().BoolVar(&tuneMaximize, "maximize", false, "maximize instead of minimize")
	tuneCmd.Flags().Float64Var(&duration, "time", 2, "duration per run")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure ticks per second",
		RunE:  benchTicksPerSec,
	}
	benchCmd.Flags().IntSliceVar(&benchCounts, "particles", []int{100, 250, 500, 1000}, "particle counts")
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 120, "ticks per count")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, sweepCmd, tuneCmd, benchCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves --config over --preset over the defaults.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	if preset != "" {
		return config.GetPreset(preset)
	}
	return config.DefaultConfig(), nil
}

func loadExperiment(cmd *cobra.Command) (*experiment.Experiment, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	return experiment.New(cfg)
}

// applyFlags lets explicit run flags override the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if f := cmd.Flags().Lookup("dt"); f != nil && f.Changed {
		cfg.Dt = dt
	}
	if f := cmd.Flags().Lookup("time"); f != nil && f.Changed {
		cfg.Duration = duration
	}
	if seed != 0 {
		cfg.Seed = seed
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var scenario *automation.Scenario
	if scriptFile != "" {
		if scenario, err = automation.LoadScenario(scriptFile); err != nil {
			return err
		}
		if configFile == "" && preset == "" && scenario.Preset != "" {
			if cfg, err = config.GetPreset(scenario.Preset); err != nil {
				return err
			}
		}
		cfg.Viewport.Width, cfg.Viewport.Height = scenario.Viewport.Width, scenario.Viewport.Height
		cfg.Viewport.Scale = 1
	}
	applyFlags(cmd, cfg)

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}

	if runs > 1 {
		return runEnsemble(ctx, exp, scenario)
	}

	trace := metrics.NewTrace(0)
	exp.GetSimulator().AddObserver(trace)

	if !csvOut {
		fmt.Printf("running %d particles for %.2fs...\n", cfg.Particles.Count, cfg.Duration)
	}
	start := time.Now()

	var result *sim.Result
	if scenario != nil {
		result, err = automation.Run(ctx, exp.GetSimulator(), scenario)
	} else {
		result, err = exp.Run(ctx, nil)
	}
	if err != nil && result == nil {
		return err
	}

	if csvOut {
		if werr := writeTrace(trace); werr != nil {
			return werr
		}
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	printResult(result)
	plotTrace(trace)
	return err
}

func runEnsemble(ctx context.Context, exp *experiment.Experiment, scenario *automation.Scenario) error {
	fmt.Printf("running %d seeded runs...\n", runs)
	start := time.Now()
	var results []*sim.Result
	var err error
	if scenario != nil {
		results, err = automation.RunEnsemble(ctx, exp, scenario, runs)
	} else {
		results, err = exp.Ensemble(ctx, runs, nil)
	}
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Println("\nmean metrics:")
	printMetrics(sim.Mean(results))
	return nil
}

func printResult(r *sim.Result) {
	fmt.Printf("ticks: %d\n", r.Ticks)
	fmt.Printf("time: %.3fs\n", r.Time)
	fmt.Printf("particles: %d\n", r.Particles)
	for _, e := range r.Errors {
		fmt.Printf("error: %v\n", e)
	}
	fmt.Println("\nmetrics:")
	printMetrics(r.Metrics)
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%.6f\n", name, m[name])
	}
	w.Flush()
}

func plotTrace(trace *metrics.Trace) {
	if trace.Len() < 2 {
		return
	}
	fmt.Println()
	for _, name := range trace.Names() {
		data := trace.Values(name)
		if len(data) > 400 {
			data = downsample(data, 400)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
}

func downsample(data []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = data[i*len(data)/n]
	}
	return out
}

func writeTrace(trace *metrics.Trace) error {
	w := csv.NewWriter(os.Stdout)
	names := trace.Names()
	if err := w.Write(append([]string{"time"}, names...)); err != nil {
		return err
	}

	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i] = trace.Values(name)
	}
	for row, t := range trace.Times() {
		rec := make([]string, 0, len(names)+1)
		rec = append(rec, strconv.FormatFloat(t, 'f', 6, 64))
		for _, col := range cols {
			rec = append(rec, strconv.FormatFloat(col[row], 'f', 6, 64))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func runSweep(cmd *cobra.Command, args []string) error {
	base, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, base)

	results, err := automation.RunSweep(context.Background(), &automation.ParameterSweep{
		Base:      base,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
		Progress:  os.Stderr,
	})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	names := make([]string, 0, len(results[0].Metrics))
	for name := range results[0].Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s", sweepParam)
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w, "\tERRORS")
	for _, r := range results {
		fmt.Fprintf(w, "%.4f", r.ParamValue)
		for _, name := range names {
			fmt.Fprintf(w, "\t%.4f", r.Metrics[name])
		}
		fmt.Fprintf(w, "\t%d\n", r.Errors)
	}
	return w.Flush()
}

func runTune(cmd *cobra.Command, args []string) error {
	if len(tuneGrid) == 0 {
		return fmt.Errorf("at least one --grid is required")
	}
	names := make([]string, 0, len(tuneGrid))
	ranges := make([][]float64, 0, len(tuneGrid))
	for _, entry := range tuneGrid {
		name, list, ok := strings.Cut(entry, "=")
		if !ok {
			return fmt.Errorf("invalid grid %q, want name=v1,v2", entry)
		}
		var vals []float64
		for _, field := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return fmt.Errorf("grid %s: %w", name, err)
			}
			vals = append(vals, v)
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}

	base, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, base)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := optim.NewGridSearch(names, ranges)
	g.Maximize = tuneMaximize
	best, err := g.Search(ctx, base, tuneMetric)
	if err != nil {
		return err
	}

	fmt.Printf("%d runs, best %s = %.6f\n", best.Runs, tuneMetric, best.Value)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%.4f\n", name, best.Params[name])
	}
	return w.Flush()
}

func benchTicksPerSec(cmd *cobra.Command, args []string) error {
	base, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %d ticks per count\n\n", benchTicks)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tTICKS\tTIME\tTICKS/SEC")

	for _, n := range benchCounts {
		cfg := *base
		cfg.Particles.Count = n
		cfg.Duration = float64(benchTicks) * cfg.Dt

		exp, err := experiment.New(&cfg)
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := exp.Run(context.Background(), nil)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		tps := float64(result.Ticks) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n, result.Ticks, elapsed.Round(time.Microsecond), tps)
	}

	return w.Flush()
}
