package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/yatoub/tych/internal/compare"
	"github.com/yatoub/tych/internal/config"
	"github.com/yatoub/tych/internal/pendulum"
	"github.com/yatoub/tych/internal/rng"
	"github.com/yatoub/tych/internal/stats"
	"github.com/yatoub/tych/internal/store"
	"github.com/yatoub/tych/internal/viz"
)

var (
	dataDir    string
	n          int
	pendulums  int
	noiseLevel float64
	configFile string
	format     string
	save       bool
	plotPath   string
	jsonOut    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tych",
		Short: "pseudo-random numbers from chaotic double pendulums",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tych", "data directory")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a sequence and print diagnostics",
		RunE:  runGenerate,
	}
	generateCmd.Flags().IntVar(&n, "n", rng.DefaultN, "number of values")
	generateCmd.Flags().IntVar(&pendulums, "pendulums", rng.DefaultPendulums, "number of pendulums")
	generateCmd.Flags().Float64Var(&noiseLevel, "noise", rng.DefaultNoise, "gaussian noise level")
	generateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	generateCmd.Flags().StringVar(&format, "format", "", "emit values to stdout (csv|json)")
	generateCmd.Flags().BoolVar(&save, "save", false, "persist the run to the data directory")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare the generator against the OS entropy source",
		RunE:  runCompare,
	}
	compareCmd.Flags().IntVar(&n, "n", rng.DefaultN, "sample size")
	compareCmd.Flags().IntVar(&pendulums, "pendulums", rng.DefaultPendulums, "number of pendulums")
	compareCmd.Flags().Float64Var(&noiseLevel, "noise", rng.DefaultNoise, "gaussian noise level")
	compareCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	compareCmd.Flags().StringVar(&plotPath, "plot", "", "write comparison figure to this path")
	compareCmd.Flags().BoolVar(&jsonOut, "json", false, "print the result record as json")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the chaotic signal and output distribution live",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&pendulums, "pendulums", rng.DefaultPendulums, "number of pendulums")
	liveCmd.Flags().Float64Var(&noiseLevel, "noise", rng.DefaultNoise, "gaussian noise level")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the distribution of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	rootCmd.AddCommand(generateCmd, compareCmd, liveCmd, runsCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyConfig loads the config file if given; explicit flags win over it.
func applyConfig(cmd *cobra.Command) error {
	if configFile == "" {
		return nil
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cmd.Flags().Changed("n") {
		n = cfg.N
	}
	if !cmd.Flags().Changed("pendulums") {
		pendulums = cfg.Pendulums
	}
	if !cmd.Flags().Changed("noise") {
		noiseLevel = cfg.NoiseLevel
	}
	if cmd.Flags().Lookup("plot") != nil && !cmd.Flags().Changed("plot") {
		plotPath = cfg.PlotPath
	}
	if !cmd.Root().PersistentFlags().Changed("data") {
		dataDir = cfg.DataDir
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}
	if pendulums < 0 {
		return fmt.Errorf("pendulums must be >= 0, got %d", pendulums)
	}
	if noiseLevel < 0 {
		return fmt.Errorf("noise must be >= 0, got %f", noiseLevel)
	}

	gen := rng.New(pendulums, noiseLevel)
	values := gen.Generate(n)

	if format != "" {
		return emitValues(values, format)
	}

	fmt.Println("parameters:")
	fmt.Printf("  values:    %d\n", n)
	fmt.Printf("  pendulums: %d\n", pendulums)
	fmt.Printf("  noise:     %g\n", noiseLevel)
	fmt.Printf("  dt:        %g\n", pendulum.Dt)
	fmt.Println()

	head := values
	if len(head) > 10 {
		head = head[:10]
	}
	fmt.Printf("sample head: %.6f\n\n", head)

	sum := stats.Summarize(values)
	fmt.Printf("mean: %.6f  std: %.6f  min: %.6f  max: %.6f  resets: %d\n\n",
		sum.Mean, sum.Std, sum.Min, sum.Max, gen.Resets())

	printHistogram(values)

	// Same coarse quality gates the generator was tuned against.
	uniform := math.Abs(sum.Mean-0.5) < 0.1
	variance := sum.Std > 0.05 && sum.Std < 0.4
	fmt.Printf("\nuniformity (mean ~ 0.5): %v\n", uniform)
	fmt.Printf("variance (0.05 < std < 0.4): %v\n", variance)

	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(n, pendulums, noiseLevel, gen.Resets(), values)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func emitValues(values []float64, format string) error {
	switch format {
	case "csv":
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"index", "value"}); err != nil {
			return err
		}
		for i, v := range values {
			if err := w.Write([]string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 17, 64)}); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(values)
	default:
		return fmt.Errorf("unknown format: %s (want csv or json)", format)
	}
}

func printHistogram(values []float64) {
	counts := stats.Histogram(values, 10, 0, 1)
	if counts == nil {
		return
	}

	total := len(values)
	for i, c := range counts {
		pct := 0.0
		if total > 0 {
			pct = float64(c) / float64(total) * 100
		}
		fmt.Printf("[%.1f-%.1f]: %5d (%.1f%%)\n", float64(i)/10, float64(i+1)/10, c, pct)
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}
	if pendulums < 0 {
		return fmt.Errorf("pendulums must be >= 0, got %d", pendulums)
	}
	if noiseLevel < 0 {
		return fmt.Errorf("noise must be >= 0, got %f", noiseLevel)
	}

	res := compare.Run(compare.Options{
		N:          n,
		Pendulums:  pendulums,
		NoiseLevel: noiseLevel,
		PlotPath:   plotPath,
	})

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ks_statistic\t%.6f\n", res.KSStatistic)
	fmt.Fprintf(w, "ks_p_value\t%.6f\n", res.KSPValue)
	fmt.Fprintf(w, "pendulum_mean\t%.6f\n", res.PendulumMean)
	fmt.Fprintf(w, "pendulum_std\t%.6f\n", res.PendulumStd)
	fmt.Fprintf(w, "urandom_mean\t%.6f\n", res.URandomMean)
	fmt.Fprintf(w, "urandom_std\t%.6f\n", res.URandomStd)
	fmt.Fprintf(w, "pendulum_normalized_mean\t%.6f\n", res.PendulumNormalizedMean)
	fmt.Fprintf(w, "pendulum_normalized_std\t%.6f\n", res.PendulumNormalizedStd)
	fmt.Fprintf(w, "urandom_normalized_mean\t%.6f\n", res.URandomNormalizedMean)
	fmt.Fprintf(w, "urandom_normalized_std\t%.6f\n", res.URandomNormalizedStd)
	if err := w.Flush(); err != nil {
		return err
	}

	if res.KSPValue < 0.05 {
		fmt.Println("\ndistributions likely differ (p < 0.05)")
	} else {
		fmt.Println("\nno significant difference detected (p >= 0.05)")
	}
	if plotPath != "" {
		fmt.Printf("figure: %s\n", plotPath)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if pendulums < 0 {
		return fmt.Errorf("pendulums must be >= 0, got %d", pendulums)
	}
	if noiseLevel < 0 {
		return fmt.Errorf("noise must be >= 0, got %f", noiseLevel)
	}

	p := tea.NewProgram(viz.NewModel(pendulums, noiseLevel))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tN\tPENDULUMS\tNOISE\tMEAN\tSTD\tRESETS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3f\t%.4f\t%.4f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.N,
			run.Pendulums,
			run.NoiseLevel,
			run.Mean,
			run.Std,
			run.Resets,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	values, err := st.LoadValues(runID)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(values))

	counts := stats.Histogram(values, 20, 0, 1)
	data := make([]float64, len(counts))
	for i, c := range counts {
		data[i] = float64(c)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("value distribution (20 bins over [0,1])"),
	)
	fmt.Println(graph)

	return nil
}
