package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/thermocycle/internal/analysis"
	"github.com/san-kum/thermocycle/internal/config"
	"github.com/san-kum/thermocycle/internal/cycle"
	"github.com/san-kum/thermocycle/internal/gas"
	"github.com/san-kum/thermocycle/internal/render"
	"github.com/san-kum/thermocycle/internal/storage"
)

var (
	dataDir    string
	configFile string
	preset     string
	gasName    string
	samples    int
	output     string
	// Operating point overrides
	p1       float64
	t1       float64
	rc       float64
	rp       float64
	cutoff   float64
	re       float64
	peakTemp float64
)

// main registers the thermocycle commands and executes the root command,
// which defaults to the four-cycle comparison. It exits with status 1 if
// command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "thermocycle",
		Short: "idealized power cycle analysis and comparison",
		RunE:  runCompare,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".thermocycle", "data directory")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "render all four cycles on one P-V chart",
		RunE:  runCompare,
	}

	reportCmd := &cobra.Command{
		Use:   "report [cycle]",
		Short: "performance report for one cycle",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReport,
	}

	statesCmd := &cobra.Command{
		Use:   "states [cycle]",
		Short: "state point table for one cycle",
		Args:  cobra.ExactArgs(1),
		RunE:  runStates,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [cycle]",
		Short: "terminal plot of the pressure trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [cycle]",
		Short: "export a sampled cycle trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export saved run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [cycle]",
		Short: "list available presets for a cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for cycle: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	gasesCmd := &cobra.Command{
		Use:   "gases",
		Short: "list working fluid presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range gas.List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, compareCmd, reportCmd, statesCmd, plotCmd, exportCSVCmd} {
		addParamFlags(cmd)
	}
	reportCmd.Flags().StringVar(&preset, "preset", "", "use preset operating point")
	statesCmd.Flags().StringVar(&preset, "preset", "", "use preset operating point")

	rootCmd.AddCommand(compareCmd, reportCmd, statesCmd, plotCmd, exportCSVCmd, exportCmd, listCmd, presetsCmd, gasesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&gasName, "gas", config.DefaultGas, "working fluid")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "samples per process leg")
	cmd.Flags().StringVar(&output, "out", render.DefaultOutput, "chart output path")
	cmd.Flags().Float64Var(&p1, "p1", 100.0, "intake pressure (kPa)")
	cmd.Flags().Float64Var(&t1, "t1", 300.0, "intake temperature (K)")
	cmd.Flags().Float64Var(&rc, "rc", 12.0, "compression ratio")
	cmd.Flags().Float64Var(&rp, "rp", 1.7, "pressure ratio")
	cmd.Flags().Float64Var(&cutoff, "cutoff", 1.55, "cutoff ratio")
	cmd.Flags().Float64Var(&re, "re", 17.0, "expansion ratio")
	cmd.Flags().Float64Var(&peakTemp, "t3", 1320.0, "peak temperature (K)")
}

// loadConfig layers preset, config file and explicit flags over the
// defaults, in that order.
func loadConfig(cmd *cobra.Command, cycleName string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" && cycleName != "" {
		p := config.GetPreset(cycleName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cycleName))
		}
		cfg.Merge(p)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("gas") {
		cfg.Gas = gasName
	}
	if flags.Changed("samples") {
		cfg.Samples = samples
	}
	if flags.Changed("out") {
		cfg.Output = output
	}
	if flags.Changed("p1") {
		cfg.Params.P1 = p1
	}
	if flags.Changed("t1") {
		cfg.Params.T1 = t1
	}
	if flags.Changed("rc") {
		cfg.Params.CompressionRatio = rc
	}
	if flags.Changed("rp") {
		cfg.Params.PressureRatio = rp
	}
	if flags.Changed("cutoff") {
		cfg.Params.CutoffRatio = cutoff
	}
	if flags.Changed("re") {
		cfg.Params.ExpansionRatio = re
	}
	if flags.Changed("t3") {
		cfg.Params.PeakTemp = peakTemp
	}

	return cfg, nil
}

func buildOne(cmd *cobra.Command, name string) (gas.Properties, *config.Config, cycle.Cycle, error) {
	cfg, err := loadConfig(cmd, name)
	if err != nil {
		return gas.Properties{}, nil, cycle.Cycle{}, err
	}

	g, err := gas.Get(cfg.Gas)
	if err != nil {
		return gas.Properties{}, nil, cycle.Cycle{}, err
	}

	builder, err := cycle.NewRegistry().Get(name)
	if err != nil {
		return gas.Properties{}, nil, cycle.Cycle{}, err
	}

	return g, cfg, builder(g, cfg.CycleParams()), nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}

	g, err := gas.Get(cfg.Gas)
	if err != nil {
		return err
	}

	registry := cycle.NewRegistry()
	params := cfg.CycleParams()
	cycles := registry.BuildAll(g, params)

	opts := render.DefaultOptions()
	opts.Output = cfg.Output
	opts.WidthIn = cfg.PlotWidth
	opts.HeightIn = cfg.PlotHeight
	opts.Samples = cfg.Samples

	if err := render.Compare(cycles, opts); err != nil {
		return err
	}

	perf := make(map[string]analysis.Performance, len(cycles))
	for _, c := range cycles {
		p, err := analysis.Analyze(g, c)
		if err != nil {
			return err
		}
		perf[c.Name] = p

		if c.Name == "atkinson" {
			fmt.Println(analysis.Report(c, p))
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Gas, params, cfg.Samples, cycles, perf)
	if err != nil {
		return err
	}

	fmt.Printf("chart written to %s\n", cfg.Output)
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	name := "atkinson"
	if len(args) > 0 {
		name = args[0]
	}

	g, _, c, err := buildOne(cmd, name)
	if err != nil {
		return err
	}

	perf, err := analysis.Analyze(g, c)
	if err != nil {
		return err
	}

	fmt.Println(analysis.Report(c, perf))
	return nil
}

func runStates(cmd *cobra.Command, args []string) error {
	_, _, c, err := buildOne(cmd, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tP (kPa)\tV (m³)\tT (K)")
	for _, s := range c.States {
		fmt.Fprintf(w, "%s\t%.2f\t%.4f\t%.2f\n", s.Label, s.P, s.V, s.T)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	_, cfg, c, err := buildOne(cmd, args[0])
	if err != nil {
		return err
	}

	trace := c.Trace(cfg.Samples)
	data := make([]float64, len(trace))
	for i, pt := range trace {
		data[i] = pt.P
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s cycle pressure along trace (kPa)", c.Name)),
	)
	fmt.Println(graph)
	return nil
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	_, cfg, c, err := buildOne(cmd, args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"volume", "pressure"}); err != nil {
		return err
	}
	for _, pt := range c.Trace(cfg.Samples) {
		row := []string{
			strconv.FormatFloat(pt.V, 'f', 6, 64),
			strconv.FormatFloat(pt.P, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runList(cmd *cobra.Command, args []string) error {
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
	fmt.Fprintln(w, "ID\tTIME\tGAS\tRC\tATKINSON η")
	for _, run := range runs {
		eta := 0.0
		if p, ok := run.Performance["atkinson"]; ok {
			eta = p.Efficiency
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.2f%%\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Gas,
			run.Params.CompressionRatio,
			eta,
		)
	}
	return w.Flush()
}
