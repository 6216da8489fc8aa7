package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitlab/internal/config"
	"github.com/san-kum/orbitlab/internal/export"
	"github.com/san-kum/orbitlab/internal/integrate"
	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/store"
	"github.com/san-kum/orbitlab/internal/viz"
)

var (
	dataDir    string
	taus       []float64
	tend       float64
	orbitName  string
	semiMajor  float64
	ecc        float64
	gm         float64
	output     string
	configFile string
	preset     string
	svgSize    int
	convTaus   []float64
	liveTau    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "two-body orbit integration lab",
		Long: `orbitlab integrates the two-body equations of motion with first-,
second- and fourth-order explicit methods and renders the trajectories
for step-size comparison.`,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [integrator]",
		Short: "integrate and render a step-size comparison",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runComparison,
	}
	runCmd.Flags().Float64SliceVar(&taus, "tau", nil, "step size(s), repeatable")
	runCmd.Flags().Float64Var(&tend, "time", config.DefaultTend, "end time")
	runCmd.Flags().StringVar(&orbitName, "orbit", config.DefaultOrbit, "orbit preset (circular, elliptical)")
	runCmd.Flags().Float64Var(&semiMajor, "a", config.DefaultSemiMajor, "semi-major axis (elliptical)")
	runCmd.Flags().Float64Var(&ecc, "e", config.DefaultEcc, "eccentricity (elliptical)")
	runCmd.Flags().Float64Var(&gm, "gm", orbit.GM, "gravitational parameter")
	runCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "rendered artifact path")
	runCmd.Flags().IntVar(&svgSize, "size", 640, "artifact size in pixels")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator...]",
		Short: "compare methods on the same orbit and step size",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64SliceVar(&taus, "tau", []float64{config.DefaultTau}, "step size")
	compareCmd.Flags().Float64Var(&tend, "time", config.DefaultTend, "end time")
	compareCmd.Flags().StringVar(&orbitName, "orbit", config.DefaultOrbit, "orbit preset")
	compareCmd.Flags().Float64Var(&semiMajor, "a", config.DefaultSemiMajor, "semi-major axis")
	compareCmd.Flags().Float64Var(&ecc, "e", config.DefaultEcc, "eccentricity")
	compareCmd.Flags().Float64Var(&gm, "gm", orbit.GM, "gravitational parameter")

	convergenceCmd := &cobra.Command{
		Use:   "convergence [integrator]",
		Short: "show error reduction under halving step sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  convergenceTable,
	}
	convergenceCmd.Flags().Float64SliceVar(&convTaus, "tau", []float64{0.1, 0.05, 0.025, 0.0125}, "step sizes")
	convergenceCmd.Flags().Float64Var(&tend, "time", config.DefaultTend, "end time")
	convergenceCmd.Flags().Float64Var(&gm, "gm", orbit.GM, "gravitational parameter")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "ascii-plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [integrator]",
		Short: "animate an orbit in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&liveTau, "tau", 0.001, "step size")
	liveCmd.Flags().StringVar(&orbitName, "orbit", config.DefaultOrbit, "orbit preset")
	liveCmd.Flags().Float64Var(&semiMajor, "a", config.DefaultSemiMajor, "semi-major axis")
	liveCmd.Flags().Float64Var(&ecc, "e", config.DefaultEcc, "eccentricity")
	liveCmd.Flags().Float64Var(&gm, "gm", orbit.GM, "gravitational parameter")

	rootCmd.AddCommand(runCmd, compareCmd, convergenceCmd, plotCmd, listCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and flags into one Config.
// Precedence: explicit flags > config file > preset > defaults.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Integrator = args[0]
	}
	if cmd.Flags().Changed("tau") {
		// Read through the flag set: commands that bind --tau as a scalar
		// (live) must not overwrite the step-size list.
		if ts, err := cmd.Flags().GetFloat64Slice("tau"); err == nil {
			cfg.Taus = ts
		}
	}
	if cmd.Flags().Changed("time") {
		cfg.Tend = tend
	}
	if cmd.Flags().Changed("orbit") {
		cfg.Orbit = orbitName
	}
	if cmd.Flags().Changed("a") {
		cfg.SemiMajor = semiMajor
	}
	if cmd.Flags().Changed("e") {
		cfg.Ecc = ecc
	}
	if cmd.Flags().Changed("gm") {
		cfg.GM = gm
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = output
	}

	if len(cfg.Taus) == 0 {
		cfg.Taus = []float64{config.DefaultTau}
	}
	// presets leave rendering fields unset
	if cfg.Output == "" {
		cfg.Output = config.DefaultOutput
	}
	if cfg.GM == 0 {
		cfg.GM = orbit.GM
	}
	if cfg.Tend == 0 {
		cfg.Tend = config.DefaultTend
	}

	return cfg, nil
}

func runComparison(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	stepper, err := integrate.New(cfg.Integrator)
	if err != nil {
		return err
	}

	sys := orbit.NewTwoBody(cfg.GM)
	s0, err := cfg.InitialState()
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("integrating %s orbit with %s...\n", cfg.Orbit, stepper.Name())
	start := time.Now()

	results := integrate.Sweep(sys, stepper, s0, cfg.Taus, cfg.Tend)
	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
	}

	elapsed := time.Since(start)

	series := make([]export.Series, len(results))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TAU\tSTEPS\tENERGY DRIFT\tRUN ID")

	e0 := sys.Energy(s0)
	for i, res := range results {
		xs, ys := res.History.Positions()
		series[i] = export.Series{
			Label: fmt.Sprintf("tau = %6.4f", res.Tau),
			Xs:    xs,
			Ys:    ys,
		}

		drift := energyDrift(sys, e0, res.History)
		runID, err := st.Save(stepper.Name(), cfg.Orbit, res.Tau, cfg.Tend, cfg.GM,
			map[string]float64{"energy_drift": drift}, res.History)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%.4f\t%d\t%.2e\t%s\n", res.Tau, res.History.Len(), drift, runID)
	}

	if err := export.WriteSVG(cfg.Output, series, svgSize, svgSize); err != nil {
		return err
	}

	w.Flush()
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("wrote %s\n", cfg.Output)
	return nil
}

func energyDrift(sys *orbit.TwoBody, e0 float64, hist *orbit.History) float64 {
	_, final, err := hist.Final()
	if err != nil || e0 == 0 {
		return 0
	}
	return math.Abs(sys.Energy(final)-e0) / math.Abs(e0)
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	tau := cfg.Taus[0]

	sys := orbit.NewTwoBody(cfg.GM)
	s0, err := cfg.InitialState()
	if err != nil {
		return err
	}
	e0 := sys.Energy(s0)

	fmt.Printf("comparing integrators on the %s orbit (tau=%.4f, tend=%.2f)\n\n",
		cfg.Orbit, tau, cfg.Tend)
	fmt.Printf("%-10s  %-14s  %-14s  %-10s\n", "method", "final_radius", "energy_drift", "time_ms")
	fmt.Println(strings.Repeat("-", 54))

	for _, name := range args {
		stepper, err := integrate.New(name)
		if err != nil {
			fmt.Printf("%-10s  error: %v\n", name, err)
			continue
		}

		start := time.Now()
		hist, err := integrate.Integrate(sys, stepper, s0, tau, cfg.Tend)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-10s  error: %v\n", name, err)
			continue
		}

		_, final, err := hist.Final()
		if err != nil {
			return err
		}

		fmt.Printf("%-10s  %14.6f  %14.2e  %10.2f\n",
			stepper.Name(), final.Radius(), energyDrift(sys, e0, hist),
			float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func convergenceTable(cmd *cobra.Command, args []string) error {
	stepper, err := integrate.New(args[0])
	if err != nil {
		return err
	}

	sys := orbit.NewTwoBody(gm)
	s0 := orbit.Circular(gm)
	exact := orbit.CircularSolution(gm, tend)

	fmt.Printf("%s convergence on one circular orbit (order %d: expect ~%.0fx per halving)\n\n",
		stepper.Name(), stepper.Order(), math.Pow(2, float64(stepper.Order())))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TAU\tFINAL ERROR\tRATIO")

	prev := 0.0
	for i, tau := range convTaus {
		hist, err := integrate.Integrate(sys, stepper, s0, tau, tend)
		if err != nil {
			return err
		}
		_, final, err := hist.Final()
		if err != nil {
			return err
		}
		e := final.Sub(exact).Radius()

		if i == 0 {
			fmt.Fprintf(w, "%.4f\t%.3e\t-\n", tau, e)
		} else {
			fmt.Fprintf(w, "%.4f\t%.3e\t%.1fx\n", tau, e, prev/e)
		}
		prev = e
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	hist, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("%s orbit, %s, tau=%.4f, %d samples\n\n",
		meta.Orbit, meta.Integrator, meta.Tau, hist.Len())

	fmt.Println(viz.OrbitPlot(hist, 60, 22))
	fmt.Println(viz.RadiusPlot(hist))

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
	fmt.Fprintln(w, "ID\tORBIT\tINTEG\tTAU\tTEND\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%.2f\t%s\n",
			run.ID, run.Orbit, run.Integrator, run.Tau, run.Tend,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	hist, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, hist)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	hist, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, meta.Integrator, meta.Orbit, meta.Tau, meta.Tend, meta.GM, hist)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	stepper, err := integrate.New(cfg.Integrator)
	if err != nil {
		return err
	}

	sys := orbit.NewTwoBody(cfg.GM)
	s0, err := cfg.InitialState()
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(sys, stepper, s0, liveTau))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
