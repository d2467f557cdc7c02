package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

var (
	// CLI flags; defaults come from the YAML config and flags win when set.
	configPath   string // Optional YAML config file
	workloadPath string // Workload definition file
	timeQuantum  int64  // Quantum for round robin and variable round robin
	logLevel     string // Log verbosity level
	traceLevel   string // Tick trace verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-time CPU/IO process scheduling simulator",
}

// runCmd simulates the workload once per selected discipline
var runCmd = &cobra.Command{
	Use:   "run [discipline ...]",
	Short: "Run the scheduling simulation",
	Long: `Run the workload under one or more scheduling disciplines.

Recognized discipline tokens: sjf (shortest-job-first),
srtf (shortest-remaining-time-first), rr (round-robin),
vrr (variable-round-robin). No token defaults to sjf.
Each selected discipline simulates the full workload independently.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := sim.LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("Invalid config: %v", err)
		}
		if cmd.Flags().Changed("workload") {
			cfg.WorkloadPath = workloadPath
		}
		if cmd.Flags().Changed("quantum") {
			cfg.TimeQuantum = timeQuantum
		}
		if cmd.Flags().Changed("log") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("trace") {
			cfg.TraceLevel = traceLevel
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid config: %v", err)
		}

		// Set up logging
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
		}
		logrus.SetLevel(level)

		// Resolve discipline tokens before touching the workload: an
		// unrecognized token must fail without emitting any run output.
		disciplines := make([]sim.Discipline, 0, len(args))
		for _, arg := range args {
			d, err := sim.ParseDiscipline(arg)
			if err != nil {
				logrus.Fatalf("Invalid argument: %v", err)
			}
			disciplines = append(disciplines, d)
		}
		if len(disciplines) == 0 {
			disciplines = append(disciplines, sim.SJF)
		}

		specs, err := sim.LoadWorkload(cfg.WorkloadPath, cfg.DelimiterRune())
		if err != nil {
			logrus.Fatalf("Invalid workload: %v", err)
		}

		for _, discipline := range disciplines {
			tr := trace.New(trace.Level(cfg.TraceLevel))
			device, err := sim.NewDevice(specs, discipline, cfg.TimeQuantum, tr)
			if err != nil {
				logrus.Fatalf("Invalid workload for %s: %v", discipline, err)
			}
			report, err := device.Run()
			if err != nil {
				logrus.Fatalf("Simulation failed for %s: %v", discipline, err)
			}

			printTrace(tr)
			summary := trace.Summarize(tr)
			logrus.Infof("trace: %d records, %d CPU dispatches, %d IO dispatches, %d completions",
				summary.TotalRecords, summary.CPUDispatches, summary.IODispatches, summary.Completions)
			report.Print()
		}
	},
}

// printTrace renders the tick-by-tick table in arrival order of the records.
func printTrace(tr *trace.Trace) {
	if tr == nil || tr.Level == trace.LevelNone || len(tr.Records) == 0 {
		return
	}
	fmt.Println("Time (tick)\tDevice\tProcess Served")
	lastTick := int64(-1)
	for _, r := range tr.Records {
		tick := ""
		if r.Tick != lastTick {
			tick = fmt.Sprintf("%d", r.Tick)
			lastTick = r.Tick
		}
		fmt.Printf("%s\t%s\t%s\n", tick, r.Device, formatRecord(r))
	}
}

// formatRecord renders one trace record's process/action column.
func formatRecord(r trace.Record) string {
	switch r.Action {
	case trace.ActionIdle:
		return "-"
	case trace.ActionArrive:
		return fmt.Sprintf("%s[Arrive]", r.Process)
	case trace.ActionSchedule:
		return fmt.Sprintf("%s[Sched]", r.Process)
	case trace.ActionRun:
		return fmt.Sprintf("%s:%d", r.Process, r.Counter)
	case trace.ActionQueueIO:
		return fmt.Sprintf("%s[Q IO]:%d", r.Process, r.Counter)
	case trace.ActionIORun:
		return fmt.Sprintf("%s:%d", r.Process, r.Counter)
	case trace.ActionIOComplete:
		return fmt.Sprintf("%s[Comp]:%d", r.Process, r.Counter)
	case trace.ActionComplete:
		return fmt.Sprintf("%s[Comp]", r.Process)
	}
	return fmt.Sprintf("%s[%s]", r.Process, r.Action)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML config file")
	runCmd.Flags().StringVar(&workloadPath, "workload", "procs.proc", "Workload definition file")
	runCmd.Flags().Int64Var(&timeQuantum, "quantum", 5, "Time quantum for rr and vrr (ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "full", "Tick trace verbosity (full, none)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
