package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sched-sim/sched"
	"github.com/inference-sim/sched-sim/sched/trace"
	"github.com/inference-sim/sched-sim/sched/workload"
)

var (
	// CLI flags for the scheduling run
	workloadPath string // Path to the YAML workload suite
	policy       string // Scheduling policy name
	timeslice    int64  // Quantum granted to a fresh process (in ticks)
	minRemaining int64  // Threshold below which a partial quantum is not re-granted
	logLevel     string // Log verbosity level
	traceLevel   string // Decision trace level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sched-sim",
	Short: "Discrete-event simulator for CPU scheduling policies",
}

// runCmd executes one scheduling run using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a workload against a scheduling policy",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if workloadPath == "" {
			logrus.Fatalf("Workload file not provided. Exiting run.")
		}
		if !sched.IsValidPolicy(policy) {
			logrus.Fatalf("Unknown scheduling policy %q; see `sched-sim policies`", policy)
		}
		if !trace.IsValidLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q", traceLevel)
		}

		cfg := sched.NewConfig(timeslice, minRemaining)
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		suite, err := workload.Load(workloadPath)
		if err != nil {
			logrus.Fatalf("Unable to load workload: %v", err)
		}

		logrus.Infof("Starting run: policy=%s timeslice=%d min-remaining=%d workload=%s",
			policy, timeslice, minRemaining, workloadPath)
		startTime := time.Now()

		engine := sched.NewScheduler(policy, cfg)
		rt := trace.NewRunTrace(trace.Level(traceLevel))
		driver := workload.NewDriver(engine, suite, rt)
		if err := driver.Run(); err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}

		renderReport(os.Stdout, driver.Reports())
		clock := int64(0)
		if c, ok := engine.(interface{ Time() int64 }); ok {
			clock = c.Time()
		}
		collectReportMetrics(driver.Reports(), clock).Print()
		if rt.Enabled() {
			printTraceSummary(os.Stdout, trace.Summarize(rt))
		}

		logrus.Infof("Run complete in %s.", time.Since(startTime))
	},
}

// policiesCmd lists the registered scheduling policies
var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List registered scheduling policies",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range sched.PolicyNames() {
			fmt.Println(name)
		}
	},
}

// renderReport writes the per-process accounting table for exited processes.
func renderReport(w io.Writer, reports []workload.ProcessReport) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "PROGRAM", "PRIO", "WAITING", "SYSCALLS", "EXECUTION"})
	for _, r := range reports {
		table.Append([]string{
			fmt.Sprint(r.Pid),
			r.Program,
			fmt.Sprint(r.Priority),
			fmt.Sprint(r.Timings.Waiting),
			fmt.Sprint(r.Timings.Syscalls),
			fmt.Sprint(r.Timings.Execution),
		})
	}
	table.Render()
}

// collectReportMetrics aggregates exited-process snapshots the same way
// sched.CollectMetrics aggregates live views.
func collectReportMetrics(reports []workload.ProcessReport, clock int64) *sched.Metrics {
	m := &sched.Metrics{Processes: len(reports), Clock: clock}
	for _, r := range reports {
		m.TotalWaiting += r.Timings.Waiting
		m.TotalExecution += r.Timings.Execution
		m.TotalSyscalls += r.Timings.Syscalls
	}
	return m
}

func printTraceSummary(w io.Writer, s *trace.Summary) {
	fmt.Fprintln(w, "=== Decision Trace ===")
	fmt.Fprintf(w, "Decisions   : %d\n", s.TotalDecisions)
	fmt.Fprintf(w, "Run grants  : %d\n", s.Runs)
	fmt.Fprintf(w, "Idle sleeps : %d\n", s.Sleeps)
	fmt.Fprintf(w, "Expirations : %d\n", s.Expirations)
	fmt.Fprintf(w, "Syscalls    : %d (of which %d forks)\n", s.Syscalls, s.Forks)
}

func init() {
	runCmd.Flags().StringVar(&workloadPath, "workload", "", "path to the YAML workload suite")
	runCmd.Flags().StringVar(&policy, "policy", "round-robin", "scheduling policy name")
	runCmd.Flags().Int64Var(&timeslice, "timeslice", 5, "quantum granted to a fresh process (ticks)")
	runCmd.Flags().Int64Var(&minRemaining, "min-remaining", 1, "minimum remaining quantum worth re-granting (ticks)")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "log verbosity (debug, info, warn, error)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "decision trace level (none, decisions)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(policiesCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
