// checkrun runs the registered check suites and prints a report
// for each one. It exits 1 when any check fails or errors, or a
// suite cannot be set up, and 2 on invalid usage.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/alecthomas/kingpin.v2"

	"digital.vasic.checks/pkg/config"
	"digital.vasic.checks/pkg/demo"
	"digital.vasic.checks/pkg/logging"
	"digital.vasic.checks/pkg/metrics"
	"digital.vasic.checks/pkg/monitor"
	"digital.vasic.checks/pkg/report"
	"digital.vasic.checks/pkg/runner"
	"digital.vasic.checks/pkg/suite"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitInvalid = 2
)

type options struct {
	configPath  string
	suites      []string
	filter      string
	executor    string
	concurrency int
	format      string
	reportDir   string
	history     string
	logFile     string
	metricsFile string
	verbose     bool
	list        bool

	// terminated is set when kingpin asked to exit, as it does
	// after printing --help.
	terminated bool
	exitCode   int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// parseArgs always returns the options, so the caller can see a
// termination requested by kingpin even when parsing failed.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	app := kingpin.New("checkrun", "Run generated check suites and report every outcome.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	opts := &options{}
	app.Terminate(func(code int) {
		if !opts.terminated {
			opts.terminated = true
			opts.exitCode = code
		}
	})
	app.Flag("config", "YAML configuration file.").StringVar(&opts.configPath)
	app.Flag("suite", "Suite to run, may be repeated (defaults to all).").StringsVar(&opts.suites)
	app.Flag("filter", "Only run checks whose name matches this regular expression.").StringVar(&opts.filter)
	app.Flag("executor", "How checks are scheduled.").EnumVar(&opts.executor, config.ExecutorSequential, config.ExecutorParallel)
	app.Flag("concurrency", "Maximum concurrent checks for the parallel executor.").IntVar(&opts.concurrency)
	app.Flag("format", "Report format written to stdout.").EnumVar(&opts.format, config.FormatText, config.FormatJSON, config.FormatMarkdown)
	app.Flag("report-dir", "Directory receiving JSON and Markdown reports.").StringVar(&opts.reportDir)
	app.Flag("history", "JSON Lines file receiving one entry per suite run.").StringVar(&opts.history)
	app.Flag("log-file", "File receiving JSON log lines.").StringVar(&opts.logFile)
	app.Flag("metrics-file", "File receiving Prometheus metrics in text format.").StringVar(&opts.metricsFile)
	app.Flag("verbose", "Enable debug logging.").Short('v').BoolVar(&opts.verbose)
	app.Flag("list", "List suite names and exit.").BoolVar(&opts.list)

	_, err := app.Parse(args)
	return opts, err
}

// loadConfig reads the configuration file, if any, and lets
// non-empty flags override it.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, errors.Wrap(err, "loading configuration")
		}
		cfg = loaded
	}

	if len(opts.suites) > 0 {
		cfg.Suites = opts.suites
	}
	if opts.filter != "" {
		cfg.Filter = opts.filter
	}
	if opts.executor != "" {
		cfg.Executor = opts.executor
	}
	if opts.concurrency > 0 {
		cfg.MaxConcurrency = opts.concurrency
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.reportDir != "" {
		cfg.ReportDir = opts.reportDir
	}
	if opts.history != "" {
		cfg.History = opts.history
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.metricsFile != "" {
		cfg.MetricsFile = opts.metricsFile
	}
	cfg.Verbose = cfg.Verbose || opts.verbose

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, stderr io.Writer) (logging.Logger, error) {
	console := logging.NewConsoleLoggerTo(stderr, cfg.Verbose)
	if cfg.LogFile == "" {
		return console, nil
	}

	level := logging.LevelInfo
	if cfg.Verbose {
		level = logging.LevelDebug
	}
	file, err := logging.NewJSONLogger(logging.LoggerConfig{
		OutputPath: cfg.LogFile,
		Level:      level,
	})
	if err != nil {
		return nil, errors.Wrap(err, "opening log file")
	}
	return logging.NewMultiLogger(console, file), nil
}

func newReporter(format, suiteName string) report.Reporter {
	switch format {
	case config.FormatJSON:
		return report.NewJSONReporter(suiteName, true)
	case config.FormatMarkdown:
		return report.NewMarkdownReporter(suiteName)
	default:
		return report.NewTextReporter(suiteName)
	}
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
) int {
	stderr = &lockedWriter{w: stderr}
	opts, err := parseArgs(args, stderr)
	if opts.terminated {
		return opts.exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "checkrun: %s, try --help\n", err)
		return exitInvalid
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "checkrun: %s\n", err)
		return exitInvalid
	}

	reg := suite.NewRegistry()
	if err := demo.Register(reg, cfg.SlowDelay); err != nil {
		fmt.Fprintf(stderr, "checkrun: %s\n", err)
		return exitFailed
	}

	if opts.list {
		for _, name := range reg.Names() {
			fmt.Fprintln(stdout, name)
		}
		return exitOK
	}

	passed, err := execute(ctx, cfg, reg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "checkrun: %s\n", err)
		return exitFailed
	}
	if !passed {
		return exitFailed
	}
	return exitOK
}

func execute(
	ctx context.Context,
	cfg *config.Config,
	reg suite.Registry,
	stdout, stderr io.Writer,
) (bool, error) {
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return false, err
	}
	defer logger.Close()

	promRegistry := prometheus.NewRegistry()
	runnerOpts := []runner.RunnerOption{
		runner.WithLogger(logger),
		runner.WithMetrics(metrics.NewPrometheusRecorder(promRegistry)),
	}
	if cfg.Executor == config.ExecutorParallel {
		runnerOpts = append(runnerOpts,
			runner.WithConcurrency(cfg.MaxConcurrency),
		)
	}
	if cfg.Verbose {
		collector := monitor.NewCollector()
		collector.OnEvent(progressPrinter(stderr))
		runnerOpts = append(runnerOpts, runner.WithObserver(collector))
		defer func() {
			st := collector.Stats()
			fmt.Fprintf(stderr,
				"progress: %d runs (%d setup failures), %d checks started\n",
				st.Runs, st.Setup, st.Started,
			)
		}()
	}

	scheduler := suite.NewScheduler(
		reg,
		runner.NewRunner(runnerOpts...),
		suite.WithFilter(cfg.Filter),
		suite.WithSchedulerLogger(logger),
	)
	results := scheduler.RunAll(ctx, cfg.Suites)

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(stdout, "=== %s\nsetup failed: %s\n", res.Name, res.Err)
			continue
		}

		if err := newReporter(cfg.Format, res.Name).Write(stdout, res.Report); err != nil {
			return false, errors.Wrapf(err, "writing report for %s", res.Name)
		}
		if cfg.ReportDir != "" {
			if _, err := report.SaveReport(cfg.ReportDir, res.Name, res.Report); err != nil {
				return false, errors.Wrapf(err, "saving report for %s", res.Name)
			}
		}
		if cfg.History != "" {
			if err := report.AppendToHistory(cfg.History, res.Name, res.Report); err != nil {
				return false, errors.Wrapf(err, "recording history for %s", res.Name)
			}
		}
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, promRegistry); err != nil {
			return false, errors.Wrap(err, "writing metrics")
		}
	}

	return suite.AllPassed(results), nil
}

// progressPrinter writes one line per finished check.
func progressPrinter(w io.Writer) func(monitor.Event) {
	return func(e monitor.Event) {
		if e.Type != monitor.EventCheckFinished {
			return
		}
		fmt.Fprintf(w, "progress: #%d %s: %s (%v)\n",
			e.Index, e.Name, e.Status, e.Duration)
	}
}

// lockedWriter serializes writes from the logger and the
// progress printer, which run on worker goroutines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
