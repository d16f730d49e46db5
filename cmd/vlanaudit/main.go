package main

import (
	"fmt"
	"io"
	"os"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"github.com/carlosrabelo/vlanaudit/application/services"
	"github.com/carlosrabelo/vlanaudit/infrastructure/config"
	"github.com/carlosrabelo/vlanaudit/infrastructure/logging"
	"github.com/carlosrabelo/vlanaudit/infrastructure/output"
	"github.com/carlosrabelo/vlanaudit/infrastructure/shell"
	"github.com/carlosrabelo/vlanaudit/infrastructure/transport"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var logger = loggo.GetLogger("vlanaudit")

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	configFile  string
	input       string
	output      string
	format      string
	dialect     string
	baseline    string
	metricsFile string
	verbosity   int
	strict      bool
	interactive bool
	showVersion bool
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage of %s:\n", os.Args[0])
	fmt.Fprintf(w, "  -c, --config string        YAML configuration file (default: search ./, user config dir, /etc/vlanaudit/)\n")
	fmt.Fprintf(w, "  -i, --input string         Switch configuration dump, \"-\" for standard input\n")
	fmt.Fprintf(w, "  -o, --output string        Report file (default: standard output)\n")
	fmt.Fprintf(w, "  -f, --format string        Report format: csv, padded-csv, table, yaml, json\n")
	fmt.Fprintf(w, "      --dialect string       Config dialect: procurve or auto\n")
	fmt.Fprintf(w, "      --baseline string      Previous report to diff against\n")
	fmt.Fprintf(w, "      --metrics-file string  Write Prometheus metrics to this file\n")
	fmt.Fprintf(w, "      --strict               Abort on the first bad port range\n")
	fmt.Fprintf(w, "      --interactive          Browse the report after it is built\n")
	fmt.Fprintf(w, "  -v, --verbose int          Verbosity level: 0=none, 1=debug logs, 2=raw blocks, 3=debug+raw blocks\n")
	fmt.Fprintf(w, "      --version              Print version and exit\n")
}

func parseFlags(args []string) (options, error) {
	var opts options
	flagSet := gnuflag.NewFlagSet("vlanaudit", gnuflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	flagSet.StringVar(&opts.configFile, "c", "", "")
	flagSet.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	flagSet.StringVar(&opts.input, "i", "", "")
	flagSet.StringVar(&opts.input, "input", "", "Switch configuration dump")
	flagSet.StringVar(&opts.output, "o", "", "")
	flagSet.StringVar(&opts.output, "output", "", "Report file")
	flagSet.StringVar(&opts.format, "f", "", "")
	flagSet.StringVar(&opts.format, "format", "", "Report format")
	flagSet.StringVar(&opts.dialect, "dialect", "", "Config dialect")
	flagSet.StringVar(&opts.baseline, "baseline", "", "Previous report to diff against")
	flagSet.StringVar(&opts.metricsFile, "metrics-file", "", "Prometheus metrics file")
	flagSet.BoolVar(&opts.strict, "strict", false, "Abort on the first bad port range")
	flagSet.BoolVar(&opts.interactive, "interactive", false, "Browse the report")
	flagSet.IntVar(&opts.verbosity, "v", 0, "")
	flagSet.IntVar(&opts.verbosity, "verbose", 0, "Verbosity level")
	flagSet.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	if err := flagSet.Parse(true, args); err != nil {
		return opts, err
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", extra)
	}
	if opts.verbosity < 0 || opts.verbosity > 3 {
		return opts, fmt.Errorf("--verbose must be 0, 1, 2, or 3")
	}
	return opts, nil
}

// resolveConfigPath returns the file to load; an empty path means built-in defaults
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path, found := config.Locate(config.SearchPaths()); found {
		logger.Debugf("configuration file found at %s", path)
		return path
	}
	logger.Debugf("no %s found, using defaults", config.DefaultFile)
	return ""
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(stderr)
		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "vlanaudit %s (built %s)\n", version, buildTime)
		return exitOK
	}

	if err := logging.Setup(opts.verbosity, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	cfg, err := config.Load(resolveConfigPath(opts.configFile), config.Overrides{
		Input:          opts.input,
		Output:         opts.output,
		Format:         opts.format,
		Dialect:        opts.dialect,
		MetricsFile:    opts.metricsFile,
		Baseline:       opts.baseline,
		Strict:         opts.strict,
		VerbosityLevel: opts.verbosity,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	sink, err := output.Get(cfg.Format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	source := transport.Get(cfg.Source)
	defer transport.CloseAll()

	reportService := services.NewReportApplicationService(*cfg, source, sink)
	reportService.SetOutput(stdout, stderr)
	result, err := reportService.Generate()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if result.Empty() {
		fmt.Fprintf(stderr, "No VLAN configurations found in %s\n", source.Describe())
		return exitOK
	}

	if opts.interactive {
		if err := shell.New(result, source.Describe()).Run(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
