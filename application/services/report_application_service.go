package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
	"github.com/carlosrabelo/vlanaudit/domain/ports"
	"github.com/carlosrabelo/vlanaudit/domain/services"
	"github.com/carlosrabelo/vlanaudit/infrastructure/metrics"
	"github.com/carlosrabelo/vlanaudit/infrastructure/output"
	"github.com/carlosrabelo/vlanaudit/platform"
)

var logger = loggo.GetLogger("vlanaudit.application")

// ReportApplicationService orchestrates reading a dump, building the report and writing it out
type ReportApplicationService struct {
	config   entities.ReportConfig
	source   ports.LineSource
	sink     ports.RowSink
	stdout   io.Writer
	messages io.Writer
}

// NewReportApplicationService creates a new instance of the report application service
func NewReportApplicationService(config entities.ReportConfig, source ports.LineSource, sink ports.RowSink) *ReportApplicationService {
	return &ReportApplicationService{
		config:   config,
		source:   source,
		sink:     sink,
		stdout:   os.Stdout,
		messages: os.Stderr,
	}
}

// SetOutput redirects the report (when no output file is set) and the run messages
func (a *ReportApplicationService) SetOutput(stdout, messages io.Writer) {
	a.stdout = stdout
	a.messages = messages
}

// Generate builds the report and writes it to the configured output. An empty
// result writes nothing; callers check Result.Empty to report it.
func (a *ReportApplicationService) Generate() (services.Result, error) {
	lines, err := a.source.Lines()
	if err != nil {
		return services.Result{}, errors.Annotatef(err, "failed to read %s", a.source.Describe())
	}

	dialect := platform.Resolve(a.config.Dialect, lines)
	terminator := a.config.Terminator
	if terminator == "" {
		terminator = dialect.Terminator()
	}
	noisePrefixes := a.config.NoisePrefixes
	if len(noisePrefixes) == 0 {
		noisePrefixes = dialect.NoisePrefixes()
	}
	logger.Debugf("using dialect %s (terminator %q, noise %q) for %s", dialect.Name(), terminator, noisePrefixes, a.source.Describe())

	reportService := services.NewReportService(a.config, services.NewSegmenter(terminator, noisePrefixes))
	result, err := reportService.Run(lines)
	if err != nil {
		return services.Result{}, err
	}

	if err := a.writeMetrics(result); err != nil {
		return result, err
	}
	if result.Empty() {
		return result, nil
	}

	a.reportFaults(result)

	var rendered bytes.Buffer
	if err := a.sink.Write(&rendered, result.Rows); err != nil {
		return result, errors.Annotatef(err, "failed to render %s report", a.sink.Name())
	}
	if err := a.writeReport(rendered.Bytes()); err != nil {
		return result, err
	}

	if a.config.Baseline != "" {
		if err := a.compareBaseline(rendered.String()); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (a *ReportApplicationService) writeReport(rendered []byte) error {
	if a.config.Output == "" {
		if _, err := a.stdout.Write(rendered); err != nil {
			return errors.Annotate(err, "failed to write report")
		}
		return nil
	}
	if err := os.WriteFile(a.config.Output, rendered, 0644); err != nil {
		return errors.Annotatef(err, "failed to write report to %s", a.config.Output)
	}
	logger.Infof("report written to %s", a.config.Output)
	return nil
}

func (a *ReportApplicationService) compareBaseline(rendered string) error {
	diff, err := output.DiffBaseline(a.config.Baseline, rendered)
	if err != nil {
		return err
	}
	if diff == "" {
		fmt.Fprintln(a.messages, "No changes since baseline")
		return nil
	}
	fmt.Fprint(a.messages, diff)
	return nil
}

func (a *ReportApplicationService) writeMetrics(result services.Result) error {
	if a.config.MetricsFile == "" {
		return nil
	}
	collector := metrics.NewCollector()
	collector.Observe(result)
	if err := collector.WriteTextfile(a.config.MetricsFile); err != nil {
		return err
	}
	logger.Debugf("metrics written to %s", a.config.MetricsFile)
	return nil
}

func (a *ReportApplicationService) reportFaults(result services.Result) {
	if len(result.Faults) == 0 {
		return
	}
	var reasons []string
	if n := result.SkippedBlocks(entities.FaultMissingVLAN); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d without a VLAN number", n))
	}
	if n := result.SkippedBlocks(entities.FaultBadPortRange); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d with a bad port range", n))
	}
	fmt.Fprintf(a.messages, "Skipped %d block(s): %s\n", len(result.Faults), strings.Join(reasons, ", "))
	for _, fault := range result.Faults {
		if fault.Err != nil {
			fmt.Fprintf(a.messages, "  lines %d-%d: %v\n", fault.Block.FirstLine, fault.Block.LastLine, fault.Err)
		}
	}
}
