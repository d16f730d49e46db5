package services

import (
	"errors"
	"fmt"

	"github.com/juju/loggo"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

var logger = loggo.GetLogger("vlanaudit.services")

// ErrNoInput is returned when the pipeline is invoked without an input sequence
var ErrNoInput = errors.New("no input lines supplied")

// Result is the outcome of one report run
type Result struct {
	Rows      []entities.ReportRow
	Ports     map[string]*entities.Membership
	Blocks    int
	Faults    []entities.Fault
	Discarded int
}

// Empty returns true when the input held no terminated block, i.e. there was nothing to process
func (r Result) Empty() bool {
	return r.Blocks == 0
}

// ReportService runs segmentation, parsing, reconciliation and formatting over one dump
type ReportService struct {
	config    entities.ReportConfig
	segmenter *Segmenter
}

// NewReportService creates a new instance of the report service
func NewReportService(config entities.ReportConfig, segmenter *Segmenter) *ReportService {
	return &ReportService{
		config:    config,
		segmenter: segmenter,
	}
}

// Run builds the port report for the given lines. Blocks without a VLAN id are
// skipped; blocks with a bad port range are skipped too unless strict mode is
// on, in which case the run stops with an error.
func (s *ReportService) Run(lines []string) (Result, error) {
	if lines == nil {
		return Result{}, ErrNoInput
	}

	blocks, discarded := s.segmenter.Segment(lines)
	result := Result{Blocks: len(blocks), Discarded: discarded}
	if discarded > 0 {
		logger.Warningf("discarding %d trailing line(s) not closed by a terminator", discarded)
	}
	if len(blocks) == 0 {
		return result, nil
	}
	logger.Debugf("segmented %d block(s) from %d line(s)", len(blocks), len(lines))

	reconciler := NewReconciler()
	for _, raw := range blocks {
		if s.config.IsRawOutputEnabled() {
			logger.Infof("raw block at lines %d-%d: %s", raw.FirstLine, raw.LastLine, raw.Text)
		}

		block, ok := ParseBlock(raw)
		if !ok {
			logger.Infof("no VLAN number found in block at lines %d-%d: %q", raw.FirstLine, raw.LastLine, raw.Text)
			result.Faults = append(result.Faults, entities.Fault{
				Kind:  entities.FaultMissingVLAN,
				Block: raw,
			})
			continue
		}

		if err := reconciler.Apply(block); err != nil {
			if s.config.Strict {
				return Result{}, fmt.Errorf("block at lines %d-%d: %w", raw.FirstLine, raw.LastLine, err)
			}
			logger.Warningf("skipping VLAN %d block at lines %d-%d: %v", block.VLAN, raw.FirstLine, raw.LastLine, err)
			result.Faults = append(result.Faults, entities.Fault{
				Kind:  entities.FaultBadPortRange,
				Block: raw,
				Err:   err,
			})
			continue
		}
		logger.Debugf("VLAN %d: tagged=%q untagged=%q", block.VLAN, block.Tagged, block.Untagged)
	}

	result.Ports = reconciler.Ports()
	result.Rows = FormatRows(result.Ports, s.config.VLANFilter())
	logger.Debugf("reconciled %d port(s)", len(result.Ports))
	return result, nil
}

// SkippedBlocks counts the faults of the given kind
func (r Result) SkippedBlocks(kind entities.FaultKind) int {
	count := 0
	for _, fault := range r.Faults {
		if fault.Kind == kind {
			count++
		}
	}
	return count
}
