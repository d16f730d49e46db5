package metrics

import (
	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
	"github.com/carlosrabelo/vlanaudit/domain/services"
)

const metricsNamespace = "vlanaudit"

// Collector is a prometheus.Collector exposing the outcome of a report run.
type Collector struct {
	blocks         prometheus.Counter
	skipped        *prometheus.CounterVec
	ports          prometheus.Gauge
	vlans          prometheus.Gauge
	linesDiscarded prometheus.Gauge
}

// NewCollector returns a new Collector.
func NewCollector() *Collector {
	c := &Collector{
		blocks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "blocks_total",
				Help:      "The number of terminated configuration blocks.",
			},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "blocks_skipped_total",
				Help:      "The number of blocks left out of the report.",
			}, []string{"reason"},
		),
		ports: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "ports",
				Help:      "The number of ports with VLAN membership.",
			},
		),
		vlans: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "vlans",
				Help:      "The number of distinct VLANs assigned to any port.",
			},
		),
		linesDiscarded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "lines_discarded",
				Help:      "The number of trailing lines not closed by a terminator.",
			},
		),
	}
	for _, kind := range []entities.FaultKind{entities.FaultMissingVLAN, entities.FaultBadPortRange} {
		c.skipped.WithLabelValues(string(kind))
	}
	return c
}

// Observe records a finished run.
func (c *Collector) Observe(result services.Result) {
	c.blocks.Add(float64(result.Blocks))
	for _, fault := range result.Faults {
		c.skipped.WithLabelValues(string(fault.Kind)).Inc()
	}
	c.ports.Set(float64(len(result.Ports)))
	c.vlans.Set(float64(distinctVLANs(result.Ports).Size()))
	c.linesDiscarded.Set(float64(result.Discarded))
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.blocks.Describe(ch)
	c.skipped.Describe(ch)
	c.ports.Describe(ch)
	c.vlans.Describe(ch)
	c.linesDiscarded.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.blocks.Collect(ch)
	c.skipped.Collect(ch)
	c.ports.Collect(ch)
	c.vlans.Collect(ch)
	c.linesDiscarded.Collect(ch)
}

// WriteTextfile writes the collected metrics in the text exposition format,
// for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(c); err != nil {
		return errors.Annotate(err, "cannot register metrics")
	}
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return errors.Annotatef(err, "cannot write metrics to %s", path)
	}
	return nil
}

func distinctVLANs(ports map[string]*entities.Membership) set.Ints {
	vlans := set.NewInts()
	for _, membership := range ports {
		vlans = vlans.Union(membership.Tagged).Union(membership.Untagged)
	}
	return vlans
}
