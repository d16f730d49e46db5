package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
	"github.com/carlosrabelo/vlanaudit/domain/services"
)

func sampleResult() services.Result {
	a1 := entities.NewMembership()
	a1.AddTagged(10)
	a2 := entities.NewMembership()
	a2.AddTagged(10)
	a2.AddUntagged(20)

	return services.Result{
		Ports:  map[string]*entities.Membership{"A1": a1, "A2": a2},
		Blocks: 4,
		Faults: []entities.Fault{
			{Kind: entities.FaultMissingVLAN},
			{Kind: entities.FaultBadPortRange},
			{Kind: entities.FaultMissingVLAN},
		},
		Discarded: 3,
	}
}

func TestCollector_Observe(t *testing.T) {
	c := NewCollector()
	c.Observe(sampleResult())

	assert.Equal(t, 4.0, testutil.ToFloat64(c.blocks))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.skipped.WithLabelValues("missing-vlan")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.skipped.WithLabelValues("bad-port-range")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ports))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.vlans))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.linesDiscarded))
}

func TestCollector_SkippedReasonsPresetToZero(t *testing.T) {
	c := NewCollector()
	c.Observe(services.Result{Blocks: 1})

	expected := `
# HELP vlanaudit_blocks_skipped_total The number of blocks left out of the report.
# TYPE vlanaudit_blocks_skipped_total counter
vlanaudit_blocks_skipped_total{reason="bad-port-range"} 0
vlanaudit_blocks_skipped_total{reason="missing-vlan"} 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "vlanaudit_blocks_skipped_total"))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := NewCollector()
	c.Observe(sampleResult())

	path := filepath.Join(t.TempDir(), "vlanaudit.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "vlanaudit_blocks_total 4")
	assert.Contains(t, content, "vlanaudit_ports 2")
	assert.Contains(t, content, "vlanaudit_lines_discarded 3")
}

func TestCollector_WriteTextfile_BadPath(t *testing.T) {
	c := NewCollector()
	err := c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "vlanaudit.prom"))
	assert.Error(t, err)
}
