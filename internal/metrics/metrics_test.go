package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Instruction("printer", "executed", 10*time.Millisecond)
	m.Instruction("printer", "executed", time.Millisecond)
	m.Instruction("printer", "skipped", time.Millisecond)
	m.EventFired("repeat", "executed")
	m.RunFinished("completed")
	m.QueueDepth(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.instructions.WithLabelValues("printer", "executed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.instructions.WithLabelValues("printer", "skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues("repeat", "executed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("completed")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.queueDepth))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Instruction("x", "executed", time.Second)
		m.EventFired("x", "y")
		m.RunFinished("completed")
		m.QueueDepth(1)
	})
}
