package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewGenerationMetrics(reg)
	require.NoError(t, err)

	m.ObserveWorld(5, 4, 2*time.Millisecond)
	m.ObserveWorld(1, 0, time.Millisecond)
	m.ObserveFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.worlds))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures))

	count, err := testutil.GatherAndCount(reg, "dungeon_rooms_per_world")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGenerationMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewGenerationMetrics(reg)
	require.NoError(t, err)

	_, err = NewGenerationMetrics(reg)
	assert.Error(t, err)
}

func TestGenerationMetrics_NilIsNoop(t *testing.T) {
	var m *GenerationMetrics
	assert.NotPanics(t, func() {
		m.ObserveWorld(3, 2, time.Second)
		m.ObserveFailure()
	})
}
