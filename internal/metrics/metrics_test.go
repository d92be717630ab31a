package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTransformation(t *testing.T) {
	m := New()
	m.ObserveTransformation("normalize", time.Millisecond, nil)
	m.ObserveTransformation("normalize", time.Millisecond, errors.New("boom"))
	m.ObserveTransformation("normalize", time.Millisecond, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transformations.WithLabelValues("normalize", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transformations.WithLabelValues("normalize", "error")))
}

func TestObserveHistoryAndSessions(t *testing.T) {
	m := New()
	m.ObserveHistoryMove("undo", nil)
	m.ObserveDatasetLoaded("")
	m.SetActiveSessions(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.historyMoves.WithLabelValues("undo", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.datasetsLoaded.WithLabelValues("records")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeSessions))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveTransformation("x", time.Second, nil)
		m.ObserveHistoryMove("redo", nil)
		m.ObserveDatasetLoaded("csv")
		m.SetActiveSessions(1)
	})
	assert.Nil(t, m.Registry())
	assert.NotNil(t, m.Handler())
}
