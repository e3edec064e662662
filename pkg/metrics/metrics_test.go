package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSearch(t *testing.T) {
	m := New("slot-engine", prometheus.NewRegistry())

	m.ObserveSearch("ranked", 20*time.Millisecond, 17, 2, 10)
	m.ObserveSearch("ranked", 10*time.Millisecond, 3, 0, 3)

	assert.Equal(t, 20.0, testutil.ToFloat64(m.CandidatesGenerated.WithLabelValues("ranked")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CandidatesRejected.WithLabelValues("ranked")))
	assert.Equal(t, 13.0, testutil.ToFloat64(m.SlotsReturned.WithLabelValues("ranked")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SlotsReturned.WithLabelValues("alternatives")))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a", prometheus.NewRegistry())
		New("a", prometheus.NewRegistry())
	})
}
