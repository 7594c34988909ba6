package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/vanshika/costars/internal/domain"
)

func TestObserveQuery(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveQuery(domain.PathFound, 2, time.Millisecond)
	m.ObserveQuery(domain.PathFound, 0, time.Millisecond)
	m.ObserveQuery(domain.PathNoConnection, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Queries.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("no_connection")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Queries.WithLabelValues("not_found")))
}

func TestObserveLoad(t *testing.T) {
	m := New(prometheus.NewRegistry())
	loadedAt := time.Unix(1700000000, 0)

	m.ObserveLoad(domain.GraphStats{Actors: 5, Movies: 3, Edges: 12, LoadedAt: loadedAt}, time.Second, nil)
	m.ObserveLoad(domain.GraphStats{}, time.Second, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Loads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Loads.WithLabelValues("error")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.GraphSize.WithLabelValues("actors")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.GraphSize.WithLabelValues("edges")))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(m.LastLoadSuccess))
}

func TestObserveHTTP(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTP("GET", "/connections", 200, time.Millisecond)
	m.ObserveHTTP("GET", "/connections", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/connections", "404")))
}

func TestNew_PanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
