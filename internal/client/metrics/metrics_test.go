package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest_CountsByStatus(t *testing.T) {
	m := New()

	m.ObserveRequest("GET", "/lists", 200, 10*time.Millisecond)
	m.ObserveRequest("GET", "/lists", 200, 20*time.Millisecond)
	m.ObserveRequest("GET", "/lists", 404, 5*time.Millisecond)
	m.ObserveRequest("POST", "/interactions", 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/lists", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/lists", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("POST", "/interactions", StatusTransportError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveRequest("GET", "/profile", 200, time.Millisecond)

	n, err := testutil.GatherAndCount(b.Registry, "bookarc_client_requests_total")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = testutil.GatherAndCount(a.Registry, "bookarc_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestObserveRequest_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("GET", "/profile", 200, time.Millisecond)
}
