package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CountersAndHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncStandingsComputed()
	svc.IncStandingsComputed()
	svc.AddMalformedRecords(3)
	svc.IncHistoryUnavailable()
	svc.AddMatchesImported(5)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.StandingsComputed))
	assert.Equal(t, 3.0, testutil.ToFloat64(svc.MalformedRecords))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.HistoryUnavailable))
	assert.Equal(t, 5.0, testutil.ToFloat64(svc.MatchesImported))

	srv := httptest.NewServer(NewMetricsHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "padwell_standings_computed_total 2")
	assert.Contains(t, string(body), "padwell_malformed_records_total 3")
}
