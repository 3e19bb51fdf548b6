// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/bounded"
)

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	b := bounded.New(4).Metrics(reg, appName).Build()
	b.Produce()

	srv := httptest.NewServer(newMetricsHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `bounded_produced_total{buffer="bounded"} 1`)
	assert.Contains(t, string(body), `bounded_filled_slots{buffer="bounded"} 1`)

	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestStartMetricsServerBadAddr(t *testing.T) {
	logger := setupLogger(io.Discard, "error", "text")
	_, err := startMetricsServer("256.0.0.1:bad", prometheus.NewRegistry(), logger)
	assert.ErrorContains(t, err, "metrics listener")
}

func TestStartMetricsServerShutdown(t *testing.T) {
	logger := setupLogger(io.Discard, "error", "text")
	shutdown, err := startMetricsServer("127.0.0.1:0", prometheus.NewRegistry(), logger)
	require.NoError(t, err)
	shutdown()
}
