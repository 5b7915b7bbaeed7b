package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttpr0/tripplanner/bussystem"
	"github.com/ttpr0/tripplanner/config"
	"github.com/ttpr0/tripplanner/geo"
	"github.com/ttpr0/tripplanner/planner"
	"github.com/ttpr0/tripplanner/streetmap"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	smb := streetmap.NewBuilder()
	smb.AddNode(1, geo.Location{Lat: 0, Lon: 0}, nil)
	smb.AddNode(2, geo.Location{Lat: 0, Lon: 1}, nil)
	smb.AddWay(100, []streetmap.NodeID{1, 2}, nil)
	sm := smb.Build()
	bs := bussystem.NewBuilder().Build()

	cfg, err := config.New(sm, bs)
	require.NoError(t, err)

	p := planner.New(cfg)
	return New(p, nil)
}

func doRequest(s *Server, method, target string) (*http.Response, error) {
	req := httptest.NewRequest(method, target, nil)
	return s.app.Test(req)
}

func TestHealthz(t *testing.T) {
	s := testServer(t)
	resp, err := doRequest(s, http.MethodGet, "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNodeCount(t *testing.T) {
	s := testServer(t)
	resp, err := doRequest(s, http.MethodGet, "/v1/nodes/count")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body["count"])
}

func TestShortestOK(t *testing.T) {
	s := testServer(t)
	resp, err := doRequest(s, http.MethodGet, "/v1/shortest?src=1&dest=2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body shortestResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.InDelta(t, 69.09, body.DistanceMiles, 0.05)
	assert.Equal(t, []streetmap.NodeID{1, 2}, body.Path)
}

func TestShortestNoPath(t *testing.T) {
	s := testServer(t)
	resp, err := doRequest(s, http.MethodGet, "/v1/shortest?src=1&dest=9999")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFastestBadRequest(t *testing.T) {
	s := testServer(t)
	resp, err := doRequest(s, http.MethodGet, "/v1/fastest?src=abc&dest=2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFastestOK(t *testing.T) {
	s := testServer(t)
	resp, err := doRequest(s, http.MethodGet, "/v1/fastest?src=1&dest=2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body fastestResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.InDelta(t, 69.09/8.0, body.Hours, 0.01)
	require.Len(t, body.Steps, 2)
	assert.Equal(t, "bike", body.Steps[1].Mode)
	assert.Equal(t, []string{"Walk to node 1", "Bike to node 2"}, body.Description)
}
