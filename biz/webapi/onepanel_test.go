package webapi

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panelbot/biz/domain"
	"panelbot/config"
)

const (
	testHost = "http://panel.test"
	testKey  = "secret-api-key"
)

func newTestAPI(t *testing.T) *OnePanelAPI {
	t.Helper()
	api := CreateOnePanelAPI(&config.Config{
		Panel: config.Panel{
			Host:           testHost,
			APIKey:         testKey,
			RequestTimeout: 5 * time.Second,
			OperateTimeout: 5 * time.Second,
		},
	})
	httpmock.ActivateNonDefault(api.client)
	httpmock.ActivateNonDefault(api.operateClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return api
}

// okResponder answers like a real panel: it recomputes the signature from
// the received timestamp and rejects requests that do not verify.
func okResponder(t *testing.T, data string) httpmock.Responder {
	t.Helper()
	return func(req *http.Request) (*http.Response, error) {
		ts := req.Header.Get("1Panel-Timestamp")
		sum := md5.Sum([]byte("1panel" + testKey + ts))
		if req.Header.Get("1Panel-Token") != hex.EncodeToString(sum[:]) {
			return httpmock.NewStringResponse(http.StatusOK, `{"code":401,"message":"token invalid"}`), nil
		}
		return httpmock.NewStringResponse(http.StatusOK, `{"code":200,"message":"success","data":`+data+`}`), nil
	}
}

func TestSignTokenDeterministic(t *testing.T) {
	ts := int64(1700000000)
	sum := md5.Sum([]byte("1panel" + testKey + "1700000000"))

	first := signToken(testKey, ts)
	assert.Equal(t, hex.EncodeToString(sum[:]), first)
	assert.Equal(t, first, signToken(testKey, ts), "same key and timestamp must sign identically")
	assert.Len(t, first, 32)
}

func TestSignHeaders(t *testing.T) {
	api := newTestAPI(t)
	api.now = func() time.Time { return time.Unix(1700000000, 0) }

	req, err := http.NewRequest(http.MethodGet, testHost+"/api/v2/dashboard/base/all/all", nil)
	require.NoError(t, err)
	api.signHeaders(req)

	assert.Equal(t, "1700000000", req.Header.Get("1Panel-Timestamp"))
	assert.Equal(t, signToken(testKey, 1700000000), req.Header.Get("1Panel-Token"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestCurrentStatus(t *testing.T) {
	api := newTestAPI(t)
	httpmock.RegisterResponder(http.MethodGet, testHost+pathDashboardCurrent, okResponder(t,
		`{"cpuUsedPercent":12.5,"cpuCores":4,"load1":0.42,"memoryTotal":8589934592,"memoryUsed":2147483648,"memoryUsedPercent":25.0,"diskData":[{"path":"/","total":100,"used":50,"usedPercent":50.0}],"netBytesRecv":1000,"netBytesSent":2000}`))

	status, err := api.CurrentStatus(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 12.5, status.CPUUsedPercent)
	assert.Equal(t, 4, status.CPUCores)
	assert.Equal(t, uint64(1000), status.NetBytesRecv)
	assert.Len(t, status.DiskData, 1)
	assert.Equal(t, 1, httpmock.GetCallCountInfo()["GET "+testHost+pathDashboardCurrent])
}

func TestCurrentStatusNetRates(t *testing.T) {
	api := newTestAPI(t)
	samples := []string{
		`{"netBytesRecv":1000,"netBytesSent":2000}`,
		`{"netBytesRecv":1500,"netBytesSent":2200}`,
	}
	call := 0
	httpmock.RegisterResponder(http.MethodGet, testHost+pathDashboardCurrent,
		func(req *http.Request) (*http.Response, error) {
			data := samples[call]
			call++
			return httpmock.NewStringResponse(http.StatusOK, `{"code":200,"data":`+data+`}`), nil
		})

	status, err := api.CurrentStatus(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), status.NetRecvPerSec)
	assert.Equal(t, uint64(200), status.NetSentPerSec)
	assert.Equal(t, uint64(1500), status.NetBytesRecv, "latest counters win")
	assert.Equal(t, 2, httpmock.GetCallCountInfo()["GET "+testHost+pathDashboardCurrent])
}

func TestDashboardBaseVirtualizationQuirk(t *testing.T) {
	api := newTestAPI(t)
	httpmock.RegisterResponder(http.MethodGet, testHost+pathDashboardBase, okResponder(t,
		`{"hostname":"web-1","prettyDistro":"Debian GNU/Linux 12","kernelVersion":"6.1.0","kernelArch":"x86_64","ipV4Addr":"192.0.2.10","virtualizationSystem":"{\"uptime\":90061,\"bootTime\":1699909939}"}`))

	info, err := api.DashboardBase(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "web-1", info.Hostname)
	assert.Equal(t, "Debian GNU/Linux 12", info.Distro())
	assert.Equal(t, int64(90061), info.UptimeSeconds)
	assert.Equal(t, int64(1699909939), info.BootTime)
}

// Each command-facing method maps to exactly one endpoint and verb.
func TestEndpointMapping(t *testing.T) {
	cases := []struct {
		name   string
		verb   string
		path   string
		data   string
		invoke func(api *OnePanelAPI) error
	}{
		{
			name: "container search", verb: http.MethodPost, path: pathContainerSearch, data: `{"items":[],"total":0}`,
			invoke: func(api *OnePanelAPI) error {
				_, err := api.SearchContainers(context.Background(), 1, 20)
				return err
			},
		},
		{
			name: "container operate", verb: http.MethodPost, path: pathContainerOperate, data: `null`,
			invoke: func(api *OnePanelAPI) error {
				return api.OperateContainer(context.Background(), "web", domain.RestartContainer)
			},
		},
		{
			name: "installed apps", verb: http.MethodPost, path: pathAppInstalledSearch, data: `{"items":[],"total":0}`,
			invoke: func(api *OnePanelAPI) error {
				_, err := api.InstalledApps(context.Background(), 1, 20)
				return err
			},
		},
		{
			name: "ssh logs", verb: http.MethodPost, path: pathSSHLog, data: `{"logs":[],"total":0}`,
			invoke: func(api *OnePanelAPI) error {
				_, err := api.SSHLogs(context.Background(), 1, 10, "All")
				return err
			},
		},
		{
			name: "firewall rules", verb: http.MethodPost, path: pathFirewallSearch, data: `{"items":[],"total":0}`,
			invoke: func(api *OnePanelAPI) error {
				_, err := api.FirewallRules(context.Background(), "port", 1, 50)
				return err
			},
		},
		{
			name: "cron jobs", verb: http.MethodPost, path: pathCronjobSearch, data: `{"items":[],"total":0}`,
			invoke: func(api *OnePanelAPI) error {
				_, err := api.CronJobs(context.Background(), 1, 20)
				return err
			},
		},
		{
			name: "device snapshot", verb: http.MethodPost, path: pathDeviceBase, data: `{}`,
			invoke: func(api *OnePanelAPI) error {
				_, err := api.Snapshot(context.Background(), "info")
				return err
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			api := newTestAPI(t)
			httpmock.RegisterResponder(tc.verb, testHost+tc.path, okResponder(t, tc.data))

			require.NoError(t, tc.invoke(api))
			assert.Equal(t, 1, httpmock.GetCallCountInfo()[tc.verb+" "+testHost+tc.path])
			assert.Equal(t, 1, httpmock.GetTotalCallCount(), "exactly one endpoint per command")
		})
	}
}

func TestUpstreamErrorSurfaced(t *testing.T) {
	api := newTestAPI(t)
	httpmock.RegisterResponder(http.MethodPost, testHost+pathContainerOperate,
		httpmock.NewStringResponder(http.StatusOK, `{"code":500,"message":"container not found"}`))

	err := api.OperateContainer(context.Background(), "ghost", domain.StopContainer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "container not found")

	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.ErrUpstream, derr.Code())
}

func TestAuthRejectionCode(t *testing.T) {
	api := newTestAPI(t)
	httpmock.RegisterResponder(http.MethodGet, testHost+pathDashboardCurrent,
		httpmock.NewStringResponder(http.StatusOK, `{"code":401,"message":"token expired"}`))

	_, err := api.CurrentStatus(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expired")

	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.ErrUnauthorized, derr.Code())
}

func TestMalformedBody(t *testing.T) {
	api := newTestAPI(t)
	httpmock.RegisterResponder(http.MethodGet, testHost+pathDashboardBase,
		httpmock.NewStringResponder(http.StatusOK, `<html>502 bad gateway</html>`))

	_, err := api.DashboardBase(context.Background())
	require.Error(t, err)

	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.ErrUpstream, derr.Code())
}

func TestNetworkFailure(t *testing.T) {
	api := newTestAPI(t)
	// no responder registered: every call fails at transport level

	_, err := api.CronJobs(context.Background(), 1, 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.MessagePanelUnreachable)
}
