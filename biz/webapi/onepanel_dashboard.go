package webapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"panelbot/biz/domain"
)

const (
	pathDashboardCurrent = "/api/v2/dashboard/current/all/all"
	pathDashboardBase    = "/api/v2/dashboard/base/all/all"
	pathDeviceBase       = "/api/v2/toolbox/device/base"
)

// netSampleInterval separates the two counter reads used to derive
// per-second network rates.
const netSampleInterval = time.Second

// CurrentStatus fetches CPU, memory, load, disk and network counters. With
// withNetRates set it samples the counters twice and fills the per-second
// rates; if the second sample fails the first one is returned without rates.
func (p *OnePanelAPI) CurrentStatus(ctx context.Context, withNetRates bool) (*domain.CurrentStatus, error) {
	var first domain.CurrentStatus
	if err := p.get(ctx, pathDashboardCurrent, &first); err != nil {
		return nil, err
	}
	if !withNetRates {
		return &first, nil
	}

	select {
	case <-ctx.Done():
		return &first, nil
	case <-time.After(netSampleInterval):
	}

	var second domain.CurrentStatus
	if err := p.get(ctx, pathDashboardCurrent, &second); err != nil {
		return &first, nil
	}
	if second.NetBytesRecv >= first.NetBytesRecv {
		second.NetRecvPerSec = second.NetBytesRecv - first.NetBytesRecv
	}
	if second.NetBytesSent >= first.NetBytesSent {
		second.NetSentPerSec = second.NetBytesSent - first.NetBytesSent
	}
	return &second, nil
}

// DashboardBase fetches host identity info. Uptime and boot time arrive
// embedded as a JSON string inside virtualizationSystem, so they are pulled
// out here rather than forcing callers to know about that quirk.
func (p *OnePanelAPI) DashboardBase(ctx context.Context) (*domain.HostInfo, error) {
	var info domain.HostInfo
	if err := p.get(ctx, pathDashboardBase, &info); err != nil {
		return nil, err
	}
	if vs := info.VirtualizationSystem; vs != "" && gjson.Valid(vs) {
		info.UptimeSeconds = gjson.Get(vs, "uptime").Int()
		info.BootTime = gjson.Get(vs, "bootTime").Int()
	}
	return &info, nil
}

// Snapshot returns the raw payload of one of the read-only dashboard areas.
// Used by the debug command only.
func (p *OnePanelAPI) Snapshot(ctx context.Context, area string) (json.RawMessage, error) {
	switch area {
	case "status":
		return p.call(ctx, p.client, http.MethodGet, pathDashboardCurrent, nil)
	case "info":
		return p.call(ctx, p.client, http.MethodPost, pathDeviceBase, nil)
	default:
		return p.call(ctx, p.client, http.MethodGet, pathDashboardBase, nil)
	}
}
