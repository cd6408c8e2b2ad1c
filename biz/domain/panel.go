package domain

// Response shapes of the 1Panel v2 API. Field names follow the panel's JSON
// exactly; everything here is pass-through, no invariants of our own.

type DiskUsage struct {
	Path        string  `json:"path"`
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"usedPercent"`
}

// CurrentStatus is the payload of GET /dashboard/current/:io/:net.
type CurrentStatus struct {
	CPUUsedPercent    float64     `json:"cpuUsedPercent"`
	CPUCores          int         `json:"cpuCores"`
	Load1             float64     `json:"load1"`
	MemoryTotal       uint64      `json:"memoryTotal"`
	MemoryUsed        uint64      `json:"memoryUsed"`
	MemoryUsedPercent float64     `json:"memoryUsedPercent"`
	DiskData          []DiskUsage `json:"diskData"`
	NetBytesRecv      uint64      `json:"netBytesRecv"`
	NetBytesSent      uint64      `json:"netBytesSent"`

	// Per-second rates derived from two samples, not part of the panel payload.
	NetRecvPerSec uint64 `json:"-"`
	NetSentPerSec uint64 `json:"-"`
}

// HostInfo is the payload of GET /dashboard/base/:io/:net.
type HostInfo struct {
	Hostname             string `json:"hostname"`
	Platform             string `json:"platform"`
	PlatformVersion      string `json:"platformVersion"`
	PrettyDistro         string `json:"prettyDistro"`
	KernelVersion        string `json:"kernelVersion"`
	KernelArch           string `json:"kernelArch"`
	IPV4Addr             string `json:"ipV4Addr"`
	CPUCores             int    `json:"cpuCores"`
	VirtualizationSystem string `json:"virtualizationSystem"`

	// Extracted from the JSON string the panel embeds in VirtualizationSystem.
	UptimeSeconds int64 `json:"-"`
	BootTime      int64 `json:"-"`
}

func (h *HostInfo) Distro() string {
	if h.PrettyDistro != "" {
		return h.PrettyDistro
	}
	return h.Platform + " " + h.PlatformVersion
}

// Container operations accepted by POST /containers/operate.
const (
	StartContainer   = "start"
	StopContainer    = "stop"
	RestartContainer = "restart"
	PauseContainer   = "pause"
	UnpauseContainer = "unpause"
)

func IsContainerOperation(op string) bool {
	switch op {
	case StartContainer, StopContainer, RestartContainer, PauseContainer, UnpauseContainer:
		return true
	}
	return false
}

type ContainerSummary struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	ImageName string `json:"imageName"`
}

type ContainerPage struct {
	Items []ContainerSummary `json:"items"`
	Total int64              `json:"total"`
}

type InstalledApp struct {
	Name    string `json:"name"`
	AppName string `json:"appName"`
	Status  string `json:"status"`
	Version string `json:"version"`
	App     struct {
		Name string `json:"name"`
	} `json:"app"`
}

// CatalogName is the upstream app name, wherever the panel put it.
func (a *InstalledApp) CatalogName() string {
	if a.App.Name != "" {
		return a.App.Name
	}
	return a.AppName
}

type AppPage struct {
	Items []InstalledApp `json:"items"`
	Total int64          `json:"total"`
}

type SSHLogEntry struct {
	Date    string `json:"date"`
	Address string `json:"address"`
	User    string `json:"user"`
	Status  string `json:"status"`
}

type SSHLogPage struct {
	Logs  []SSHLogEntry `json:"logs"`
	Total int64         `json:"total"`
}

type FirewallRule struct {
	Port        string `json:"port"`
	Protocol    string `json:"protocol"`
	Strategy    string `json:"strategy"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

type FirewallRulePage struct {
	Items []FirewallRule `json:"items"`
	Total int64          `json:"total"`
}

type CronJob struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Spec   string `json:"spec"`
}

type CronJobPage struct {
	Items []CronJob `json:"items"`
	Total int64     `json:"total"`
}
