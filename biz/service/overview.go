package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"panelbot/biz/domain"
)

func (s *BotService) statusReply(ctx context.Context) string {
	status, err := s.panel.CurrentStatus(ctx, true)
	if err != nil {
		return errReply("fetch system status", err)
	}

	var b strings.Builder
	b.WriteString("📊 System status\n\n")
	fmt.Fprintf(&b, "🔲 CPU: %.2f%% (%d cores)\n", status.CPUUsedPercent, status.CPUCores)
	fmt.Fprintf(&b, "💾 Memory: %.2f%% (%s / %s)\n", status.MemoryUsedPercent,
		formatBytes(float64(status.MemoryUsed)), formatBytes(float64(status.MemoryTotal)))
	fmt.Fprintf(&b, "⚡ Load: %.2f (%s)\n", status.Load1, loadVerdict(status.Load1))
	writeDisks(&b, "", status.DiskData)
	b.WriteString("\n🌐 Network:\n")
	writeNetwork(&b, status)
	return b.String()
}

func (s *BotService) infoReply(ctx context.Context) string {
	info, err := s.panel.DashboardBase(ctx)
	if err != nil {
		return errReply("fetch host info", err)
	}

	var b strings.Builder
	b.WriteString("📋 Host info\n\n")
	writeHostInfo(&b, info)
	return b.String()
}

// overviewReply combines info and status in one reply. Partial data is fine:
// only when both calls fail does the user get an error.
func (s *BotService) overviewReply(ctx context.Context) string {
	status, statusErr := s.panel.CurrentStatus(ctx, true)
	info, infoErr := s.panel.DashboardBase(ctx)
	if statusErr != nil && infoErr != nil {
		return errReply("fetch server overview", infoErr)
	}

	var b strings.Builder
	b.WriteString("🖥️ 1Panel server overview\n")
	b.WriteString(strings.Repeat("=", 20) + "\n\n")

	if info != nil {
		writeHostInfo(&b, info)
		b.WriteString("\n")
	}
	if status != nil {
		cores := status.CPUCores
		if cores == 0 && info != nil {
			cores = info.CPUCores
		}
		if cores == 0 {
			cores = 1
		}
		loadPercent := status.Load1 / float64(cores) * 100

		b.WriteString("📊 Status\n")
		fmt.Fprintf(&b, "  ⚡ Load: %.2f%% (%s)\n", loadPercent, loadVerdict(status.Load1))
		fmt.Fprintf(&b, "  🔲 CPU: %.2f%% (%d cores)\n", status.CPUUsedPercent, cores)
		fmt.Fprintf(&b, "  💾 Memory: %.2f%% (%s / %s)\n", status.MemoryUsedPercent,
			formatBytes(float64(status.MemoryUsed)), formatBytes(float64(status.MemoryTotal)))
		writeDisks(&b, "  ", status.DiskData)
		b.WriteString("\n🌐 Network\n")
		writeNetwork(&b, status)
	}
	return b.String()
}

func writeHostInfo(b *strings.Builder, info *domain.HostInfo) {
	fmt.Fprintf(b, "🏠 Hostname: %s\n", info.Hostname)
	fmt.Fprintf(b, "🐧 Distro: %s\n", info.Distro())
	if info.KernelVersion != "" {
		fmt.Fprintf(b, "🔧 Kernel: %s\n", info.KernelVersion)
	}
	if info.KernelArch != "" {
		fmt.Fprintf(b, "🖥️ Arch: %s\n", info.KernelArch)
	}
	if info.IPV4Addr != "" {
		fmt.Fprintf(b, "🌐 Address: %s\n", info.IPV4Addr)
	}
	if info.BootTime > 0 {
		fmt.Fprintf(b, "📅 Booted: %s\n", time.Unix(info.BootTime, 0).Format("2006-01-02 15:04:05"))
	}
	if info.UptimeSeconds > 0 {
		fmt.Fprintf(b, "⏱️ Uptime: %s\n", formatUptime(info.UptimeSeconds))
	}
}

func writeDisks(b *strings.Builder, indent string, disks []domain.DiskUsage) {
	for _, d := range disks {
		fmt.Fprintf(b, "%s💿 Disk %s: %.2f%% (%s / %s)\n", indent, d.Path, d.UsedPercent,
			formatBytes(float64(d.Used)), formatBytes(float64(d.Total)))
	}
}

func writeNetwork(b *strings.Builder, status *domain.CurrentStatus) {
	fmt.Fprintf(b, "  ↑ out: %s/s | total sent: %s\n",
		formatBytes(float64(status.NetSentPerSec)), formatBytes(float64(status.NetBytesSent)))
	fmt.Fprintf(b, "  ↓ in: %s/s | total received: %s\n",
		formatBytes(float64(status.NetRecvPerSec)), formatBytes(float64(status.NetBytesRecv)))
}
