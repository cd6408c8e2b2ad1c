package service

import (
	"context"
	"encoding/json"
	"strings"

	"panelbot/biz/domain"
	"panelbot/config"
)

// PanelAPI is everything the command handlers need from the 1Panel client.
type PanelAPI interface {
	CurrentStatus(ctx context.Context, withNetRates bool) (*domain.CurrentStatus, error)
	DashboardBase(ctx context.Context) (*domain.HostInfo, error)
	Snapshot(ctx context.Context, area string) (json.RawMessage, error)
	SearchContainers(ctx context.Context, page, pageSize int) (*domain.ContainerPage, error)
	OperateContainer(ctx context.Context, name, operation string) error
	InstalledApps(ctx context.Context, page, pageSize int) (*domain.AppPage, error)
	SSHLogs(ctx context.Context, page, pageSize int, status string) (*domain.SSHLogPage, error)
	FirewallRules(ctx context.Context, ruleType string, page, pageSize int) (*domain.FirewallRulePage, error)
	CronJobs(ctx context.Context, page, pageSize int) (*domain.CronJobPage, error)
}

type BotService struct {
	panel PanelAPI
	cfg   *config.Config
}

func NewBotService(p PanelAPI, cfg *config.Config) *BotService {
	return &BotService{
		panel: p,
		cfg:   cfg,
	}
}

const helpText = `🖥️ 1Panel bot

📊 Monitoring:
/panel status - system status (CPU, memory, load, disks)
/panel info - host info (hostname, distro, uptime)
/panel all - full overview

🐳 Containers:
/panel docker - list containers
/panel docker start|stop|restart <name> - operate a container

📦 Apps:
/panel apps - installed applications

🔐 Security:
/panel ssh [page] - SSH login log
/panel firewall - firewall port rules

⏰ Scheduled jobs:
/panel cron - cron job list`

// Dispatch maps one chat command to one panel call and renders the reply.
// It always returns text; failures become error replies, never panics.
func (s *BotService) Dispatch(ctx context.Context, text string) string {
	if err := s.cfg.PanelReady(); err != nil {
		return "❌ Bot is not configured: " + err.Error()
	}

	args := splitCommand(text)
	if len(args) == 0 {
		return helpText
	}

	switch strings.ToLower(args[0]) {
	case "status":
		return s.statusReply(ctx)
	case "info":
		return s.infoReply(ctx)
	case "all":
		return s.overviewReply(ctx)
	case "docker":
		return s.dockerReply(ctx, args[1:])
	case "apps":
		return s.appsReply(ctx)
	case "ssh":
		return s.sshReply(ctx, args[1:])
	case "firewall":
		return s.firewallReply(ctx, args[1:])
	case "cron":
		return s.cronReply(ctx)
	case "debug":
		return s.debugReply(ctx, args[1:])
	default:
		return "❌ Unknown command: " + args[0] + "\nSend /panel for help"
	}
}

// splitCommand tokenizes the message and drops the leading /panel keyword so
// both "/panel status" and a bare "status" dispatch the same way.
func splitCommand(text string) []string {
	fields := strings.Fields(text)
	if len(fields) > 0 {
		head := strings.ToLower(fields[0])
		if head == "/panel" || head == "panel" {
			fields = fields[1:]
		}
	}
	return fields
}

func errReply(what string, err error) string {
	return "❌ Failed to " + what + ": " + err.Error()
}
