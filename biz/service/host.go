package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	sshLogPageSize    = 10
	firewallPageSize  = 50
	firewallListLimit = 20
)

func (s *BotService) sshReply(ctx context.Context, args []string) string {
	page := 1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			page = n
		}
	}
	status := "All"
	if len(args) > 1 {
		status = args[1]
	}

	logs, err := s.panel.SSHLogs(ctx, page, sshLogPageSize, status)
	if err != nil {
		return errReply("fetch SSH log", err)
	}
	if len(logs.Logs) == 0 {
		return "📋 No SSH login records"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔐 SSH login log (page %d, %d total)\n\n", page, logs.Total)
	for _, entry := range logs.Logs {
		icon := "❌"
		if entry.Status == "Success" {
			icon = "✅"
		}
		fmt.Fprintf(&b, "%s %s\n   %s@%s\n", icon, entry.Date, entry.User, entry.Address)
	}
	b.WriteString("\n💡 Next page: /panel ssh <page>")
	return b.String()
}

func (s *BotService) firewallReply(ctx context.Context, args []string) string {
	ruleType := "port"
	if len(args) > 0 && args[0] == "address" {
		ruleType = "address"
	}

	rules, err := s.panel.FirewallRules(ctx, ruleType, 1, firewallPageSize)
	if err != nil {
		return errReply("fetch firewall rules", err)
	}
	if len(rules.Items) == 0 {
		return "🔥 No firewall rules"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔥 Firewall rules (%d total)\n\n", rules.Total)
	shown := rules.Items
	if len(shown) > firewallListLimit {
		shown = shown[:firewallListLimit]
	}
	for _, rule := range shown {
		icon := "🚫"
		if rule.Strategy == "accept" {
			icon = "✅"
		}
		if ruleType == "port" {
			fmt.Fprintf(&b, "%s %s/%s", icon, rule.Port, rule.Protocol)
			if rule.Description != "" {
				b.WriteString(" - " + rule.Description)
			}
			b.WriteString("\n")
		} else {
			fmt.Fprintf(&b, "%s %s\n", icon, rule.Address)
		}
	}
	if rules.Total > firewallListLimit {
		fmt.Fprintf(&b, "\n... %d more rules", rules.Total-firewallListLimit)
	}
	return b.String()
}

func (s *BotService) cronReply(ctx context.Context) string {
	jobs, err := s.panel.CronJobs(ctx, 1, s.cfg.Panel.PageSize)
	if err != nil {
		return errReply("fetch cron jobs", err)
	}
	if len(jobs.Items) == 0 {
		return "⏰ No cron jobs"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⏰ Cron jobs (%d total)\n\n", jobs.Total)
	for _, job := range jobs.Items {
		icon := "🔴"
		if job.Status == "Enable" {
			icon = "🟢"
		}
		fmt.Fprintf(&b, "%s %s\n   type: %s | %s\n", icon, job.Name, job.Type, job.Spec)
	}
	return b.String()
}
