package webapi

import (
	"context"

	"panelbot/biz/domain"
)

const (
	pathSSHLog         = "/api/v2/hosts/ssh/log"
	pathFirewallSearch = "/api/v2/hosts/firewall/search"
	pathCronjobSearch  = "/api/v2/cronjobs/search"
)

type sshLogReq struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Status   string `json:"status"`
}

// SSHLogs pages through the host's SSH login history. Status is one of
// All, Success, Failed.
func (p *OnePanelAPI) SSHLogs(ctx context.Context, page, pageSize int, status string) (*domain.SSHLogPage, error) {
	req := sshLogReq{
		Page:     page,
		PageSize: pageSize,
		Status:   status,
	}
	var out domain.SSHLogPage
	if err := p.post(ctx, pathSSHLog, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type firewallSearchReq struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Type     string `json:"type"`
}

// FirewallRules lists rules of the given type, port or address.
func (p *OnePanelAPI) FirewallRules(ctx context.Context, ruleType string, page, pageSize int) (*domain.FirewallRulePage, error) {
	req := firewallSearchReq{
		Page:     page,
		PageSize: pageSize,
		Type:     ruleType,
	}
	var out domain.FirewallRulePage
	if err := p.post(ctx, pathFirewallSearch, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type cronSearchReq struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	OrderBy  string `json:"orderBy"`
	Order    string `json:"order"`
}

func (p *OnePanelAPI) CronJobs(ctx context.Context, page, pageSize int) (*domain.CronJobPage, error) {
	req := cronSearchReq{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  "name",
		Order:    "null",
	}
	var out domain.CronJobPage
	if err := p.post(ctx, pathCronjobSearch, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
