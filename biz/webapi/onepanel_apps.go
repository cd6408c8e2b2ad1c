package webapi

import (
	"context"

	"panelbot/biz/domain"
)

const pathAppInstalledSearch = "/api/v2/apps/installed/search"

type appSearchReq struct {
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
	Name     string   `json:"name"`
	Tags     []string `json:"tags"`
	Update   bool     `json:"update"`
}

func (p *OnePanelAPI) InstalledApps(ctx context.Context, page, pageSize int) (*domain.AppPage, error) {
	req := appSearchReq{
		Page:     page,
		PageSize: pageSize,
		Tags:     []string{},
	}
	var out domain.AppPage
	if err := p.post(ctx, pathAppInstalledSearch, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
