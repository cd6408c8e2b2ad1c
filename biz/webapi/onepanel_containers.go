package webapi

import (
	"context"
	"net/http"

	"panelbot/biz/domain"
)

const (
	pathContainerSearch  = "/api/v2/containers/search"
	pathContainerOperate = "/api/v2/containers/operate"
)

type containerSearchReq struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Filters  string `json:"filters"`
	Name     string `json:"name"`
	State    string `json:"state"`
	OrderBy  string `json:"orderBy"`
	Order    string `json:"order"`
}

func (p *OnePanelAPI) SearchContainers(ctx context.Context, page, pageSize int) (*domain.ContainerPage, error) {
	req := containerSearchReq{
		Page:     page,
		PageSize: pageSize,
		State:    "all",
		OrderBy:  "name",
		Order:    "null",
	}
	var out domain.ContainerPage
	if err := p.post(ctx, pathContainerSearch, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type containerOperateReq struct {
	Names     []string `json:"names"`
	Operation string   `json:"operation"`
}

// OperateContainer runs start/stop/restart/pause/unpause against a container
// name. Uses the longer timeout: image-heavy restarts are slow.
func (p *OnePanelAPI) OperateContainer(ctx context.Context, name, operation string) error {
	req := containerOperateReq{
		Names:     []string{name},
		Operation: operation,
	}
	_, err := p.call(ctx, p.operateClient, http.MethodPost, pathContainerOperate, req)
	return err
}
