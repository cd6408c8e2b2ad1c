// go:build wireinject
//go:build wireinject
// +build wireinject

package di

import (
	"panelbot/biz/router"
	"panelbot/biz/service"
	"panelbot/biz/webapi"
	"panelbot/config"

	"github.com/google/wire"
)

var ProviderSet wire.ProviderSet = wire.NewSet(
	service.NewBotService,
	webapi.CreateOnePanelAPI,

	wire.Bind(new(router.BotService), new(*service.BotService)),
	wire.Bind(new(service.PanelAPI), new(*webapi.OnePanelAPI)),
)

func InitBotService(cfg *config.Config) *service.BotService {
	wire.Build(
		ProviderSet,
	)
	return nil
}
