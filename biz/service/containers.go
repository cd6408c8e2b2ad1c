package service

import (
	"context"
	"fmt"
	"strings"

	"panelbot/biz/domain"
)

// containerListLimit caps how many containers one chat reply shows.
const containerListLimit = 15

func (s *BotService) dockerReply(ctx context.Context, args []string) string {
	if len(args) > 0 && domain.IsContainerOperation(args[0]) {
		return s.operateContainerReply(ctx, args)
	}

	page, err := s.panel.SearchContainers(ctx, 1, s.cfg.Panel.PageSize)
	if err != nil {
		return errReply("fetch container list", err)
	}
	if len(page.Items) == 0 {
		return "📦 No containers"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🐳 Containers (%d total)\n\n", page.Total)
	shown := page.Items
	if len(shown) > containerListLimit {
		shown = shown[:containerListLimit]
	}
	for _, c := range shown {
		fmt.Fprintf(&b, "%s %s\n   image: %s\n", containerStateIcon(c.State), c.Name, shortImage(c.ImageName))
	}
	if page.Total > containerListLimit {
		fmt.Fprintf(&b, "\n... %d more containers", page.Total-containerListLimit)
	}
	b.WriteString("\n\n💡 Operate: /panel docker start|stop|restart <name>")
	return b.String()
}

func (s *BotService) operateContainerReply(ctx context.Context, args []string) string {
	operation := args[0]
	if len(args) < 2 {
		return fmt.Sprintf("❌ Container name required\nUsage: /panel docker %s <name>", operation)
	}
	name := args[1]

	if err := s.panel.OperateContainer(ctx, name, operation); err != nil {
		return "❌ Operation failed: " + err.Error()
	}
	return fmt.Sprintf("✅ Container %s: %s done", name, operation)
}
