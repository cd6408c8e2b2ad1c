package service

import (
	"context"
	"fmt"
	"strings"
)

func (s *BotService) appsReply(ctx context.Context) string {
	page, err := s.panel.InstalledApps(ctx, 1, s.cfg.Panel.PageSize)
	if err != nil {
		return errReply("fetch app list", err)
	}
	if len(page.Items) == 0 {
		return "📦 No installed apps"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📦 Installed apps (%d total)\n\n", page.Total)
	for _, app := range page.Items {
		b.WriteString(appStatusIcon(app.Status) + " " + app.Name)
		if catalog := app.CatalogName(); catalog != "" && catalog != app.Name {
			b.WriteString(" (" + catalog + ")")
		}
		if app.Version != "" {
			b.WriteString(" v" + app.Version)
		}
		b.WriteString("\n")
	}
	return b.String()
}
