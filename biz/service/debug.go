package service

import (
	"bytes"
	"context"
	"encoding/json"
)

// debugDumpLimit keeps raw API dumps chat-sized.
const debugDumpLimit = 1500

// debugReply dumps the raw payload of a dashboard area. Kept around for
// diagnosing field renames after panel upgrades.
func (s *BotService) debugReply(ctx context.Context, args []string) string {
	area := "base"
	if len(args) > 0 {
		area = args[0]
	}

	data, err := s.panel.Snapshot(ctx, area)
	if err != nil {
		return errReply("fetch "+area+" snapshot", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		buf.Reset()
		buf.Write(data)
	}
	dump := buf.String()
	if len(dump) > debugDumpLimit {
		dump = dump[:debugDumpLimit] + "\n..."
	}
	return "📋 API response (" + area + "):\n```\n" + dump + "\n```\n\n💡 Available: /panel debug base|status|info"
}
