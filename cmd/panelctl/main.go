package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"panelbot/config"
	"panelbot/di"
)

// panelctl runs the same commands the chat bot answers, straight from a
// terminal. Handy for checking a panel before pointing the bot at it.
func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "panelctl",
		Short:         "Query a 1Panel server from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, name := range []string{"status", "info", "all", "docker", "apps", "ssh", "firewall", "cron", "debug"} {
		root.AddCommand(newRunCommand(name))
	}

	if err := root.Execute(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func newRunCommand(name string) *cobra.Command {
	short := map[string]string{
		"status":   "System status (CPU, memory, load, disks)",
		"info":     "Host info (hostname, distro, uptime)",
		"all":      "Full server overview",
		"docker":   "List or operate containers",
		"apps":     "Installed applications",
		"ssh":      "SSH login log",
		"firewall": "Firewall rules",
		"cron":     "Cron job list",
		"debug":    "Raw dashboard payloads",
	}[name]

	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if err := cfg.PanelReady(); err != nil {
				return err
			}

			svc := di.InitBotService(cfg)
			reply := svc.Dispatch(context.Background(), strings.Join(append([]string{name}, args...), " "))
			if strings.HasPrefix(reply, "❌") {
				color.Red("%s", reply)
				return fmt.Errorf("command failed")
			}
			fmt.Println(reply)
			return nil
		},
	}
}
