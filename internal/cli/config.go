package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"claudetask-cli/internal/store"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Local console configuration",
	}
	cmd.AddCommand(newConfigGetCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the local configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration key (server|project|log-refresh)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			switch args[0] {
			case "server":
				cfg.ServerURL = args[1]
			case "project":
				cfg.CurrentProjectID = args[1]
			case "log-refresh":
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 0 {
					return writeErr(cmd, fmt.Errorf("log-refresh wants a non-negative integer (seconds), got %q", args[1]))
				}
				cfg.LogRefreshSeconds = n
			default:
				return writeErr(cmd, fmt.Errorf("unknown key: %s (want server|project|log-refresh)", args[0]))
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}
}

func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the backend is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.Ping(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"server": client.BaseURL(), "ok": true}})
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent local activity (mutations issued from this machine)",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := store.OpenHistory()
			if err != nil {
				return writeErr(cmd, err)
			}
			entries, err := h.Recent(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": entries})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum entries to show")
	return cmd
}
