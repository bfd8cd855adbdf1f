package cli

import (
	"github.com/spf13/cobra"

	"claudetask-cli/internal/api"
)

func newLogsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "View agent logs",
	}
	cmd.AddCommand(newLogsListCmd(app))
	return cmd
}

func newLogsListCmd(app *App) *cobra.Command {
	var offset, limit int
	var level string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List log entries (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			page, err := client.ListLogs(cmd.Context(), projectID, api.LogQuery{
				Offset: offset, Limit: limit, Level: level,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": page})
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	cmd.Flags().IntVar(&limit, "limit", 100, "Page size")
	cmd.Flags().StringVar(&level, "level", "", "Level filter (debug|info|warn|error)")
	return cmd
}
