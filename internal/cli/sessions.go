package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "View agent sessions",
	}
	cmd.AddCommand(newSessionsListCmd(app))
	cmd.AddCommand(newSessionsDeleteCmd(app))
	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sessions (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			sessions, err := client.ListSessions(cmd.Context(), projectID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sessions})
		},
	}
}

func newSessionsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a finished session and its transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, app, fmt.Sprintf("Delete session %s?", args[0])) {
				return writeOut(cmd, app, map[string]any{"data": map[string]bool{"cancelled": true}})
			}
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			err = client.DeleteSession(cmd.Context(), projectID, args[0])
			recordHistory(cmd.Context(), projectID, "delete", "session", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]bool{"deleted": true}})
		},
	}
}
