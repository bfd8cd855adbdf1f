package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/listsync"
	"claudetask-cli/internal/model"
)

func newHooksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage agent hooks",
	}
	cmd.AddCommand(newHooksListCmd(app))
	cmd.AddCommand(newHooksCreateCmd(app))
	cmd.AddCommand(newHooksUpdateCmd(app))
	cmd.AddCommand(newHooksDeleteCmd(app))
	cmd.AddCommand(newHookToggleCmd(app, "enable", "Enable a hook"))
	cmd.AddCommand(newHookToggleCmd(app, "disable", "Disable a hook"))
	cmd.AddCommand(newHookToggleCmd(app, "favorite", "Mark a hook as favorite"))
	cmd.AddCommand(newHookToggleCmd(app, "unfavorite", "Remove a hook from favorites"))
	return cmd
}

// hooksAll unions the provenance buckets into the "all" view: duplicates
// removed by composite key, first occurrence wins, order preserved.
func hooksAll(b api.HookBuckets) []model.Hook {
	return listsync.Union(b.AvailableDefault, b.Custom)
}

func newHooksListCmd(app *App) *cobra.Command {
	var bucketName, query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, ok := listsync.ParseBucket(bucketName)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown bucket: %s (want all|default|custom|favorite|enabled)", bucketName))
			}
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			buckets, err := client.ListHooks(cmd.Context(), projectID)
			if err != nil {
				return writeErr(cmd, err)
			}
			hooks := listsync.Filter(listsync.InBucket(hooksAll(buckets), bucket), query)
			return writeOut(cmd, app, map[string]any{"data": hooks})
		},
	}
	cmd.Flags().StringVar(&bucketName, "bucket", "all", "Bucket filter (all|default|custom|favorite|enabled)")
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive text filter over name/description/category")
	return cmd
}

func newHooksCreateCmd(app *App) *cobra.Command {
	var req api.CreateHookRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom hook",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			h, err := client.CreateHook(cmd.Context(), projectID, req)
			recordHistory(cmd.Context(), projectID, "create", "hook", req.Name, err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": h})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Hook name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category")
	cmd.Flags().StringVar(&req.EventType, "event", "", "Event type (e.g. pre-commit, on-save)")
	cmd.Flags().StringVar(&req.Command, "command", "", "Command to run")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("event")
	_ = cmd.MarkFlagRequired("command")
	return cmd
}

func newHooksUpdateCmd(app *App) *cobra.Command {
	var req api.CreateHookRequest

	cmd := &cobra.Command{
		Use:   "update <hook-id>",
		Short: "Update a custom hook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			h, err := client.UpdateHook(cmd.Context(), projectID, args[0], req)
			recordHistory(cmd.Context(), projectID, "update", "hook", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": h})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Hook name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category")
	cmd.Flags().StringVar(&req.EventType, "event", "", "Event type")
	cmd.Flags().StringVar(&req.Command, "command", "", "Command to run")
	return cmd
}

func newHooksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <hook-id>",
		Short: "Delete a custom hook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, app, fmt.Sprintf("Delete hook %s?", args[0])) {
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
			err = client.DeleteHook(cmd.Context(), projectID, args[0])
			recordHistory(cmd.Context(), projectID, "delete", "hook", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]bool{"deleted": true}})
		},
	}
}

func newHookToggleCmd(app *App, action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <hook-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			switch action {
			case "enable":
				err = client.EnableHook(cmd.Context(), projectID, args[0])
			case "disable":
				err = client.DisableHook(cmd.Context(), projectID, args[0])
			case "favorite":
				err = client.FavoriteHook(cmd.Context(), projectID, args[0])
			case "unfavorite":
				err = client.UnfavoriteHook(cmd.Context(), projectID, args[0])
			}
			recordHistory(cmd.Context(), projectID, action, "hook", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"id": args[0], "action": action}})
		},
	}
}
