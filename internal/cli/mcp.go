package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/listsync"
)

func newMCPCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Manage MCP server configurations",
	}
	cmd.AddCommand(newMCPListCmd(app))
	cmd.AddCommand(newMCPValidateCmd(app))
	cmd.AddCommand(newMCPCreateCmd(app))
	cmd.AddCommand(newMCPUpdateCmd(app))
	cmd.AddCommand(newMCPDeleteCmd(app))
	cmd.AddCommand(newMCPToggleCmd(app, "enable", "Enable an MCP configuration"))
	cmd.AddCommand(newMCPToggleCmd(app, "disable", "Disable an MCP configuration"))
	return cmd
}

func newMCPListCmd(app *App) *cobra.Command {
	var bucketName, query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List MCP configurations",
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
			configs, err := client.ListMCPConfigs(cmd.Context(), projectID)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := listsync.Filter(listsync.InBucket(configs, bucket), query)
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	cmd.Flags().StringVar(&bucketName, "bucket", "all", "Bucket filter (all|default|custom|favorite|enabled)")
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive text filter over name/description/category")
	return cmd
}

func newMCPValidateCmd(app *App) *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a config body locally (no request is sent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readConfigBody(cmd, fromFile)
			if err != nil {
				return writeErr(cmd, err)
			}
			std, err := api.ValidateMCPConfigJSON(body)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"valid": true, "standardized": std}})
		},
	}
	cmd.Flags().StringVar(&fromFile, "from-file", "", "Read the config body from a local file (default: stdin)")
	return cmd
}

func readConfigBody(cmd *cobra.Command, fromFile string) (string, error) {
	if fromFile != "" {
		b, err := os.ReadFile(fromFile)
		return string(b), err
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	return string(b), err
}

func newMCPCreateCmd(app *App) *cobra.Command {
	var req api.CreateMCPConfigRequest
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an MCP configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readConfigBody(cmd, fromFile)
			if err != nil {
				return writeErr(cmd, err)
			}
			req.ConfigJSON = body

			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg, err := client.CreateMCPConfig(cmd.Context(), projectID, req)
			recordHistory(cmd.Context(), projectID, "create", "mcp", req.Name, err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Configuration name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "Read the config body from a local file (default: stdin)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newMCPUpdateCmd(app *App) *cobra.Command {
	var req api.CreateMCPConfigRequest
	var fromFile string

	cmd := &cobra.Command{
		Use:   "update <config-id>",
		Short: "Update an MCP configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readConfigBody(cmd, fromFile)
			if err != nil {
				return writeErr(cmd, err)
			}
			req.ConfigJSON = body

			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg, err := client.UpdateMCPConfig(cmd.Context(), projectID, args[0], req)
			recordHistory(cmd.Context(), projectID, "update", "mcp", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Configuration name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "Read the config body from a local file (default: stdin)")
	return cmd
}

func newMCPDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <config-id>",
		Short: "Delete an MCP configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, app, fmt.Sprintf("Delete MCP configuration %s?", args[0])) {
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
			err = client.DeleteMCPConfig(cmd.Context(), projectID, args[0])
			recordHistory(cmd.Context(), projectID, "delete", "mcp", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]bool{"deleted": true}})
		},
	}
}

func newMCPToggleCmd(app *App, action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <config-id>",
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
			if action == "enable" {
				err = client.EnableMCPConfig(cmd.Context(), projectID, args[0])
			} else {
				err = client.DisableMCPConfig(cmd.Context(), projectID, args[0])
			}
			recordHistory(cmd.Context(), projectID, action, "mcp", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"id": args[0], "action": action}})
		},
	}
}
