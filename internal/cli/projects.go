package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/store"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsUseCmd(app))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projects, err := client.ListProjects(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": projects})
		},
	}
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var name, path, template string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project (setup wizard payload)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := client.CreateProject(cmd.Context(), api.CreateProjectRequest{
				Name: name, Path: path, Template: template,
			})
			recordHistory(cmd.Context(), p.ID, "create", "project", name, err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&path, "path", "", "Working tree path on the backend host")
	cmd.Flags().StringVar(&template, "template", "", "Optional project template")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func newProjectsUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <project-id>",
		Short: "Set the current project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg.CurrentProjectID = args[0]
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"currentProjectId": args[0]}})
		},
	}
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Remove a project registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, app, fmt.Sprintf("Delete project %s?", args[0])) {
				return writeOut(cmd, app, map[string]any{"data": map[string]bool{"cancelled": true}})
			}
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			err = client.DeleteProject(cmd.Context(), args[0])
			recordHistory(cmd.Context(), args[0], "delete", "project", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]bool{"deleted": true}})
		},
	}
}
