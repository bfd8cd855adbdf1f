package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/listsync"
	"claudetask-cli/internal/model"
)

func newSkillsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Manage agent skills",
	}
	cmd.AddCommand(newSkillsListCmd(app))
	cmd.AddCommand(newSkillsShowCmd(app))
	cmd.AddCommand(newSkillsCreateCmd(app))
	cmd.AddCommand(newSkillsUpdateCmd(app))
	cmd.AddCommand(newSkillsDeleteCmd(app))
	cmd.AddCommand(newSkillToggleCmd(app, "enable", "Enable a skill"))
	cmd.AddCommand(newSkillToggleCmd(app, "disable", "Disable a skill"))
	cmd.AddCommand(newSkillToggleCmd(app, "favorite", "Mark a skill as favorite"))
	cmd.AddCommand(newSkillToggleCmd(app, "unfavorite", "Remove a skill from favorites"))
	return cmd
}

func skillsAll(b api.SkillBuckets) []model.Skill {
	return listsync.Union(b.AvailableDefault, b.Custom)
}

func newSkillsListCmd(app *App) *cobra.Command {
	var bucketName, query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List skills",
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
			buckets, err := client.ListSkills(cmd.Context(), projectID)
			if err != nil {
				return writeErr(cmd, err)
			}
			skills := listsync.Filter(listsync.InBucket(skillsAll(buckets), bucket), query)
			return writeOut(cmd, app, map[string]any{"data": skills})
		},
	}
	cmd.Flags().StringVar(&bucketName, "bucket", "all", "Bucket filter (all|default|custom|favorite|enabled)")
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive text filter over name/description/category")
	return cmd
}

func newSkillsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <skill-id>",
		Short: "Show one skill including its markdown content",
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
			s, err := client.GetSkill(cmd.Context(), projectID, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": s})
		},
	}
}

func skillContentFlags(cmd *cobra.Command, req *api.CreateSkillRequest, fromFile *string) {
	cmd.Flags().StringVar(&req.Name, "name", "", "Skill name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category")
	cmd.Flags().StringVar(fromFile, "from-file", "", "Read markdown content from a local file (default: stdin)")
}

func readSkillContent(cmd *cobra.Command, fromFile string) (string, error) {
	if fromFile != "" {
		b, err := os.ReadFile(fromFile)
		return string(b), err
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	return string(b), err
}

func newSkillsCreateCmd(app *App) *cobra.Command {
	var req api.CreateSkillRequest
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom skill",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readSkillContent(cmd, fromFile)
			if err != nil {
				return writeErr(cmd, err)
			}
			req.Content = content

			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := client.CreateSkill(cmd.Context(), projectID, req)
			recordHistory(cmd.Context(), projectID, "create", "skill", req.Name, err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": s})
		},
	}
	skillContentFlags(cmd, &req, &fromFile)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newSkillsUpdateCmd(app *App) *cobra.Command {
	var req api.CreateSkillRequest
	var fromFile string

	cmd := &cobra.Command{
		Use:   "update <skill-id>",
		Short: "Update a custom skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readSkillContent(cmd, fromFile)
			if err != nil {
				return writeErr(cmd, err)
			}
			req.Content = content

			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := client.UpdateSkill(cmd.Context(), projectID, args[0], req)
			recordHistory(cmd.Context(), projectID, "update", "skill", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": s})
		},
	}
	skillContentFlags(cmd, &req, &fromFile)
	return cmd
}

func newSkillsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <skill-id>",
		Short: "Delete a custom skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, app, fmt.Sprintf("Delete skill %s?", args[0])) {
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
			err = client.DeleteSkill(cmd.Context(), projectID, args[0])
			recordHistory(cmd.Context(), projectID, "delete", "skill", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]bool{"deleted": true}})
		},
	}
}

func newSkillToggleCmd(app *App, action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <skill-id>",
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
				err = client.EnableSkill(cmd.Context(), projectID, args[0])
			case "disable":
				err = client.DisableSkill(cmd.Context(), projectID, args[0])
			case "favorite":
				err = client.FavoriteSkill(cmd.Context(), projectID, args[0])
			case "unfavorite":
				err = client.UnfavoriteSkill(cmd.Context(), projectID, args[0])
			}
			recordHistory(cmd.Context(), projectID, action, "skill", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"id": args[0], "action": action}})
		},
	}
}
