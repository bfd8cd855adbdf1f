package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/format"
	"claudetask-cli/internal/logging"
	"claudetask-cli/internal/store"
	"claudetask-cli/internal/tui"
)

type App struct {
	Server     string
	ProjectID  string
	PrettyJSON bool
	Format     string
	Yes        bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "claudetask",
		Short:        "ClaudeTask console (CLI + TUI) for the agent backend",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive console
  claudetask

  # Scriptable commands
  claudetask hooks list --bucket enabled
  claudetask files ls --path src
  claudetask logs list --level error
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Server, "server", envOr("CLAUDETASK_SERVER", ""), "Backend base URL (default: serverUrl from ~/.claudetask/config.json)")
	cmd.PersistentFlags().StringVar(&app.ProjectID, "project", envOr("CLAUDETASK_PROJECT", ""), "Project id (default: currentProjectId from config)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("CLAUDETASK_FORMAT", "json"), "Output format (json|yaml)")
	cmd.PersistentFlags().BoolVar(&app.Yes, "yes", false, "Skip confirmation prompts for destructive commands")

	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newFilesCmd(app))
	cmd.AddCommand(newHooksCmd(app))
	cmd.AddCommand(newSkillsCmd(app))
	cmd.AddCommand(newMCPCmd(app))
	cmd.AddCommand(newLogsCmd(app))
	cmd.AddCommand(newSessionsCmd(app))
	cmd.AddCommand(newHistoryCmd(app))

	return cmd
}

func runTUI(app *App) error {
	client, err := newClient(app)
	if err != nil {
		return err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	projectID := app.ProjectID
	if projectID == "" {
		projectID = cfg.CurrentProjectID
	}
	return tui.Run(tui.Options{
		Client:            client,
		ProjectID:         projectID,
		LogRefreshSeconds: cfg.LogRefreshSeconds,
	})
}

// newClient builds the API client from --server, the environment, or the
// config file, in that order.
func newClient(app *App) (*api.Client, error) {
	server := strings.TrimSpace(app.Server)
	if server == "" {
		cfg, err := store.LoadConfig()
		if err != nil {
			return nil, err
		}
		server = strings.TrimSpace(cfg.ServerURL)
	}
	if server == "" {
		return nil, errors.New("no server configured; run `claudetask config set server <url>` (or pass --server)")
	}
	return api.New(api.Config{BaseURL: server, Logger: logging.New()}), nil
}

// resolveProject returns the project id to operate on.
func resolveProject(app *App) (string, error) {
	if app.ProjectID != "" {
		return app.ProjectID, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return "", err
	}
	if cfg.CurrentProjectID != "" {
		return cfg.CurrentProjectID, nil
	}
	return "", errors.New("no current project; run `claudetask projects use <project-id>` (or pass --project)")
}

// confirm asks before a destructive action. Declining means no request is
// issued at all.
func confirm(cmd *cobra.Command, app *App, prompt string) bool {
	if app.Yes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	var answer string
	_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// recordHistory appends to the local activity log. Best effort: a history
// failure never fails the command.
func recordHistory(ctx context.Context, projectID, op, resource, target string, opErr error) {
	h, err := store.OpenHistory()
	if err != nil {
		return
	}
	e := store.HistoryEntry{
		ProjectID: projectID,
		Operation: op,
		Resource:  resource,
		Target:    target,
		OK:        opErr == nil,
	}
	if opErr != nil {
		e.Detail = opErr.Error()
	}
	_ = h.Append(ctx, e)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
