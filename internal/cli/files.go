package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"claudetask-cli/internal/pathutil"
)

func newFilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Browse and edit project files",
	}
	cmd.AddCommand(newFilesLsCmd(app))
	cmd.AddCommand(newFilesCatCmd(app))
	cmd.AddCommand(newFilesWriteCmd(app))
	cmd.AddCommand(newFilesMkdirCmd(app))
	cmd.AddCommand(newFilesTouchCmd(app))
	cmd.AddCommand(newFilesRmCmd(app))
	cmd.AddCommand(newFilesRenameCmd(app))
	cmd.AddCommand(newFilesCpCmd(app))
	cmd.AddCommand(newFilesMvCmd(app))
	return cmd
}

func newFilesLsCmd(app *App) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			listing, err := client.ListFiles(cmd.Context(), projectID, path)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": listing})
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "Directory path (empty for the project root)")
	return cmd
}

func newFilesCatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file's content",
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
			content, err := client.ReadFile(cmd.Context(), projectID, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newFilesWriteCmd(app *App) *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Replace a file's content (from --from-file or stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var content []byte
			var err error
			if fromFile != "" {
				content, err = os.ReadFile(fromFile)
			} else {
				content, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return writeErr(cmd, err)
			}

			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			err = client.WriteFile(cmd.Context(), projectID, args[0], string(content))
			recordHistory(cmd.Context(), projectID, "save", "file", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"path": args[0]}})
		},
	}
	cmd.Flags().StringVar(&fromFile, "from-file", "", "Read content from a local file instead of stdin")
	return cmd
}

func newFilesMkdirCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fileMutation(cmd, app, "create", args[0], func(projectID string) error {
				client, err := newClient(app)
				if err != nil {
					return err
				}
				return client.CreateDirectory(cmd.Context(), projectID, args[0])
			})
		},
	}
}

func newFilesTouchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "touch <path>",
		Short: "Create an empty file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fileMutation(cmd, app, "create", args[0], func(projectID string) error {
				client, err := newClient(app)
				if err != nil {
					return err
				}
				return client.CreateFile(cmd.Context(), projectID, args[0])
			})
		},
	}
}

func newFilesRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, app, fmt.Sprintf("Delete %s?", args[0])) {
				return writeOut(cmd, app, map[string]any{"data": map[string]bool{"cancelled": true}})
			}
			return fileMutation(cmd, app, "delete", args[0], func(projectID string) error {
				client, err := newClient(app)
				if err != nil {
					return err
				}
				return client.DeleteEntry(cmd.Context(), projectID, args[0])
			})
		},
	}
}

func newFilesRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old-path> <new-path>",
		Short: "Rename or move an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fileMutation(cmd, app, "rename", args[0], func(projectID string) error {
				client, err := newClient(app)
				if err != nil {
					return err
				}
				return client.RenameEntry(cmd.Context(), projectID, args[0], args[1])
			})
		},
	}
}

func newFilesCpCmd(app *App) *cobra.Command {
	var dir bool

	cmd := &cobra.Command{
		Use:   "cp <source-path> <dest-dir>",
		Short: "Copy an entry into a directory, resolving name collisions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projectID, err := resolveProject(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			// Collision resolution needs the destination's existing names.
			listing, err := client.ListFiles(cmd.Context(), projectID, args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			existing := make(map[string]bool, len(listing.Entries))
			for _, e := range listing.Entries {
				existing[e.Name] = true
			}
			name := pathutil.ResolveCollision(existing, pathutil.Base(args[0]), dir)
			dest := pathutil.Join(args[1], name)

			err = client.CopyEntry(cmd.Context(), projectID, args[0], dest)
			recordHistory(cmd.Context(), projectID, "copy", "file", args[0], err)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"destPath": dest}})
		},
	}
	cmd.Flags().BoolVar(&dir, "dir", false, "Source is a directory (affects collision naming)")
	return cmd
}

func newFilesMvCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <source-path> <dest-path>",
		Short: "Move an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fileMutation(cmd, app, "move", args[0], func(projectID string) error {
				client, err := newClient(app)
				if err != nil {
					return err
				}
				return client.MoveEntry(cmd.Context(), projectID, args[0], args[1])
			})
		},
	}
}

func fileMutation(cmd *cobra.Command, app *App, op, target string, fn func(projectID string) error) error {
	projectID, err := resolveProject(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	err = fn(projectID)
	recordHistory(cmd.Context(), projectID, op, "file", target, err)
	if err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, map[string]any{"data": map[string]string{"path": target}})
}
