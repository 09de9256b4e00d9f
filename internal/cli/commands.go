package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/export"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// usageArgs turns cobra's argument validation errors into usage errors.
func usageArgs(check cobra.PositionalArgs, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &UsageError{Msg: "usage: " + usage}
		}
		return nil
	}
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new item (text can be multiple words)",
		Args:  usageArgs(cobra.MinimumNArgs(1), "todo add <text...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, ok := app.Todos.Add(strings.Join(args, " "))
			if !ok {
				return usagef("add: empty title")
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d %s", app.Todos.Len(), ui.Current().Muted.Render(idLabel(it.ID))))
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Args:    usageArgs(cobra.NoArgs, "todo ls [--filter all|active|completed]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := model.ParseFilterMode(filter)
			if err != nil {
				return &UsageError{Msg: err.Error()}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderList(app.Todos, mode, app.Config.Group))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.FilterAll), "all, active or completed")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "done <ref>",
		Aliases: []string{"toggle"},
		Short:   "Toggle done for an item (1-based position or id)",
		Args:    usageArgs(cobra.ExactArgs(1), "todo done <ref>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRef(app.Todos, args[0])
			if err != nil {
				return err
			}
			app.Todos.Toggle(id)
			ui.OK(cmd.OutOrStdout(), "toggled")
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <ref>",
		Aliases: []string{"delete"},
		Short:   "Remove an item (1-based position or id)",
		Args:    usageArgs(cobra.ExactArgs(1), "todo rm <ref>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRef(app.Todos, args[0])
			if err != nil {
				return err
			}
			app.Todos.Delete(id)
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every completed item",
		Args:  usageArgs(cobra.NoArgs, "todo clear"),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := app.Todos.ClearCompleted()
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("cleared %d", n))
			return nil
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <ref> <target-ref>",
		Short: "Move an item onto another item's position",
		Long: strings.TrimSpace(`
Move an item to the position the target holds now. Moving an item up puts it
just before the target; moving it down puts it just after the target.`),
		Args: usageArgs(cobra.ExactArgs(2), "todo mv <ref> <target-ref>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			dragged, err := resolveRef(app.Todos, args[0])
			if err != nil {
				return err
			}
			target, err := resolveRef(app.Todos, args[1])
			if err != nil {
				return err
			}
			if !app.Todos.Reorder(dragged, target) {
				ui.OK(cmd.OutOrStdout(), "nothing to move")
				return nil
			}
			ui.OK(cmd.OutOrStdout(), "moved")
			return nil
		},
	}
}

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or set the color theme",
		ValidArgs: []string{"light", "dark", "toggle"},
		Args:      usageArgs(cobra.MaximumNArgs(1), "todo theme [light|dark|toggle]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.Todos.Theme())
				return nil
			}
			if strings.EqualFold(args[0], "toggle") {
				app.Todos.ToggleTheme()
			} else {
				mode, err := model.ParseThemeMode(args[0])
				if err != nil {
					return &UsageError{Msg: err.Error()}
				}
				app.Todos.SetTheme(mode)
			}
			ui.SetTheme(app.Todos.Theme())
			ui.OK(cmd.OutOrStdout(), "theme: "+string(app.Todos.Theme()))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the list to stdout as json, yaml or toml",
		Args:  usageArgs(cobra.NoArgs, "todo export [--format json|yaml|toml]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := export.Write(cmd.OutOrStdout(), app.Todos.Items(), format); err != nil {
				return &UsageError{Msg: err.Error()}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", export.FormatJSON, strings.Join(export.Formats(), ", "))
	return cmd
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive list (same as running todo with no command)",
		Args:  usageArgs(cobra.NoArgs, "todo tui"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(app.Todos, app.Log)
		},
	}
}

// resolveRef maps a command-line reference to an item id. Numbers within
// 1..len are positions in the full list; anything else must be an id.
func resolveRef(s *todo.Store, ref string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(ref), "#"), 10, 64)
	if err != nil {
		return 0, usagef("not a number: %s", ref)
	}
	items := s.Items()
	if n >= 1 && n <= int64(len(items)) {
		return items[n-1].ID, nil
	}
	if _, ok := s.Find(n); ok {
		return n, nil
	}
	return 0, &UsageError{
		Msg:  fmt.Sprintf("no item %s: have %d items", ref, len(items)),
		Hint: "run `todo ls` to see valid positions and ids",
	}
}

func idLabel(id int64) string { return "id " + strconv.FormatInt(id, 10) }
