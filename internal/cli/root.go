package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks bad input from the command line.
type UsageError struct {
	Msg  string
	Hint string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// App carries what every subcommand needs once the root pre-run has opened
// the store.
type App struct {
	ConfigPath string
	Backend    string
	DataPath   string
	LogLevel   string
	LogFormat  string
	Group      bool
	NoColor    bool
	ForceColor bool

	Config  *config.Config
	Log     *log.Logger
	Todos   *todo.Store
	backend store.Backend
	stderr  io.Writer
}

func (a *App) close() {
	if a.backend == nil {
		return
	}
	if err := a.backend.Close(); err != nil {
		a.Log.Error("closing store", "err", err)
	}
	a.backend = nil
}

// NewRootCmd builds the command tree. Diagnostics go to stderr.
func NewRootCmd(stderr io.Writer) (*cobra.Command, *App) {
	app := &App{stderr: stderr, Log: logging.Discard()}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A tiny todo list with a terminal UI",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  # Scriptable commands
  todo add "Buy milk"
  todo ls --filter active
  todo done 2
  todo mv 3 1
  todo theme dark
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(app.Todos, app.Log)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", "", "config file (default ./.tada.toml or <config dir>/tada/config.toml)")
	pf.StringVar(&app.Backend, "backend", config.DefaultBackend, "storage backend: "+strings.Join(store.Backends(), ", "))
	pf.StringVar(&app.DataPath, "data", "", "data file (default tada.json or tada.db)")
	pf.StringVar(&app.LogLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&app.LogFormat, "log-format", config.DefaultLogFormat, "log format: text, json, logfmt")
	pf.BoolVar(&app.Group, "group", false, "group output by pending/done")
	pf.BoolVar(&app.NoColor, "no-color", false, "disable colors")
	pf.BoolVar(&app.ForceColor, "color", false, "force colors even when not a TTY")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error()}
	})

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.open(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		app.close()
		return nil
	}

	cmd.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newDoneCmd(app),
		newRemoveCmd(app),
		newClearCmd(app),
		newMoveCmd(app),
		newThemeCmd(app),
		newExportCmd(app),
		newTUICmd(app),
	)
	return cmd, app
}

// open resolves config (file < env < flags), builds the logger and loads the store.
func (a *App) open(cmd *cobra.Command) error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	var o config.Overrides
	if flags.Changed("backend") {
		o.Backend = &a.Backend
	}
	if flags.Changed("data") {
		o.DataPath = &a.DataPath
	}
	if flags.Changed("log-level") {
		o.LogLevel = &a.LogLevel
	}
	if flags.Changed("log-format") {
		o.LogFormat = &a.LogFormat
	}
	if flags.Changed("group") {
		o.Group = &a.Group
	}
	cfg.Override(o)
	if err := cfg.Validate(); err != nil {
		return &UsageError{Msg: "config: " + err.Error()}
	}
	a.Config = cfg

	a.Log = logging.NewFromConfig(a.stderr, cfg.LogLevel, cfg.LogFormat)
	ui.SetColorForcing(a.ForceColor, a.NoColor)

	backend, err := store.Open(cfg.Backend, cfg.ResolvedDataPath())
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	a.backend = backend
	a.Log.Debug("store opened", "backend", cfg.Backend, "path", cfg.ResolvedDataPath(), "config", cfg.File)

	a.Todos = todo.New(backend, todo.WithLogger(a.Log))
	ui.SetTheme(a.Todos.Theme())
	return nil
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd, app := NewRootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	app.close()
	if err == nil {
		return ExitOK
	}

	ui.Fail(stderr, err.Error())
	var ue *UsageError
	if errors.As(err, &ue) {
		if ue.Hint != "" {
			ui.Hint(stderr, ue.Hint)
		}
		return ExitUsage
	}
	if strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}
	return ExitError
}

// Main is the entrypoint used by cmd/todo.
func Main() int {
	return Execute(os.Args[1:], os.Stdout, os.Stderr)
}
