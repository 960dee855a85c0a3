// Package cli defines the qapp command surface: the default interactive
// browser plus the open and kill subcommands, with direct non-interactive
// paths when an application name is given on the command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	cli "github.com/urfave/cli/v3"

	"github.com/michaelangeloio/qapp/internal/action"
	"github.com/michaelangeloio/qapp/internal/app"
	"github.com/michaelangeloio/qapp/internal/config"
	"github.com/michaelangeloio/qapp/internal/format/table"
	"github.com/michaelangeloio/qapp/internal/icon"
	"github.com/michaelangeloio/qapp/internal/logging"
	"github.com/michaelangeloio/qapp/internal/logging/events"
	"github.com/michaelangeloio/qapp/internal/macos"
	"github.com/michaelangeloio/qapp/internal/theme"
)

// suggestionLimit caps the did-you-mean list under a missed kill lookup.
const suggestionLimit = 3

var styles = theme.Default()

// CLI owns the parsed command tree and the collaborator hooks the command
// actions run against. The hooks default to the production implementations
// and are swapped for scripted ones in tests.
type CLI struct {
	cfg     config.Config
	root    *cli.Command
	rawArgs []string

	stdout      io.Writer
	system      func(appsDir string) action.System
	browse      func(system action.System, cfg app.Config, running []string, icons *icon.Resolver) error
	pick        func(system action.System, cfg app.Config, icons *icon.Resolver) (string, error)
	stdoutIsTTY func() bool

	logFile  string
	trace    bool
	verbose  bool
	noFooter bool
	appsDir  string
}

// New builds the command tree over the resolved configuration. Values from
// the environment and the config file arrive as flag defaults, so explicit
// flags win.
func New(cfg config.Config) *CLI {
	c := &CLI{
		cfg:    cfg,
		stdout: os.Stdout,
		system: func(appsDir string) action.System {
			return macos.System{AppsDir: appsDir}
		},
		browse:      app.Browse,
		pick:        app.OpenSearch,
		stdoutIsTTY: stdoutIsTerminal,
	}
	c.root = &cli.Command{
		Name:    "qapp",
		Usage:   "browse, search, open, and terminate macOS applications",
		Suggest: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to the log file",
				Value:       cfg.Logging.FilePath,
				Destination: &c.logFile,
			},
			&cli.BoolFlag{
				Name:        "trace",
				Usage:       "enable verbose JSON trace logging",
				Value:       cfg.Logging.Trace,
				Destination: &c.trace,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "print confirmation lines for interactive actions",
				Value:       cfg.App.Verbose,
				Destination: &c.verbose,
			},
			&cli.BoolFlag{
				Name:        "no-footer",
				Usage:       "hide the key-hint footer row",
				Value:       !cfg.App.ShowFooter,
				Destination: &c.noFooter,
			},
			&cli.StringFlag{
				Name:        "apps-dir",
				Usage:       "directory scanned for installed application bundles",
				Value:       cfg.App.AppsDir,
				Destination: &c.appsDir,
			},
		},
		Before: c.setup,
		Action: c.runList,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Browse running applications interactively",
				Action: c.runList,
			},
			{
				Name:      "open",
				Usage:     "Open an application by name, or search installed ones",
				ArgsUsage: "[name]",
				Action:    c.runOpen,
			},
			{
				Name:      "kill",
				Usage:     "Ask an application to quit by name, or pick one interactively",
				ArgsUsage: "[name]",
				Action:    c.runKill,
			},
		},
	}
	return c
}

// Run executes the command tree. args follows os.Args: the leading element
// is the program name.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		c.rawArgs = append([]string(nil), args[1:]...)
	}
	return c.root.Run(ctx, args)
}

// setup folds the parsed flag values back into the configuration, brings the
// logger up, and emits the startup trace before any command action runs.
func (c *CLI) setup(ctx context.Context, _ *cli.Command) (context.Context, error) {
	c.cfg.App.AppsDir = c.appsDir
	c.cfg.App.ShowFooter = !c.noFooter
	c.cfg.App.Verbose = c.verbose
	c.cfg.Logging.FilePath = c.logFile
	c.cfg.Logging.Trace = c.trace

	logging.Configure(c.cfg.Logging.FilePath)
	logging.SetTraceEnabled(c.cfg.Logging.Trace)

	c.cfg.Flags = config.TraceFlags(c.cfg)
	c.cfg.Args = c.rawArgs
	events.App.Start(startupTracePayload(c.cfg))
	return ctx, nil
}

// runList shows the running applications: the interactive browser on a
// terminal, a plain aligned table otherwise. The startup query is the one
// collaborator call that is fatal on failure.
func (c *CLI) runList(_ context.Context, _ *cli.Command) error {
	sys := c.system(c.cfg.App.AppsDir)
	running, err := sys.RunningApps()
	if err != nil {
		return err
	}
	if len(running) == 0 {
		c.println(styles.Notice, "No visible applications found.")
		return nil
	}
	icons := icon.NewResolver(c.cfg.Icons)
	if !c.stdoutIsTTY() {
		c.printTable(running, icons)
		return nil
	}
	return c.browse(sys, c.cfg.App, running, icons)
}

func (c *CLI) runOpen(_ context.Context, cmd *cli.Command) error {
	sys := c.system(c.cfg.App.AppsDir)
	if name := cmd.Args().First(); name != "" {
		c.actionLine(styles.Confirm, "Opening:", name)
		if err := sys.Open(name); err != nil {
			events.Action.Error("open", name, err)
			return err
		}
		events.Action.Opened(name)
		return nil
	}
	chosen, err := c.pick(sys, c.cfg.App, icon.NewResolver(c.cfg.Icons))
	if err != nil {
		return err
	}
	if chosen != "" && c.cfg.App.Verbose {
		c.actionLine(styles.Confirm, "Opening:", chosen)
	}
	return nil
}

// runKill resolves the named application against the running snapshot before
// issuing anything: a miss is a clean message plus suggestions, never an
// error. Without a name the full browser takes over, which supports kill.
func (c *CLI) runKill(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return c.runList(ctx, cmd)
	}
	sys := c.system(c.cfg.App.AppsDir)
	running, err := sys.RunningApps()
	if err != nil {
		return err
	}
	if len(running) == 0 {
		c.println(styles.Notice, "No running applications found.")
		return nil
	}
	if !containsName(running, name) {
		c.actionLine(styles.Danger, "Application not running:", name)
		c.printSuggestions(name, running)
		return nil
	}
	c.actionLine(styles.Danger, "Killing:", name)
	if err := sys.Quit(name); err != nil {
		events.Action.Error("kill", name, err)
		var refused *macos.QuitRefusedError
		if errors.As(err, &refused) {
			c.println(styles.Notice, err.Error())
			return nil
		}
		return err
	}
	events.Action.Killed(name)
	return nil
}

func (c *CLI) printTable(names []string, icons *icon.Resolver) {
	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{icons.Resolve(name), name}
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft}) {
		fmt.Fprintln(c.stdout, strings.TrimRight(line, " "))
	}
}

func (c *CLI) printSuggestions(input string, names []string) {
	matches := action.Suggestions(input, names, suggestionLimit)
	if len(matches) == 0 {
		return
	}
	c.println(styles.Notice, "Did you mean:")
	for _, match := range matches {
		fmt.Fprintln(c.stdout, "  "+render(styles.Accent, match))
	}
}

func (c *CLI) println(style *lipgloss.Style, text string) {
	fmt.Fprintln(c.stdout, render(style, text))
}

func (c *CLI) actionLine(style *lipgloss.Style, label, name string) {
	fmt.Fprintln(c.stdout, render(style, label)+" "+render(styles.Accent, name))
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func containsName(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}
