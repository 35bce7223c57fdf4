package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chmouel/wikitodo/internal/buildinfo"
	"github.com/chmouel/wikitodo/internal/cli"
	"github.com/chmouel/wikitodo/internal/config"
	"github.com/chmouel/wikitodo/internal/log"
	"github.com/chmouel/wikitodo/internal/theme"
	"github.com/chmouel/wikitodo/internal/wiki"
	urfavecli "github.com/urfave/cli/v3"
)

const (
	msgNoTodos     = "No TODOs found!"
	msgBadToggle   = "Invalid input! Please provide TODO numbers as a comma-separated list."
	msgBadAddInput = "Invalid format for --add. Use: --add substring:todo_text"
)

// Options holds the streams a run uses. Selector, when set, replaces the
// interactive choice of the add target.
type Options struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Selector cli.TargetSelector
}

// Run executes the wikitodo command line with the process streams.
func Run(ctx context.Context, args []string) error {
	return NewCommand(Options{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}).Run(ctx, args)
}

// NewCommand builds the root command.
func NewCommand(opts Options) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                      "wikitodo",
		Usage:                     "List, toggle, add and delete TODOs across a vimwiki",
		Version:                   buildinfo.Summary(),
		EnableShellCompletion:     true,
		DisableSliceFlagSeparator: true,
		Reader:                    opts.Stdin,
		Writer:                    opts.Stdout,
		ErrWriter:                 opts.Stderr,
		Flags:                     allFlags(),
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			return opts.action(cmd)
		},
	}
}

func (o Options) action(cmd *urfavecli.Command) error {
	if cmd.Bool("show-themes") {
		printThemes(o.Stdout)
		return nil
	}

	cfg, err := loadCLIConfig(cmd, o.Stderr)
	if err != nil {
		_ = log.Close()
		return err
	}
	setupDebugLog(cfg, o.Stderr)
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintf(o.Stderr, "Error closing debug log: %v\n", err)
		}
	}()

	return o.runTodos(cfg, newRequest(cmd))
}

// request is what the action flags asked for.
type request struct {
	list            bool
	json            bool
	toggle          string
	add             string
	deleteNumber    int
	deleteSet       bool
	deleteCompleted bool
	choice          int
	choiceSet       bool
}

func newRequest(cmd *urfavecli.Command) request {
	req := request{
		list:            cmd.Bool("list"),
		json:            cmd.Bool("json"),
		toggle:          cmd.String("toggle"),
		add:             cmd.String("add"),
		deleteSet:       cmd.IsSet("delete"),
		deleteNumber:    cmd.Int("delete"),
		deleteCompleted: cmd.Bool("delete-completed"),
		choiceSet:       cmd.IsSet("choice"),
		choice:          cmd.Int("choice"),
	}
	if req.json {
		req.list = true
	}
	// Without an action the run lists.
	if !req.list && !cmd.IsSet("toggle") && !cmd.IsSet("add") && !req.deleteSet && !req.deleteCompleted {
		req.list = true
	}
	return req
}

func (o Options) runTodos(cfg *config.AppConfig, req request) error {
	thm := theme.GetTheme(cfg.Theme)
	printer := cli.NewPrinter(o.Stdout, o.Stderr, thm, cli.PrinterOptions{
		Color:        cfg.Color,
		ShowIcons:    cfg.ShowIcons,
		MaxTextWidth: cfg.MaxTextWidth,
	})

	log.Printf("run request: %+v", req)

	svc := wiki.NewService(cfg)
	log.Debug("resolved wiki", "root", svc.Root(), "index", svc.IndexPath())
	snap, err := svc.Load()
	if err != nil {
		return err
	}

	if snap.Empty() {
		if req.json {
			return cli.ListTodos(printer, snap, true)
		}
		printer.Info(msgNoTodos)
		return nil
	}

	if req.list {
		if err := cli.ListTodos(printer, snap, req.json); err != nil {
			return err
		}
	}

	if req.toggle != "" {
		numbers, err := cli.ParseNumbers(req.toggle)
		if err != nil {
			log.Warn("rejected toggle", "error", err)
			printer.Failure(msgBadToggle)
		} else if err := cli.ToggleTodos(printer, snap, numbers); err != nil {
			return err
		}
	}

	if req.add != "" {
		if err := o.runAdd(printer, svc, snap, thm, req); err != nil {
			return err
		}
	}

	if req.deleteSet {
		if err := cli.DeleteTodo(printer, snap, req.deleteNumber); err != nil {
			return err
		}
	}

	if req.deleteCompleted {
		if err := cli.DeleteCompleted(printer, snap); err != nil {
			return err
		}
	}

	return nil
}

func (o Options) runAdd(printer *cli.Printer, svc *wiki.Service, snap *wiki.Snapshot, thm *theme.Theme, req request) error {
	substring, text, err := cli.ParseAddArg(req.add)
	if err != nil {
		log.Warn("rejected add", "error", err)
		printer.Failure(msgBadAddInput)
		return nil
	}
	return cli.AddTodo(printer, svc, snap, substring, text, o.selector(thm, svc, req))
}

func (o Options) selector(thm *theme.Theme, svc *wiki.Service, req request) cli.TargetSelector {
	switch {
	case o.Selector != nil:
		return o.Selector
	case req.choiceSet:
		return cli.FixedSelector(req.choice)
	default:
		return cli.DefaultSelector(o.Stdin, o.Stderr, thm, svc.Rel)
	}
}
