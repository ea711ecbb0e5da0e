package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/golox/ast"
	"github.com/pontaoski/golox/config"
	"github.com/pontaoski/golox/driver"
	"github.com/pontaoski/golox/errors"
	"github.com/pontaoski/golox/interpreter"
	"github.com/pontaoski/golox/lexer"
	"github.com/pontaoski/golox/parser"
	"github.com/pontaoski/golox/reader"
	"github.com/pontaoski/golox/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/golox", "main")

func setupLogging(level string) error {
	lvl, err := capnslog.ParseLevel(strings.ToUpper(level))
	if err != nil {
		return err
	}
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, lvl >= capnslog.DEBUG))
	capnslog.SetGlobalLogLevel(lvl)
	return nil
}

// useColor reports whether diagnostics written to fd should be colored.
// fatih/color only inspects stdout, and diagnostics go to stderr.
func useColor(enabled bool, fd uintptr) bool {
	return enabled && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

type app struct {
	cfg    config.Config
	color  bool
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newApp() *app {
	return &app{
		cfg:    config.Default(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// exit turns a driver status into the error urfave/cli exits the process
// with. I/O failures print their message; anything else is internal and
// gets its trace.
func (a *app) exit(status driver.Status, err error) error {
	if err != nil {
		if status == driver.StatusIO {
			fmt.Fprintln(a.stderr, err.Error())
		} else {
			tracerr.PrintSourceColor(err)
		}
	}
	if status == driver.StatusOK && err == nil {
		return nil
	}
	if status == driver.StatusOK {
		status = driver.StatusRuntime
	}
	return cli.Exit("", int(status))
}

func (a *app) session(filename string, stdin io.Reader) *driver.Session {
	return driver.NewSession(driver.Options{
		Diagnostics: a.stderr,
		Color:       a.color,
		Filename:    filename,
		Host:        interpreter.Host{Stdout: a.stdout, Stdin: stdin},
	})
}

func (a *app) reporter() *errors.Reporter {
	rep := errors.NewReporter(a.stderr)
	if !a.color {
		rep.DisableColor()
	}
	return rep
}

func (a *app) runFile(path string) error {
	plog.Debugf("running %s", path)
	return a.exit(a.session(path, a.stdin).RunFile(path, a.stdin))
}

// lexFile streams path through the lexer for the dump commands.
func (a *app) lexFile(path string, rep *errors.Reporter) ([]types.Token, error) {
	rc, err := reader.Open(path, a.stdin)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	l := lexer.NewLexer(rc, path, rep)
	tokens := l.LexAll()
	if err := l.Err(); err != nil {
		return nil, tracerr.Wrap(err)
	}
	return tokens, nil
}

func (a *app) dumpTokens(path string) error {
	rep := a.reporter()
	tokens, err := a.lexFile(path, rep)
	if err != nil {
		return a.exit(driver.StatusIO, err)
	}
	for _, tok := range tokens {
		fmt.Fprintln(a.stdout, repr.String(tok))
	}
	if rep.HadError() {
		return a.exit(driver.StatusStatic, nil)
	}
	return nil
}

func (a *app) dumpAST(path string, raw bool) error {
	rc, err := reader.Open(path, a.stdin)
	if err != nil {
		return a.exit(driver.StatusIO, err)
	}
	defer rc.Close()

	rep := a.reporter()
	tokens := lexer.NewLexer(rc, path, rep).LexAll()
	stmts, err := parser.NewParser(tokens, rep).Parse()
	if err != nil {
		return a.exit(driver.StatusStatic, err)
	}
	if rep.HadError() {
		return a.exit(driver.StatusStatic, nil)
	}

	if raw {
		fmt.Fprintln(a.stdout, repr.String(stmts))
		return nil
	}
	for _, stmt := range stmts {
		fmt.Fprintln(a.stdout, ast.PrintStmt(stmt))
	}
	return nil
}

func (a *app) initConfig(path string) error {
	if err := config.Default().Save(path); err != nil {
		return a.exit(driver.StatusIO, err)
	}
	fmt.Fprintf(a.stdout, "wrote %s\n", path)
	return nil
}

func main() {
	a := newApp()

	cliApp := &cli.App{
		Name:      "golox",
		Usage:     "lox interpreter",
		ArgsUsage: "[script]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.FileName,
				Usage: "settings file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "capnslog level, overrides the config file",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "plain diagnostics",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return a.exit(driver.StatusIO, err)
			}
			if c.Bool("no-color") {
				cfg.Color = false
				color.NoColor = true
			}
			a.cfg = cfg
			a.color = useColor(cfg.Color, os.Stderr.Fd())

			level := cfg.LogLevel
			if c.IsSet("log-level") {
				level = c.String("log-level")
			}
			if err := setupLogging(level); err != nil {
				return cli.Exit(err.Error(), int(driver.StatusUsage))
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			switch c.NArg() {
			case 0:
				return a.exit(driver.StatusOK, a.runRepl())
			case 1:
				return a.runFile(c.Args().First())
			}
			return cli.Exit("Usage: golox [script]", int(driver.StatusUsage))
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run a script, - for stdin",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("Usage: golox run <file>", int(driver.StatusUsage))
					}
					return a.runFile(c.Args().First())
				},
			},
			{
				Name:  "repl",
				Usage: "start an interactive prompt",
				Action: func(c *cli.Context) error {
					return a.exit(driver.StatusOK, a.runRepl())
				},
			},
			{
				Name:      "tokens",
				Usage:     "dump the tokens of a file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("Usage: golox tokens <file>", int(driver.StatusUsage))
					}
					return a.dumpTokens(c.Args().First())
				},
			},
			{
				Name:      "ast",
				Usage:     "print the syntax tree of a file",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "dump the node structs instead of the printed form",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("Usage: golox ast [--raw] <file>", int(driver.StatusUsage))
					}
					return a.dumpAST(c.Args().First(), c.Bool("raw"))
				},
			},
			{
				Name:  "init",
				Usage: "write a default " + config.FileName,
				Action: func(c *cli.Context) error {
					return a.initConfig(c.String("config"))
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(driver.StatusUsage))
	}
}
