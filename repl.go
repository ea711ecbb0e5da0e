package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/ztrue/tracerr"
)

// prompter is the part of *liner.State the prompt loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// promptInput feeds readLine() from the same prompter the loop reads
// source lines from, so piped input is consumed in order by one reader.
type promptInput struct {
	p       prompter
	pending []byte
}

func (in *promptInput) Read(b []byte) (int, error) {
	if len(in.pending) == 0 {
		line, err := in.p.Prompt("")
		if err == liner.ErrPromptAborted {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		in.pending = []byte(line + "\n")
	}
	n := copy(b, in.pending)
	in.pending = in.pending[n:]
	return n, nil
}

// isQuit reports whether line asks the prompt to stop.
func isQuit(line string) bool {
	switch strings.TrimSpace(line) {
	case ":quit", "quit":
		return true
	}
	return false
}

func (a *app) runRepl() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if history := a.cfg.HistoryFile; history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(history); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	return a.repl(ln)
}

// repl runs source lines from p until EOF or a quit command.
func (a *app) repl(p prompter) error {
	session := a.session("<repl>", &promptInput{p: p})

	for {
		line, err := p.Prompt(a.cfg.Prompt)
		if err == io.EOF {
			fmt.Fprintln(a.stdout)
			return nil
		}
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			return tracerr.Wrap(err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if isQuit(line) {
			return nil
		}
		p.AppendHistory(line)

		status, err := session.RunLine(line)
		if err != nil {
			tracerr.PrintSourceColor(err)
			continue
		}
		plog.Debugf("line finished with status %d", status)
	}
}

var _ prompter = (*liner.State)(nil)
