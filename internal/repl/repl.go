/*
Package repl implements Fleet's interactive Read-Eval-Print Loop.

The REPL provides an interactive environment where users can enter
Fleet expressions line by line, see immediate results, navigate
history with the arrow keys, and get colored feedback for errors
versus results. It uses chzyer/readline for line editing and
fatih/color for the colored output, following the same pairing the
rest of the module's ambient stack is built on.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/fleet-lang/fleet/internal/evaluator"
	"github.com/fleet-lang/fleet/internal/lexer"
	"github.com/fleet-lang/fleet/internal/prelude"
	"github.com/fleet-lang/fleet/internal/treebuilder"
	"github.com/fleet-lang/fleet/internal/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/version/prompt configuration for an
// interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Fleet!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop: a fresh evaluator and prelude-seeded root
// environment persist across the session, so definitions made with `=`
// on one line are visible to later lines.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	eval := evaluator.New()
	root := prelude.New(eval)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, eval, root)
	}
}

// executeWithRecovery lexes, builds, and evaluates one line, printing
// either the resulting value or the error, and recovers from any panic
// so a single bad line can't bring the session down.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, eval *evaluator.Evaluator, root *value.Env) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "Error: %v\n", recovered)
		}
	}()

	lx := lexer.New(line)
	et, err := treebuilder.Build(lx)
	if err != nil {
		redColor.Fprintf(writer, "Error: %v\n", err)
		return
	}

	result, err := eval.Eval(et, root)
	if err != nil {
		redColor.Fprintf(writer, "Error: %v\n", err)
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.String())
}
