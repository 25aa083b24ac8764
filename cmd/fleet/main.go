/*
Command fleet is the command-line driver for the Fleet expression
language core. It has no logic of its own beyond wiring the lexer,
tree builder, and evaluator together and formatting their output; the
driver is explicitly out of scope for the core's own test suite.

Usage:

	fleet --version
	fleet -c <code>
	fleet -t <code>
	fleet repl
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/fleet-lang/fleet/internal/evaluator"
	"github.com/fleet-lang/fleet/internal/lexer"
	"github.com/fleet-lang/fleet/internal/prelude"
	"github.com/fleet-lang/fleet/internal/repl"
	"github.com/fleet-lang/fleet/internal/tree"
	"github.com/fleet-lang/fleet/internal/treebuilder"
)

const (
	version = "v0.1.0"
	author  = "fleet-lang"
	license = "MIT"
	prompt  = "fleet >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   ▄████  ██▓    ▓█████ ▓█████ ▄▄▄█████▓
  ██▒ ▀█▒▓██▒    ▓█   ▀ ▓█   ▀ ▓  ██▒ ▓▒
 ▒██░▄▄▄░▒██░    ▒███   ▒███   ▒ ▓██░ ▒░
 ░▓█  ██▓▒██░    ▒▓█  ▄ ▒▓█  ▄ ░ ▓██▓ ░
 ░▒▓███▀▒░██████▒░▒████▒░▒████▒ ▒██▒ ░
  ░▒   ▒ ░ ▒░▓  ░░░ ▒░ ░░░ ▒░ ░ ▒ ░░
   ░   ░ ░ ░ ▒  ░ ░ ░  ░ ░ ░  ░   ░
 ░ ░   ░   ░ ░      ░      ░    ░
       ░     ░  ░   ░  ░   ░  ░
`
)

var cyanColor = color.New(color.FgCyan)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "--version":
		showVersion()
		os.Exit(0)
	case "-c":
		if len(args) != 2 {
			usage()
			os.Exit(1)
		}
		os.Exit(runCode(args[1]))
	case "-t":
		if len(args) != 2 {
			usage()
			os.Exit(1)
		}
		os.Exit(runTree(args[1]))
	case "repl":
		r := repl.NewRepl(banner, version, author, line, license, prompt)
		r.Start(os.Stdout)
		os.Exit(0)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: fleet --version | fleet -c <code> | fleet -t <code> | fleet repl")
}

func showVersion() {
	cyanColor.Println("Fleet - a small expression language")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
}

// runCode lexes, builds, and evaluates code against a fresh
// prelude-seeded root environment, printing the result's string form
// on success or "Error: <message>" on failure.
func runCode(code string) int {
	et, err := buildTree(code)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	eval := evaluator.New()
	root := prelude.New(eval)
	result, err := eval.Eval(et, root)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	fmt.Println(result.String())
	return 0
}

// runTree lexes and builds code only, printing the expression tree's
// diagnostic string form.
func runTree(code string) int {
	et, err := buildTree(code)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	fmt.Println(et.String())
	return 0
}

func buildTree(code string) (*tree.Tree, error) {
	lx := lexer.New(code)
	return treebuilder.Build(lx)
}
