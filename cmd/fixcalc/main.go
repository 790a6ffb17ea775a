// Command fixcalc evaluates fixed-point expressions in hex notation.
//
//	fixcalc -e "1.8 * 64.0"
//	fixcalc
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/peterh/liner"

	"github.com/avdva/fixpoint/internal/calc"
)

const (
	appName     = "fixcalc"
	historyFile = ".fixcalc_history"
	prompt      = "fix> "
)

const helpText = `Expressions (operands are hex, like -1a.08):
  <a>            normalize a value
  neg <a>        negate
  <a> + <b>      add
  <a> - <b>      subtract
  <a> * <b>      multiply
  <a> cmp <b>    compare magnitudes
Commands: :help, :quit`

func main() {
	expr := flag.String("e", "", "evaluate the expression and exit")
	raw := flag.Bool("raw", false, "also print the raw fields of results")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-raw] [-e expr]\n\n", appName)
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "\n"+helpText)
	}
	flag.Parse()

	if *expr != "" {
		os.Exit(evalOnce(*expr, *raw, os.Stdout, os.Stderr))
	}
	os.Exit(repl(*raw))
}

func evalOnce(expr string, raw bool, stdout, stderr io.Writer) int {
	if err := eval(expr, raw, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func eval(expr string, raw bool, w io.Writer) error {
	out, err := calc.Eval(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	if raw {
		pretty.Fprintf(w, "%# v\n", out.Raw())
	}
	return nil
}

func repl(raw bool) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ":"):
			switch strings.ToLower(line) {
			case ":quit":
				return 0
			case ":help":
				fmt.Println(helpText)
			default:
				fmt.Println("unknown command. Type :help for help, :quit to exit.")
			}
			continue
		}

		ln.AppendHistory(line)
		if err := eval(line, raw, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
