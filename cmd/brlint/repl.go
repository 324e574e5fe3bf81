package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/brltab"
	"github.com/npillmayer/brltab/diag"
	"github.com/npillmayer/brltab/scanner"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "interactively parse single table lines",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl starts an interactive sandbox: every entered line is parsed as
// one table rule and the resulting directive tree (or error) is shown.
// Handy when writing multipart context rules.
func runRepl(cmd *cobra.Command, args []string) error {
	parser, err := makeParser()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	rl, err := readline.New("brlint> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Enter table rules, quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		toks, err := scanner.Tokens(line)
		if err != nil {
			diag.Print("", line, err)
			continue
		}
		eol := brltab.At(1, len(line)+1, uint64(len(line)), 0)
		d, err := parser.ParseDirective(toks, eol)
		if err != nil {
			diag.Print("", line, err)
			continue
		}
		if d == nil {
			continue
		}
		root := diag.DirectiveTree(d)
		if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
			return err
		}
	}
}
