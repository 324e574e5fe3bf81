package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/brltab/diag"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <table-file>",
	Short: "show the parsed directive trees of a table",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	asm, err := makeAssembler()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	input := string(data)
	rs, err := asm.ParseString(input)
	if err != nil {
		diag.Print(args[0], input, err)
		return err
	}
	for _, d := range rs.Directives {
		root := diag.DirectiveTree(d)
		if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
			return err
		}
	}
	return nil
}
