package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/brltab/diag"
)

var printHash bool

var lintCmd = &cobra.Command{
	Use:   "lint <table-file>...",
	Short: "parse table files and report errors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&printHash, "hash", false,
		"print a structural fingerprint of each parsed table")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	asm, err := makeAssembler()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	failed := 0
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			pterm.Error.Println(err.Error())
			failed++
			continue
		}
		input := string(data)
		rs, err := asm.ParseString(input)
		if err != nil {
			diag.Print(name, input, err)
			failed++
			continue
		}
		msg := fmt.Sprintf("%s: %d directive(s)", name, rs.Len())
		if printHash {
			hash, err := rs.Hash()
			if err != nil {
				pterm.Error.Println(diag.Report(name, err))
				failed++
				continue
			}
			msg += "  " + hash
		}
		pterm.Info.Println(msg)
	}
	if failed > 0 {
		return fmt.Errorf("%d table(s) failed", failed)
	}
	return nil
}
