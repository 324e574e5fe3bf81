package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/brltab/grammar"
	"github.com/npillmayer/brltab/table"
)

var (
	vocabFile string
	maxDepth  int
)

var rootCmd = &cobra.Command{
	Use:   "brlint",
	Short: "brlint - checker for braille translation tables",
	Long: `brlint parses braille translation-table files and reports every
syntax problem with precise line/column positions.

Commands:
  lint     parse table files and report errors
  dump     show the parsed directive trees of a table
  repl     interactively parse single table lines`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vocabFile, "vocabulary", "",
		"YAML document with additional opcode shapes")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0,
		"expression nesting limit (0 = default)")
}

// makeParser builds the directive parser from the persistent flags.
func makeParser() (*grammar.Parser, error) {
	vocab := grammar.NewVocabulary()
	if vocabFile != "" {
		data, err := os.ReadFile(vocabFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read vocabulary %q: %w", vocabFile, err)
		}
		if err := vocab.LoadYAML(data); err != nil {
			return nil, err
		}
	}
	opts := []grammar.Option{grammar.WithVocabulary(vocab)}
	if maxDepth > 0 {
		opts = append(opts, grammar.MaxDepth(maxDepth))
	}
	return grammar.NewParser(opts...), nil
}

func makeAssembler() (*table.Assembler, error) {
	parser, err := makeParser()
	if err != nil {
		return nil, err
	}
	return table.New(table.WithParser(parser)), nil
}
