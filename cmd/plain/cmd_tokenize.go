package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/plain/lexer"
	"github.com/dhamidi/plain/vocabulary"
)

func newTokenizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file|->",
		Short: "Print the tokens of a document, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			vocab, err := opts.config.Vocabulary()
			if err != nil {
				return err
			}

			tokens, errs := lexer.New(vocab).Scan(text)
			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintf(out, "%-12s %-8s %s\n", vocabulary.CategoryName(tok.Category()), tok.Pos, tok.Head)
			}
			for _, e := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", args[0], e)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d unknown words", len(errs))
			}
			return nil
		},
	}
}
