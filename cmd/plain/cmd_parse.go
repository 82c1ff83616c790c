package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/plain/discourse"
	"github.com/dhamidi/plain/format"
	"github.com/dhamidi/plain/lexer"
	"github.com/dhamidi/plain/syntax"
)

func newParseCmd(opts *options) *cobra.Command {
	var outputFormat string
	var forest bool

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse every clause of a document and print the trees",
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

			var encoder format.Encoder
			out := cmd.OutOrStdout()
			switch outputFormat {
			case "text":
				encoder = format.NewLineEncoder(out)
			case "bracket":
				encoder = format.NewBracketEncoder(out)
			case "json":
				encoder = format.NewJSONEncoder(out)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			block, err := discourse.Read(text, lexer.New(vocab))
			if err != nil {
				return err
			}
			parser := syntax.NewParser(vocab, syntax.WithMaxTokens(opts.config.Parser.MaxTokens))

			analysis, err := parser.Analyze(block)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}
			sentences := format.Flatten(analysis)
			if !forest {
				sentences = firstTrees(analysis)
			}

			if err := encoder.Encode(sentences); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, bracket, json)")
	cmd.Flags().BoolVar(&forest, "forest", false, "print every tree of each clause, not just the first")

	return cmd
}

// firstTrees is what Parse returns for the same block.
func firstTrees(analysis []syntax.SentenceAnalysis) [][]*syntax.Constituency {
	result := make([][]*syntax.Constituency, 0, len(analysis))
	for _, sentence := range analysis {
		trees := make([]*syntax.Constituency, 0, len(sentence.Clauses))
		for _, clause := range sentence.Clauses {
			trees = append(trees, clause.Tree())
		}
		result = append(result, trees)
	}
	return result
}
