package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/elbow-jason/graphql-parser/pkg/input"
	"github.com/elbow-jason/graphql-parser/pkg/lexer"
)

type tokenEntry struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Line   uint32 `json:"line" yaml:"line"`
	Column uint32 `json:"column" yaml:"column"`
}

func newTokensCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "tokens [file]",
		Short:   "tokens prints the tokens of a document",
		Example: "gqlparse tokens --format yaml query.graphql",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			in := input.NewInput(data)
			l := lexer.Lexer{}
			l.SetInput(in)
			tokens, err := l.ReadAll()
			if err != nil {
				return errors.Wrapf(err, "tokenizing %s", name)
			}

			entries := make([]tokenEntry, 0, len(tokens))
			for _, tok := range tokens {
				entries = append(entries, tokenEntry{
					Kind:   tok.Kind.String(),
					Text:   in.ByteSliceString(tok.Literal),
					Line:   tok.Position.Line,
					Column: tok.Position.Column,
				})
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				for _, entry := range entries {
					if _, err := fmt.Fprintf(out, "%d:%d\t%s\t%s\n", entry.Line, entry.Column, entry.Kind, entry.Text); err != nil {
						return err
					}
				}
				return nil
			case "json":
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			case "yaml":
				data, err := yaml.Marshal(entries)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			default:
				return errors.Errorf("unknown format %q: use \"text\", \"json\" or \"yaml\"", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", `output format: "text", "json" or "yaml"`)
	return cmd
}
