package cmd

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elbow-jason/graphql-parser/pkg/astprinter"
)

func newFmtCmd(v *viper.Viper) *cobra.Command {
	fmtCmd := &cobra.Command{
		Use:   "fmt",
		Short: "fmt formats GraphQL documents",
	}
	fmtCmd.AddCommand(
		newFmtSubCmd(v, grammarQuery),
		newFmtSubCmd(v, grammarSchema),
	)
	return fmtCmd
}

func newFmtSubCmd(v *viper.Viper, g grammar) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     g.String() + " [file]",
		Short:   "formats a " + g.description() + " and writes the result to stdout",
		Example: "gqlparse fmt " + g.String() + " starwars." + g.String() + ".graphql > formatted.graphql",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && len(args) == 0 {
				return errors.New("--write requires a file argument")
			}

			env, err := newEnvironment(v)
			if err != nil {
				return err
			}
			defer env.close()

			name, data, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			buff := bytes.Buffer{}
			printer := astprinter.NewPrinter(env.config.style, &buff)
			switch g {
			case grammarQuery:
				doc, err := env.parser.ParseQuery(data)
				if err != nil {
					return errors.Wrapf(err, "parsing %s", name)
				}
				printer.PrintQuery(doc)
			case grammarSchema:
				doc, err := env.parser.ParseSchema(data)
				if err != nil {
					return errors.Wrapf(err, "parsing %s", name)
				}
				printer.PrintSchema(doc)
			}
			if err := printer.Err(); err != nil {
				return err
			}

			if write {
				return errors.Wrapf(os.WriteFile(name, buff.Bytes(), 0o644), "writing %s", name)
			}
			_, err = cmd.OutOrStdout().Write(buff.Bytes())
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file instead of stdout")
	return cmd
}
