package cmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

func newDumpCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:       "dump query|schema [file]",
		Short:     "dump prints the syntax tree of a document",
		Example:   "gqlparse dump schema starwars.schema.graphql",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"query", "schema"},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := parseGrammar(args[0])
			if !ok {
				return errors.Errorf("unknown grammar %q: use \"query\" or \"schema\"", args[0])
			}

			env, err := newEnvironment(v)
			if err != nil {
				return err
			}
			defer env.close()

			name, data, err := readSource(cmd, args[1:])
			if err != nil {
				return err
			}

			var definitions interface{}
			switch g {
			case grammarQuery:
				doc, err := env.parser.ParseQuery(data)
				if err != nil {
					return errors.Wrapf(err, "parsing %s", name)
				}
				definitions = doc.Definitions
			case grammarSchema:
				doc, err := env.parser.ParseSchema(data)
				if err != nil {
					return errors.Wrapf(err, "parsing %s", name)
				}
				definitions = doc.Definitions
			}

			dumpConfig.Fdump(cmd.OutOrStdout(), definitions)
			return nil
		},
	}
}
