package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elbow-jason/graphql-parser/pkg/astparser"
	"github.com/elbow-jason/graphql-parser/pkg/operationreport"
	"github.com/elbow-jason/graphql-parser/pkg/parsecache"
)

// grammarOf picks the schema grammar for .graphqls files and files named *.schema.graphql
func grammarOf(fileName string) grammar {
	base := filepath.Base(fileName)
	if strings.HasSuffix(base, ".graphqls") || strings.Contains(base, ".schema.") {
		return grammarSchema
	}
	return grammarQuery
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	var grammarName string

	cmd := &cobra.Command{
		Use:   "check file...",
		Short: "check parses documents and reports errors as GraphQL errors objects",
		Long: `check parses every file and prints one line per file:
"ok <file>" or "<file>: {"errors":[...]}".
The grammar is inferred from the file name unless --grammar is given:
files ending in .graphqls or containing .schema. are type system documents.`,
		Example: "gqlparse check queries/*.graphql starwars.schema.graphql",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var forced *grammar
			if grammarName != "auto" {
				g, ok := parseGrammar(grammarName)
				if !ok {
					return errors.Errorf("unknown grammar %q: use \"auto\", \"query\" or \"schema\"", grammarName)
				}
				forced = &g
			}

			env, err := newEnvironment(v)
			if err != nil {
				return err
			}
			defer env.close()

			cache, err := parsecache.New(env.config.cacheSize,
				astparser.WithMaxDepth(env.config.maxDepth),
				astparser.WithLogger(env.log),
			)
			if err != nil {
				return errors.Wrap(err, "creating parse cache")
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, fileName := range args {
				g := grammarOf(fileName)
				if forced != nil {
					g = *forced
				}

				_, data, err := readSource(cmd, []string{fileName})
				if err != nil {
					return err
				}

				switch g {
				case grammarSchema:
					_, err = cache.Schema(data)
				default:
					_, err = cache.Query(data)
				}

				env.log.Debug("checked document",
					abstractlogger.String("file", fileName),
					abstractlogger.String("grammar", g.String()),
					abstractlogger.Bool("ok", err == nil),
				)

				if err == nil {
					if _, err := fmt.Fprintf(out, "ok %s\n", fileName); err != nil {
						return err
					}
					continue
				}

				failed++
				report := operationreport.FromError(err)
				data, err = report.ErrorsJSON()
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%s: %s\n", fileName, data); err != nil {
					return err
				}
			}

			stats := cache.Stats()
			env.log.Debug("parse cache",
				abstractlogger.Int("documents", cache.Len()),
				abstractlogger.Any("hits", stats.Hits),
				abstractlogger.Any("misses", stats.Misses),
			)

			if failed != 0 {
				return errors.Errorf("%d of %d documents failed to parse", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&grammarName, "grammar", "auto", `grammar of all files: "auto", "query" or "schema"`)
	return cmd
}
