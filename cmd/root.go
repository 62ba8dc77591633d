// Package cmd implements the gqlparse command line interface
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "GQLPARSE"
	defaultConfigName = ".gqlparse.yaml"
)

const (
	keyIndent             = "indent"
	keyTabs               = "tabs"
	keyMultilineArguments = "multiline-arguments"
	keyMaxDepth           = "max-depth"
	keyLogLevel           = "log-level"
	keyCacheSize          = "cache-size"
)

// NewRootCmd builds the command tree, every call returns independent commands and configuration
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "gqlparse",
		Short: "gqlparse parses, formats and checks GraphQL documents",
		Long: `gqlparse parses executable documents (queries) and type system documents (schemas).

Settings are read from flags, from environment variables prefixed with GQLPARSE_
(e.g. GQLPARSE_MAX_DEPTH) and from a YAML config file given with --config.
Without --config, $HOME/.gqlparse.yaml is read when it exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return readDefaultConfig(v)
			}
			v.SetConfigFile(configFile)
			return v.ReadInConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file (default $HOME/"+defaultConfigName+")")
	flags.Int(keyIndent, 2, "number of spaces per indentation level")
	flags.Bool(keyTabs, false, "indent with tabs instead of spaces")
	flags.Bool(keyMultilineArguments, false, "print every argument on its own line")
	flags.Int(keyMaxDepth, 512, "maximum nesting depth of selection sets, lists and objects, 0 disables the limit")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.Int(keyCacheSize, 1024, "number of parsed documents the check command keeps")

	for _, key := range []string{keyIndent, keyTabs, keyMultilineArguments, keyMaxDepth, keyLogLevel, keyCacheSize} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newFmtCmd(v),
		newTokensCmd(),
		newDumpCmd(v),
		newCheckCmd(v),
	)

	return rootCmd
}

// readDefaultConfig reads the config file in the home directory, a missing file or home directory is not an error
func readDefaultConfig(v *viper.Viper) error {
	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, defaultConfigName)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	v.SetConfigFile(path)
	return errors.Wrapf(v.ReadInConfig(), "reading %s", path)
}

// Execute runs the command line and exits with a non zero status on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
