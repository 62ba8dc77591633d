package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// readSource reads the file named by args[0], stdin if there is no argument or it is "-"
func readSource(cmd *cobra.Command, args []string) (name string, data []byte, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		return "stdin", data, errors.Wrap(err, "reading stdin")
	}
	data, err = os.ReadFile(args[0])
	return args[0], data, errors.Wrapf(err, "reading %s", args[0])
}
