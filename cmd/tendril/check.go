package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tendril-ui/tendril/markup"
)

var checkCmd = &cobra.Command{
	Use:   "check <template>",
	Short: "Parse a template and report diagnostics",
	Long:  "Parse a Tendril template without mounting it. Prints a source excerpt with a caret underline for the first error found.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	root, err := markup.Parse(nil, src, nil)
	if err != nil {
		printDiagnostic(err)
		return err
	}

	fmt.Fprintf(os.Stderr, "ok: <%s> with %d attribute(s), %d child(ren)\n",
		root.Tag, len(root.Attrs), len(root.Children))
	return nil
}
