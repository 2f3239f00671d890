// Command blockgen compiles, validates, and scaffolds block definition
// documents. It is tooling around the library; nothing in the library
// depends on it.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "blockgen",
		Short:         "Compile and inspect block definition documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(
		newCompileCmd(),
		newValidateCmd(),
		newFieldsCmd(),
		newInitCmd(),
	)

	if err := root.Execute(); err != nil {
		root.PrintErrln("blockgen:", err)
		os.Exit(1)
	}
}
