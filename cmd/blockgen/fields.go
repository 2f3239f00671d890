package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-blockgen/pkg/fields"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the registered field kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, kind := range fields.NewRegistry().Kinds() {
				cmd.Println(string(kind))
			}
			return nil
		},
	}
}
