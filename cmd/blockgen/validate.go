package main

import (
	"fmt"

	"github.com/spf13/cobra"

	blockgen "github.com/goliatone/go-blockgen"
	"github.com/goliatone/go-blockgen/pkg/blockdef"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Parse and compile definition documents, reporting the first error per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := blockgen.NewLoader()
			failed := 0
			for _, path := range args {
				// A fresh registrar per file keeps duplicate-name detection
				// scoped to the document being checked.
				registrar := blockgen.New()
				doc, err := loader.Load(cmd.Context(), blockdef.SourceFromFile(path))
				if err == nil {
					err = registrar.RegisterDocument(doc)
				}
				if err != nil {
					failed++
					cmd.Printf("%s: %v\n", path, err)
					continue
				}
				cmd.Printf("%s: ok (%d definitions)\n", path, len(doc.Definitions()))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
			}
			return nil
		},
	}
}
