package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	blockgen "github.com/goliatone/go-blockgen"
	"github.com/goliatone/go-blockgen/pkg/blockdef"
	"github.com/goliatone/go-blockgen/pkg/render"
	"github.com/goliatone/go-blockgen/pkg/renderers/jsonout"
	"github.com/goliatone/go-blockgen/pkg/renderers/text"
)

func newRendererRegistry() *render.Registry {
	reg := render.NewRegistry()
	reg.MustRegister(jsonout.New())
	reg.MustRegister(text.New())
	return reg
}

func newCompileCmd() *cobra.Command {
	var (
		rendererName string
		output       string
		compact      bool
	)

	cmd := &cobra.Command{
		Use:   "compile FILE...",
		Short: "Compile definition documents and render their build plans",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderers := newRendererRegistry()
			renderer, err := renderers.Get(rendererName)
			if err != nil {
				return fmt.Errorf("unknown renderer %q (have %s)", rendererName, strings.Join(renderers.List(), ", "))
			}

			loader := blockgen.NewLoader()
			registrar := blockgen.New()

			var rendered [][]byte
			for _, path := range args {
				doc, err := loader.Load(cmd.Context(), blockdef.SourceFromFile(path))
				if err != nil {
					return err
				}
				for _, def := range doc.Definitions() {
					p, err := registrar.Compile(def)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					out, err := renderer.Render(cmd.Context(), p, render.RenderOptions{Compact: compact})
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					rendered = append(rendered, out)
				}
			}

			payload := joinRendered(rendered)
			if output != "" {
				if err := os.WriteFile(output, payload, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				return nil
			}
			cmd.Print(string(payload))
			return nil
		},
	}

	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "json", "renderer to use (json, text)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&compact, "compact", false, "compact output")
	return cmd
}

func joinRendered(rendered [][]byte) []byte {
	var buf []byte
	for i, out := range rendered {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, out...)
		if len(out) > 0 && out[len(out)-1] != '\n' {
			buf = append(buf, '\n')
		}
	}
	return buf
}
