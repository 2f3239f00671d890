package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-blockgen/pkg/ident"
)

// prompter abstracts the interactive questions so the scaffold flow can be
// tested without a terminal.
type prompter interface {
	Input(message, def string) (string, error)
	Select(message string, options []string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out)
	return out, err
}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Select{Message: message, Options: options}, &out)
	return out, err
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, err
}

const (
	connectorNone      = "none"
	connectorOutput    = "output (value block)"
	connectorStatement = "previous/next statement"
)

func newInitCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a starter definition document interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := scaffoldDefinition(surveyPrompter{}, ident.New())
			if err != nil {
				return err
			}
			payload, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encode definition: %w", err)
			}
			payload = append(payload, '\n')
			if output != "" {
				if err := os.WriteFile(output, payload, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				cmd.Printf("wrote %s\n", output)
				return nil
			}
			cmd.Print(string(payload))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// scaffoldDefinition walks the prompts and assembles the raw document map.
// It emits a map rather than a blockdef.Definition so the output JSON keeps
// the document key order users expect to edit.
func scaffoldDefinition(p prompter, ids *ident.Generator) (map[string]any, error) {
	name, err := p.Input("Block name:", "block_"+ids.Next())
	if err != nil {
		return nil, err
	}
	message, err := p.Input("Message (use %1, %2 ... for arguments):", "do something")
	if err != nil {
		return nil, err
	}

	doc := map[string]any{
		"name":    strings.TrimSpace(name),
		"message": message,
		"args":    []any{},
	}

	colour, err := p.Input("Colour hue (0-360, empty to skip):", "")
	if err != nil {
		return nil, err
	}
	if trimmed := strings.TrimSpace(colour); trimmed != "" {
		hue, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid hue %q: %w", trimmed, err)
		}
		doc["colour"] = hue
	}

	connector, err := p.Select("Connector style:", []string{connectorNone, connectorOutput, connectorStatement})
	if err != nil {
		return nil, err
	}
	switch connector {
	case connectorOutput:
		doc["output"] = nil
	case connectorStatement:
		doc["previousStatement"] = nil
		doc["nextStatement"] = nil
	}

	inline, err := p.Confirm("Lay inputs out inline?", false)
	if err != nil {
		return nil, err
	}
	if inline {
		doc["inputsInline"] = true
	}

	tooltip, err := p.Input("Tooltip (empty to skip):", "")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(tooltip) != "" {
		doc["tooltip"] = tooltip
	}
	helpURL, err := p.Input("Help URL (empty to skip):", "")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(helpURL) != "" {
		doc["helpUrl"] = helpURL
	}

	return doc, nil
}
