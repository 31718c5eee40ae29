package main

import (
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/lint"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
)

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

func (a *app) schemaCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the scene shape prompts should ask for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := generateSchema[scene.Result]()
			if full {
				s = generateSchema[lint.Result]()
			}
			return a.writeJSON(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().BoolVar(&full, "result", false, "Describe the full lint result instead of the scene")
	return cmd
}
