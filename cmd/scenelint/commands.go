package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/lint"
)

func (a *app) lintCmd() *cobra.Command {
	var sceneOnly bool

	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Recover the scene from one response",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			result := a.linter.Lint(cmd.Context(), response)
			if sceneOnly {
				return a.writeJSON(cmd.OutOrStdout(), result.Scene)
			}
			return a.writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().BoolVar(&sceneOnly, "scene-only", false, "Print only the recovered scene (null when none)")
	return cmd
}

// diagnosis adds the effective settings to a lint.Diagnosis.
type diagnosis struct {
	*lint.Diagnosis
	Strict        bool `json:"strict"`
	AllowFallback bool `json:"allow_fallback"`
}

func (a *app) diagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose [file]",
		Short: "List every extraction candidate with its score and parse error",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return a.writeJSON(cmd.OutOrStdout(), diagnosis{
				Diagnosis:     lint.DiagnoseResponse(response),
				Strict:        a.linter.Strict(),
				AllowFallback: a.linter.AllowsFallback(),
			})
		},
	}
}

func (a *app) stripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [file]",
		Short: "Print the response with the scene JSON removed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), lint.StripSceneJSON(response))
			return err
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Exit 0 if the response carries scene data, 1 otherwise",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !lint.HasSceneData(response) {
				fmt.Fprintln(cmd.OutOrStdout(), "no scene data")
				return &exitError{code: 1}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "scene data found")
			return nil
		},
	}
}
