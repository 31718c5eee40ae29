package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/lint"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/overview"
)

type batchOutput struct {
	Results []*lint.Result   `json:"results,omitempty"`
	Summary overview.Summary `json:"summary"`
}

func (a *app) batchCmd() *cobra.Command {
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "batch [files...]",
		Short: "Lint many responses and print an aggregate summary",
		Long: `With file arguments each file is one response. Without, stdin is read as
a JSON array of responses or as a stream of JSON values (JSONL). Items that
are not strings are reported as input errors, not skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := batchItems(cmd, args)
			if err != nil {
				return err
			}

			results, summary, err := a.linter.LintValues(cmd.Context(), items)
			if err != nil {
				return err
			}

			out := batchOutput{Summary: summary}
			if !summaryOnly {
				out.Results = results
			}
			return a.writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&summaryOnly, "summary-only", false, "Omit per-item results")
	return cmd
}

func batchItems(cmd *cobra.Command, args []string) ([]any, error) {
	if len(args) > 0 {
		items := make([]any, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read input: %w", err)
			}
			items = append(items, string(data))
		}
		return items, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return decodeItems(data)
}

// decodeItems reads consecutive JSON values. A single top-level array is
// unwrapped into its elements.
func decodeItems(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	items := []any{}
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode item %d: %w", len(items)+1, err)
		}
		items = append(items, v)
	}
	if len(items) == 1 {
		if arr, ok := items[0].([]any); ok {
			return arr, nil
		}
	}
	return items, nil
}
