package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"intake-insights-go/internal/actionable"
	"intake-insights-go/internal/extractor"
	"intake-insights-go/internal/types"
)

var (
	classifyFile          string
	classifyFunctionCalls string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a call transcript and print the follow-up steps",
	Long: `Read a transcript from --file or stdin, classify it and print the
analysis together with the generated next steps as JSON.`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

type classifyResult struct {
	Analysis  types.CallAnalysis `json:"analysis"`
	NextSteps []string           `json:"next_steps"`
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVarP(&classifyFile, "file", "f", "", "Transcript file (default: stdin)")
	classifyCmd.Flags().StringVar(&classifyFunctionCalls, "function-calls", "", `Function calls as JSON, e.g. '[{"name":"get_patient_record","success":true}]'`)
}

func runClassify(cmd *cobra.Command, args []string) error {
	var (
		transcript []byte
		err        error
	)
	if classifyFile != "" {
		transcript, err = os.ReadFile(classifyFile)
	} else {
		transcript, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	var calls []types.FunctionCallRecord
	if classifyFunctionCalls != "" {
		if err := json.Unmarshal([]byte(classifyFunctionCalls), &calls); err != nil {
			return fmt.Errorf("invalid --function-calls: %w", err)
		}
	}

	analysis := extractor.Classify(string(transcript), calls)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(classifyResult{Analysis: analysis, NextSteps: actionable.NextSteps(analysis)})
}
