package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraudlens/fraudlens/internal/model"
)

func feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Report whether the last prediction was correct",
		Long: `Report whether a prediction's verdict was correct.

Targets the most recent submission by default. Each submission accepts
exactly one answer; already-answered submissions are rejected.

Examples:
  fraudlens feedback --correct
  fraudlens feedback --incorrect --id 42`,
		RunE: runFeedback,
	}

	cmd.Flags().Bool("correct", false, "the prediction was correct")
	cmd.Flags().Bool("incorrect", false, "the prediction was incorrect")
	cmd.Flags().Int64("id", 0, "submission id (default: most recent)")

	return cmd
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	correct, _ := cmd.Flags().GetBool("correct")
	incorrect, _ := cmd.Flags().GetBool("incorrect")
	if correct == incorrect {
		return fmt.Errorf("pass exactly one of --correct or --incorrect")
	}

	client, err := newScoringClient()
	if err != nil {
		return err
	}

	history, err := openHistory(ctx)
	if err != nil {
		return err
	}
	defer closeHistory(history)

	id, _ := cmd.Flags().GetInt64("id")
	var sub *model.Submission
	if id > 0 {
		sub, err = history.GetSubmission(ctx, id)
	} else {
		sub, err = history.GetLatestSubmission(ctx)
	}
	if err != nil {
		return fmt.Errorf("no prediction to answer: %w", err)
	}

	if sub.Answered() {
		return fmt.Errorf("submission %d already has feedback", sub.ID)
	}

	if err := client.SubmitFeedback(ctx, sub.Label, correct); err != nil {
		return fmt.Errorf("feedback submission failed: %w", err)
	}

	if err := history.RecordFeedback(ctx, sub.ID, correct); err != nil {
		return fmt.Errorf("failed to record feedback locally: %w", err)
	}

	fmt.Printf("Feedback recorded for submission %d (%s, correct=%t)\n", sub.ID, sub.Label, correct)
	return nil
}
