package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent scoring submissions",
		RunE:  runHistory,
	}

	cmd.Flags().IntP("limit", "n", 20, "number of submissions to show")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	history, err := openHistory(ctx)
	if err != nil {
		return err
	}
	defer closeHistory(history)

	limit, _ := cmd.Flags().GetInt("limit")
	subs, err := history.ListSubmissions(ctx, limit)
	if err != nil {
		return err
	}

	if len(subs) == 0 {
		fmt.Println("No submissions yet. Score one with: fraudlens predict")
		return nil
	}

	fmt.Printf("%-5s %-20s %-11s %-9s %-10s %s\n",
		"ID", "WHEN", "MODE", "PROB", "LABEL", "FEEDBACK")
	for _, sub := range subs {
		feedback := "-"
		if sub.FeedbackCorrect != nil {
			feedback = fmt.Sprintf("correct=%t", *sub.FeedbackCorrect)
		}
		fmt.Printf("%-5d %-20s %-11s %-9.3f %-10s %s\n",
			sub.ID,
			sub.CreatedAt.Format("2006-01-02 15:04:05"),
			sub.Mode,
			sub.FraudProbability,
			sub.Label,
			feedback)
	}
	return nil
}
