package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated operator's profile",
		RunE:  runWhoami,
	}
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	client, err := newScoringClient()
	if err != nil {
		return err
	}

	profile, err := client.Me(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Name:  %s\n", profile.Name)
	fmt.Printf("Email: %s\n", profile.Email)
	if profile.Age != nil {
		fmt.Printf("Age:   %d\n", *profile.Age)
	}
	if profile.Gender != nil {
		fmt.Printf("Gender: %s\n", *profile.Gender)
	}
	if profile.Country != nil {
		fmt.Printf("Country: %s\n", *profile.Country)
	}
	return nil
}
