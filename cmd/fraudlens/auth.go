package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fraudlens/fraudlens/internal/scoring"
	"github.com/fraudlens/fraudlens/internal/session"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with the scoring service",
	}

	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authLogoutCmd())

	return cmd
}

func authLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store a bearer credential",
		Long: `Log in to the scoring service and store the bearer token locally.

The token is saved with operator-only permissions and attached to every
subsequent request. Account registration and OTP verification happen on the
service side; this command only exchanges existing credentials for a token.`,
		RunE: runAuthLogin,
	}

	cmd.Flags().String("email", "", "account email (prompted if omitted)")

	return cmd
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		fmt.Print("Email: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	// Login needs no credential yet, just the endpoint.
	client, err := scoring.NewClient(session.Session{BaseURL: apiURL()})
	if err != nil {
		return err
	}

	token, err := client.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	s := session.Session{BaseURL: apiURL(), Token: token}
	if err := session.Save(sessionPath(), s); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", email)
	return nil
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored credential",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := os.Remove(sessionPath()); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove session: %w", err)
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}
