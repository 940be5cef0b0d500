package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [email]",
		Short: "Log in and store a session token",
		Long:  "Authenticate with email and password. The session token is saved to the config file for later commands.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := ""
			if len(args) == 1 {
				email = args[0]
			}
			return runLogin(cmd, email)
		},
	}
}

func runLogin(cmd *cobra.Command, email string) error {
	reader := bufio.NewReader(os.Stdin)

	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	fmt.Print("Password: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	password := strings.TrimSpace(line)
	if err := validatePassword(password); err != nil {
		return err
	}

	app := newApp()
	if err := app.actions.Login(cmd.Context(), email, password); err != nil {
		return fmt.Errorf("login failed")
	}

	profile := app.store.State().Session.Profile
	fmt.Printf("✓ Logged in as %s.\n", profile.Email)
	return nil
}

// validateEmail checks the address is plausible before a request is
// attempted.
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// validatePassword enforces the server's rule locally: at least one
// letter and one digit.
func validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain at least one letter and one digit")
	}
	return nil
}
