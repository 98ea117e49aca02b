package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanviarora/aurum/internal/api"
	"github.com/tanviarora/aurum/internal/auth"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Admin account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Admin account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	client, store, cfg, err := buildClient()
	if err != nil {
		return err
	}

	fmt.Printf("🔐 Logging in to %s...\n", cfg.API.BaseURL)
	session, err := api.Create[auth.Session](cmd.Context(), client, "auth/login", map[string]string{
		"email":    loginEmail,
		"password": loginPassword,
	})
	if err != nil {
		return fmt.Errorf("login failed: %s", api.UserMessage(err))
	}
	if err := store.Save(session); err != nil {
		return err
	}

	fmt.Printf("✅ Logged in as %s (%s)\n", session.User.Name, session.User.Role)
	return nil
}
