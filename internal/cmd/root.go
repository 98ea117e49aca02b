package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aurum",
	Short: "Aurum - jewelry store admin console",
	Long: `Aurum is the terminal admin console for the jewelry storefront.

It manages products, categories, collections, occasions, banners,
users, orders and reviews against the store's REST backend, and shows
the dashboard statistics. Each resource has list/get/create/edit/delete
commands plus an interactive browse screen.

Log in first with "aurum login"; the session token is stored under
~/.aurum/ and attached to every request.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Optional .env for local development overrides.
	_ = godotenv.Load()
}
