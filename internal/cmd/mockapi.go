package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanviarora/aurum/internal/config"
	"github.com/tanviarora/aurum/internal/mockapi"
)

var mockAPICmd = &cobra.Command{
	Use:   "mock-api",
	Short: "Run the in-memory development backend",
	Long: `Start a local stand-in for the storefront backend, seeded with
sample jewelry data. The console's default base URL points at it, so

  aurum mock-api &
  aurum login --email admin@example.com --password secret99
  aurum products list

works with no real backend around.`,
	RunE: runMockAPI,
}

func init() {
	rootCmd.AddCommand(mockAPICmd)
}

func runMockAPI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	srv := mockapi.NewServer()
	fmt.Printf("🌐 Mock backend listening on %s (token: any login)\n", cfg.MockAPI.Addr)
	if err := srv.Start(cfg.MockAPI.Addr); err != nil {
		return fmt.Errorf("mock backend failed: %w", err)
	}
	return nil
}
