package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tanviarora/aurum/internal/api"
	"github.com/tanviarora/aurum/internal/auth"
	"github.com/tanviarora/aurum/internal/config"
)

// buildClient wires config, the credential store and the API client
// the way every command needs them.
func buildClient() (*api.Client, *auth.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	store := auth.NewStore(cfg.Auth.CredentialsFile)
	client := api.NewClient(cfg.API.BaseURL, store)
	return client, store, cfg, nil
}

// describeFailure maps a request failure to the line the user sees.
// Session expiry points at the login command instead of a dead end;
// validation errors come back verbatim so the input can be corrected.
func describeFailure(err error) string {
	msg := api.UserMessage(err)
	switch {
	case api.NeedsLogin(err):
		return msg + " (run \"aurum login\")"
	case api.IsForbidden(err):
		return msg + " (your account lacks admin access)"
	default:
		return msg
	}
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
