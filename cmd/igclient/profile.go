package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"igclient/pkg/instagram"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile <username>",
	Short: "Fetch a user's public profile",
	Example: `  # Fetch a profile and print it as JSON
  igclient profile instagram`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	username := instagram.SanitizeUsername(args[0])
	if !instagram.IsValidUsername(username) {
		return fmt.Errorf("invalid username: %s", args[0])
	}

	cfg, log, err := setup()
	if err != nil {
		return err
	}

	client := newClient(cfg, log)

	profile, err := client.FetchUserProfile(username)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}
