package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"igclient/pkg/auth"
	"igclient/pkg/instagram"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in and verify the credentials against the API",
	Long: `Log in to Instagram with stored or prompted credentials.

The password is looked up in the credential stores first; if absent you
are prompted for it. Accounts protected by two-factor authentication
are reported but cannot complete the flow.`,
	Example: `  # Interactive login
  igclient login

  # Login with username
  igclient login myusername`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoginCmd,
}

// authCmd groups the credential storage commands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored Instagram credentials",
	Long: `Manage stored Instagram credentials.

Credentials are stored using:
  - System keychain (when available)
  - Encrypted file with PBKDF2 key derivation
  - Environment variables (read-only fallback)

Never share your credentials or config files!`,
}

// authStoreCmd represents the auth store command
var authStoreCmd = &cobra.Command{
	Use:   "store [username]",
	Short: "Store credentials securely",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAuthStore,
}

// authListCmd represents the auth list command
var authListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored accounts",
	RunE:  runAuthList,
}

// authDeleteCmd represents the auth delete command
var authDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Remove stored credentials",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthDelete,
}

func init() {
	authCmd.AddCommand(authStoreCmd)
	authCmd.AddCommand(authListCmd)
	authCmd.AddCommand(authDeleteCmd)
}

func runLoginCmd(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	username := cfg.Login.Username
	if len(args) == 1 {
		username = args[0]
	}
	if username == "" {
		username, err = promptLine("Instagram username: ")
		if err != nil {
			return err
		}
	}

	password, err := lookupPassword(username)
	if err != nil {
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	client := newClient(cfg, log)

	authed, err := client.Login(instagram.Credentials{
		Username: username,
		Password: password,
	})

	var twoFactor *instagram.TwoFactorError
	if errors.As(err, &twoFactor) {
		return fmt.Errorf("account %q requires two-factor authentication, which this client does not support", username)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (user id %s)\n", username, authed.UserID())
	return nil
}

// lookupPassword fetches the stored password for a username
func lookupPassword(username string) (string, error) {
	manager, err := auth.NewManager()
	if err != nil {
		return "", err
	}

	account, err := manager.Retrieve(username)
	if err != nil {
		return "", err
	}

	return account.Password, nil
}

func runAuthStore(cmd *cobra.Command, args []string) error {
	var username string
	var err error

	if len(args) == 1 {
		username = args[0]
	} else {
		username, err = promptLine("Instagram username: ")
		if err != nil {
			return err
		}
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	manager, err := auth.NewManager()
	if err != nil {
		return err
	}

	if err := manager.Store(&auth.Account{
		Username: username,
		Password: password,
	}); err != nil {
		return err
	}

	fmt.Printf("Stored credentials for %s\n", username)
	return nil
}

func runAuthList(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager()
	if err != nil {
		return err
	}

	accounts, err := manager.List()
	if err != nil {
		return err
	}

	if len(accounts) == 0 {
		fmt.Println("No stored accounts")
		return nil
	}

	for _, account := range accounts {
		fmt.Printf("%s (updated %s)\n", account.Username, account.LastModified.Format("2006-01-02 15:04"))
	}
	return nil
}

func runAuthDelete(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager()
	if err != nil {
		return err
	}

	if err := manager.Delete(args[0]); err != nil {
		return err
	}

	fmt.Printf("Removed credentials for %s\n", args[0])
	return nil
}

// promptLine reads one line of input from stdin
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echoing it
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(password), nil
}
