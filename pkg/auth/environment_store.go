package auth

import (
	"os"
	"time"
)

// EnvironmentStore implements CredentialStore using environment
// variables. Read-only; useful for CI and one-off runs.
type EnvironmentStore struct{}

// NewEnvironmentStore creates a new environment-based credential store
func NewEnvironmentStore() *EnvironmentStore {
	return &EnvironmentStore{}
}

// Store is not supported for environment variables
func (e *EnvironmentStore) Store(account *Account) error {
	return ErrStoreUnavailable
}

// Retrieve gets credentials from IGCLIENT_USERNAME/IGCLIENT_PASSWORD
func (e *EnvironmentStore) Retrieve(username string) (*Account, error) {
	envUsername := os.Getenv("IGCLIENT_USERNAME")
	password := os.Getenv("IGCLIENT_PASSWORD")

	if envUsername == "" || password == "" {
		return nil, ErrCredentialsNotFound
	}
	if username != "" && username != envUsername {
		return nil, ErrCredentialsNotFound
	}

	return &Account{
		Username:     envUsername,
		Password:     password,
		LastModified: time.Now(),
	}, nil
}

// List returns a single account if environment variables are set
func (e *EnvironmentStore) List() ([]*Account, error) {
	account, err := e.Retrieve("")
	if err != nil {
		return []*Account{}, nil
	}
	return []*Account{account}, nil
}

// Delete is not supported for environment variables
func (e *EnvironmentStore) Delete(username string) error {
	return ErrStoreUnavailable
}

// Exists checks if environment credentials exist
func (e *EnvironmentStore) Exists(username string) bool {
	account, err := e.Retrieve(username)
	return err == nil && account != nil
}
