package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCredentialManager(t *testing.T) {
	mockStore := NewMockStore()
	manager := NewManagerWithStores(mockStore)

	// Test storing credentials
	account := &Account{
		Username:     "testuser",
		Password:     "test_password_12345",
		LastModified: time.Now(),
	}

	err := manager.Store(account)
	if err != nil {
		t.Errorf("Failed to store account: %v", err)
	}

	// Test retrieving credentials
	retrieved, err := manager.Retrieve("testuser")
	if err != nil {
		t.Errorf("Failed to retrieve account: %v", err)
	}

	if retrieved.Username != account.Username {
		t.Errorf("Username mismatch: got %s, want %s", retrieved.Username, account.Username)
	}
	if retrieved.Password != account.Password {
		t.Errorf("Password mismatch: got %s, want %s", retrieved.Password, account.Password)
	}

	// Test listing accounts
	accounts, err := manager.List()
	if err != nil {
		t.Errorf("Failed to list accounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Errorf("Expected 1 account in list, got %d", len(accounts))
	}

	// Test deletion
	err = manager.Delete("testuser")
	if err != nil {
		t.Errorf("Failed to delete account: %v", err)
	}

	// Verify deletion
	_, err = manager.Retrieve("testuser")
	if err == nil {
		t.Error("Expected error retrieving deleted account")
	}

	// Verify mock store state
	if mockStore.Count() != 0 {
		t.Errorf("Expected 0 accounts after deletion, got %d", mockStore.Count())
	}
}

func TestManagerRejectsincompleteAccount(t *testing.T) {
	manager := NewManagerWithStores(NewMockStore())

	if err := manager.Store(&Account{Password: "pass"}); err == nil {
		t.Error("Expected error storing account without username")
	}

	if err := manager.Store(&Account{Username: "user"}); err == nil {
		t.Error("Expected error storing account without password")
	}
}

func TestManagerFallsBackAcrossStores(t *testing.T) {
	failing := NewMockStore()
	failing.StoreError = fmt.Errorf("backend down")
	failing.RetrieveError = fmt.Errorf("backend down")

	working := NewMockStore()
	manager := NewManagerWithStores(failing, working)

	account := &Account{Username: "fallback_user", Password: "pass"}
	if err := manager.Store(account); err != nil {
		t.Fatalf("Failed to store via fallback store: %v", err)
	}

	if working.Count() != 1 {
		t.Errorf("Expected account in fallback store, got %d", working.Count())
	}

	retrieved, err := manager.Retrieve("fallback_user")
	if err != nil {
		t.Fatalf("Failed to retrieve via fallback store: %v", err)
	}
	if retrieved.Password != "pass" {
		t.Errorf("Password mismatch after fallback: got %s", retrieved.Password)
	}
}

func TestManagerListMergesMostRecent(t *testing.T) {
	older := NewMockStore()
	newer := NewMockStore()

	older.Store(&Account{Username: "user", Password: "old"})
	older.accounts["user"].LastModified = time.Now().Add(-time.Hour)

	newer.Store(&Account{Username: "user", Password: "new"})
	newer.accounts["user"].LastModified = time.Now()

	manager := NewManagerWithStores(older, newer)

	accounts, err := manager.List()
	if err != nil {
		t.Fatalf("Failed to list accounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("Expected 1 merged account, got %d", len(accounts))
	}
	if accounts[0].Password != "new" {
		t.Errorf("Expected most recent account to win, got password %s", accounts[0].Password)
	}
}

func TestEncryptedFileStore(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "test_creds.enc")

	os.Setenv("IGCLIENT_PASSPHRASE", "test_passphrase_123")
	defer os.Unsetenv("IGCLIENT_PASSPHRASE")

	store, err := NewEncryptedFileStore(tempFile)
	if err != nil {
		t.Fatalf("Failed to create encrypted store: %v", err)
	}

	account := &Account{
		Username: "encrypted_user",
		Password: "encrypted_password",
	}

	if err := store.Store(account); err != nil {
		t.Errorf("Failed to store in encrypted file: %v", err)
	}

	retrieved, err := store.Retrieve("encrypted_user")
	if err != nil {
		t.Errorf("Failed to retrieve from encrypted file: %v", err)
	}

	if retrieved.Password != account.Password {
		t.Errorf("Password mismatch after encryption/decryption")
	}

	// Verify file is actually encrypted
	fileContent, err := os.ReadFile(tempFile)
	if err != nil {
		t.Fatal(err)
	}

	if contains(fileContent, []byte("encrypted_password")) {
		t.Error("File contains plaintext password")
	}
	if contains(fileContent, []byte("encrypted_user")) {
		t.Error("File contains plaintext username")
	}
}

func TestEnvironmentStore(t *testing.T) {
	os.Setenv("IGCLIENT_USERNAME", "env_user")
	os.Setenv("IGCLIENT_PASSWORD", "env_password")
	defer os.Unsetenv("IGCLIENT_USERNAME")
	defer os.Unsetenv("IGCLIENT_PASSWORD")

	store := NewEnvironmentStore()

	account, err := store.Retrieve("")
	if err != nil {
		t.Errorf("Failed to retrieve from environment: %v", err)
	}

	if account.Username != "env_user" {
		t.Errorf("Username mismatch: got %s, want env_user", account.Username)
	}
	if account.Password != "env_password" {
		t.Errorf("Password mismatch: got %s, want env_password", account.Password)
	}

	// Retrieving a different username must miss
	if _, err := store.Retrieve("someone_else"); err != ErrCredentialsNotFound {
		t.Errorf("Expected ErrCredentialsNotFound for mismatched username, got %v", err)
	}

	// Test that writes are not supported
	if err := store.Store(&Account{}); err != ErrStoreUnavailable {
		t.Error("Expected ErrStoreUnavailable for environment store")
	}
	if err := store.Delete("env_user"); err != ErrStoreUnavailable {
		t.Error("Expected ErrStoreUnavailable for environment store delete")
	}
}

func TestManagerWithEncryptedStore(t *testing.T) {
	tempDir := t.TempDir()

	os.Setenv("IGCLIENT_PASSPHRASE", "test_passphrase_manager")
	defer os.Unsetenv("IGCLIENT_PASSPHRASE")

	encryptedStore, err := NewEncryptedFileStore(filepath.Join(tempDir, "credentials.enc"))
	if err != nil {
		t.Fatalf("Failed to create encrypted store: %v", err)
	}

	manager := NewManagerWithStores(encryptedStore)

	account := &Account{
		Username:     "realuser",
		Password:     "real_password",
		LastModified: time.Now(),
	}

	if err := manager.Store(account); err != nil {
		t.Fatalf("Failed to store account: %v", err)
	}

	accounts, err := manager.List()
	if err != nil {
		t.Fatalf("Failed to list accounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Errorf("Expected 1 account in list, got %d", len(accounts))
	}

	retrieved, err := manager.Retrieve("realuser")
	if err != nil {
		t.Fatalf("Failed to retrieve account: %v", err)
	}

	if retrieved.Username != account.Username {
		t.Errorf("Username mismatch: got %s, want %s", retrieved.Username, account.Username)
	}
	if retrieved.Password != account.Password {
		t.Errorf("Password mismatch: got %s, want %s", retrieved.Password, account.Password)
	}
}

func TestMockStore(t *testing.T) {
	store := NewMockStore()

	accounts, err := store.List()
	if err != nil {
		t.Errorf("Failed to list empty store: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("Expected 0 accounts, got %d", len(accounts))
	}

	account := &Account{
		Username: "mockuser",
		Password: "mock_password",
	}

	if err := store.Store(account); err != nil {
		t.Errorf("Failed to store account: %v", err)
	}

	if store.Count() != 1 {
		t.Errorf("Expected 1 account, got %d", store.Count())
	}

	if !store.Exists("mockuser") {
		t.Error("Account should exist")
	}

	// Test error injection
	store.ListError = fmt.Errorf("injected error")
	_, err = store.List()
	if err == nil || err.Error() != "injected error" {
		t.Error("Expected injected error")
	}
}

func contains(data []byte, substr []byte) bool {
	for i := 0; i <= len(data)-len(substr); i++ {
		if string(data[i:i+len(substr)]) == string(substr) {
			return true
		}
	}
	return false
}
