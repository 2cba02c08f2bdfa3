// Package auth stores Instagram login credentials.
//
// Credentials are kept in the system keychain when available, with an
// encrypted file (PBKDF2 + AES-GCM) as fallback and environment
// variables as a read-only last resort. The Manager tries the stores in
// that order. Only login material is persisted; session state is not.
package auth
