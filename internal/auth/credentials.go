package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the single admin identity, sourced from configuration at
// startup and immutable for the process lifetime. PasswordHash, when set,
// takes precedence over the plaintext Password.
type AdminCredentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// Match compares a submitted username/password pair against the configured
// credentials in constant time.
func (a AdminCredentials) Match(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1

	if a.PasswordHash != "" {
		passOK := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
		return userOK && passOK
	}

	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
	return userOK && passOK
}
