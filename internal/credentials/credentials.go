// Package credentials hashes and verifies user passwords.
// Plaintext passwords never leave this package: they are hashed on the way
// in and compared against stored hashes on the way out, nothing else.
package credentials

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt hash of the given plaintext password.
// bcrypt salts every call, so hashing the same password twice yields
// different outputs that both verify.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches the stored hash.
// bcrypt's comparison is constant-time with respect to the guess.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
