package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for every new hash. Verification reads
// the cost embedded in the digest, so raising this later only affects newly
// created accounts.
const Cost = 10

// ErrPasswordMismatch reports that the password does not match the stored
// digest. Any other error from VerifyPassword means the digest itself is
// malformed.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword returns a salted bcrypt digest of password. The salt is
// randomized per call, so hashing the same input twice yields different
// digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt digest.
// Returns nil on match, ErrPasswordMismatch on mismatch, and the underlying
// bcrypt error for malformed digests.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
