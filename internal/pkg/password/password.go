// Package password wraps bcrypt behind the two operations the rest of
// the system needs: one-way salted hashing and verification.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a salted bcrypt hash of plain. The salt is random, so
// hashing the same input twice yields different output.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches hash. A malformed hash counts as
// a mismatch rather than an error.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
