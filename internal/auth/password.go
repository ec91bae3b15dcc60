package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// tempPasswordLen is the length of generated temporary passwords.
const tempPasswordLen = 12

// tempPasswordChars excludes visually ambiguous characters (0/O, 1/l/I).
const tempPasswordChars = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

// Hasher hashes and verifies passwords with bcrypt. Cost is configurable;
// higher cost trades login latency for brute-force resistance.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost.
func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash returns the salted bcrypt hash of the plaintext.
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash.
// It never returns an error: any mismatch or malformed hash is false.
func (h *Hasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// TempPassword generates a random temporary password for a new account.
// The plaintext is returned to the caller exactly once for out-of-band
// delivery; only its hash is ever stored.
func TempPassword() (string, error) {
	buf := make([]byte, tempPasswordLen)
	max := big.NewInt(int64(len(tempPasswordChars)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate temp password: %w", err)
		}
		buf[i] = tempPasswordChars[n.Int64()]
	}
	return string(buf), nil
}
