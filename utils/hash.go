package utils

import "golang.org/x/crypto/bcrypt"

// HashCost matches the cost the seed data was hashed with.
const HashCost = 10

// HashPassword takes a plain text password and returns a bcrypt hash to store in the DB.
func HashPassword(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), HashCost)
	return string(b), err
}

// CheckPassword verifies a plaintext password against a stored hash.
// It returns true when the password matches.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
