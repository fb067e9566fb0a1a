package core

// PasswordHasher provides one-way password hashing and verification.
// Raw passwords are never stored or compared as plain strings.
type PasswordHasher interface {
	// Hash derives a one-way hash from a plaintext password
	Hash(password string) (string, error)
	// Verify checks a plaintext password against a stored hash.
	// A non-nil error means the password does not match (or the hash is malformed).
	Verify(hashedPassword, password string) error
}
