// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes and verifies account passwords. It abstracts the
// underlying algorithm (bcrypt in the default wiring) away from the domain.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a plaintext password matches a stored hash.
	Check(password, hash string) bool
}
