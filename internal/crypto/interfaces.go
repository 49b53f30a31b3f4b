package crypto

// PasswordHasher wraps the one-way password hashing primitive used when
// creating accounts and verifying logins. It knows nothing about the
// network, the store, or users — its only job is turning plaintext
// passwords into digests and back-checking them.
type PasswordHasher interface {
	// Hash produces a salted one-way digest of the plaintext password.
	// Returns an error only when the underlying primitive rejects the
	// input (e.g. the plaintext exceeds the bcrypt length limit).
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. It returns false on
	// any mismatch or malformed digest and never distinguishes the cause:
	// "wrong password" and "broken digest" look identical to the caller.
	Verify(password, digest string) bool
}
