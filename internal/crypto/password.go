// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	// cost is the bcrypt work factor. Stored in the struct so it can be
	// raised per deployment without touching call sites.
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] backed by bcrypt with the
// library default cost. bcrypt generates and embeds a random salt per
// digest, so two hashes of the same password never compare equal as
// strings — only Verify can relate them.
func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash implements [PasswordHasher]. Returns a wrapped error if bcrypt
// rejects the input (passwords longer than 72 bytes).
func (b *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify implements [PasswordHasher]. bcrypt compares in constant time per
// its own contract; any error (mismatch, truncated digest, unknown version
// prefix) collapses to false.
func (b *bcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
