// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserBase holds the public identity attributes shared by every user
// representation. Credential material never lives here.
type UserBase struct {
	// Email is the unique user login identifier.
	// Syntactic validity is checked at this layer; uniqueness is enforced
	// by the store.
	Email string `json:"email" validate:"required,email"`

	// FullName is the optional display name of the user. Always present on
	// the wire, even when empty, so clients see a stable shape.
	FullName string `json:"full_name"`

	// Rol is the authorization role of the account. Defaults to "USER"
	// when not supplied.
	Rol string `json:"rol"`
}

// UserCreate is the payload accepted by POST /users.
// Password is plaintext and exists only for the duration of the request:
// it is hashed before persistence and never echoed back.
type UserCreate struct {
	UserBase

	// Password is the plaintext password. Minimum 6 characters; capped at
	// 72 because that is the bcrypt input limit.
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UserCredentials is the payload accepted by POST /login: an email and the
// plaintext password to verify. Extra profile fields sent by older clients
// are ignored.
type UserCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserOut is the client-facing user representation. It never carries a
// password in any form.
type UserOut struct {
	// ID is the unique identifier assigned by the store on insert.
	ID string `json:"id"`

	UserBase
}

// User is the persisted user row as stored and returned by the store.
// HashedPassword crosses the store boundary but MUST never reach an HTTP
// response; handlers respond with [UserOut] only.
type User struct {
	// ID is the unique identifier assigned by the store on insert.
	ID string `json:"id,omitempty"`

	UserBase

	// HashedPassword is the bcrypt digest of the user's password.
	HashedPassword string `json:"hashed_password,omitempty"`
}

// Out converts a store row into its client-facing representation,
// stripping credential material.
func (u User) Out() UserOut {
	return UserOut{ID: u.ID, UserBase: u.UserBase}
}

// TableName returns the name of the store table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
