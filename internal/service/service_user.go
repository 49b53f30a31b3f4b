// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/crypto"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

// defaultRol is assigned to accounts registered without an explicit role.
const defaultRol = "USER"

// userService is the concrete implementation of [UserService].
// It handles account listing, registration with bcrypt password hashing,
// credential verification, and JWT session token issuance.
type userService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// hasher turns plaintext passwords into bcrypt digests and verifies
	// them at login.
	hasher crypto.PasswordHasher

	// validate checks request payloads against their struct tags.
	validate *validator.Validate

	// tokenSignKey is the HMAC secret used to sign session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository and
// populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validate *validator.Validate, cfg config.Auth, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validate:       validate,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// GetUsers lists every account in its public representation. Password
// digests never leave this method.
func (s *userService) GetUsers(ctx context.Context) ([]models.UserOut, error) {
	rows, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]models.UserOut, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.Out())
	}

	return users, nil
}

// RegisterUser creates a new account.
//
// It validates email syntax and password length, hashes the password with
// bcrypt, defaults the role to "USER" when absent, and delegates persistence
// to the repository. The plaintext password is dropped before the payload
// crosses the store boundary.
//
// Returns the persisted account (with a store-assigned id) or:
//   - [ErrInvalidDataProvided] if validation fails.
//   - A wrapped storage error if the repository call fails (e.g. the store's
//     email unique constraint rejects the insert).
func (s *userService) RegisterUser(ctx context.Context, user models.UserCreate) (models.UserOut, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.UserOut{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	digest, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing failed")
		return models.UserOut{}, fmt.Errorf("password hashing failed: %w", err)
	}

	row := models.User{
		UserBase:       user.UserBase,
		HashedPassword: digest,
	}
	if row.Rol == "" {
		row.Rol = defaultRol
	}

	created, err := s.userRepository.CreateUser(ctx, row)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.UserOut{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created.Out(), nil
}

// Login authenticates an existing account.
//
// It validates the payload shape, looks up the account by email, and
// verifies the plaintext password against the stored bcrypt digest.
//
// Returns the authenticated account or:
//   - [ErrInvalidDataProvided] if the payload fails validation.
//   - [ErrInvalidCredentials] if the email is unknown OR the password does
//     not match. Both failure causes collapse into the same sentinel.
//   - A wrapped storage error if the lookup itself fails.
func (s *userService) Login(ctx context.Context, credentials models.UserCredentials) (models.UserOut, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(credentials); err != nil {
		log.Err(err).Msg("invalid login data provided")
		return models.UserOut{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	found, err := s.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			log.Debug().Str("email", credentials.Email).Msg("login attempt for unknown email")
			return models.UserOut{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.UserOut{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !s.hasher.Verify(credentials.Password, found.HashedPassword) {
		log.Debug().Str("email", credentials.Email).Msg("wrong password")
		return models.UserOut{}, ErrInvalidCredentials
	}

	return found.Out(), nil
}

// CreateToken issues a signed HS256 session token for an authenticated
// account.
func (s *userService) CreateToken(ctx context.Context, user models.UserOut) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.ID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return token, nil
}
