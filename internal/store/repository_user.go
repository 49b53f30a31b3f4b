package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// userRepository is the hosted-store implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	client TableClient
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// table client and logger.
func NewUserRepository(client TableClient, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		client: client,
		logger: logger,
	}
}

// GetAllUsers fetches every row of the users table, hashed passwords
// included. Callers are responsible for never letting the hash out: the
// service layer converts rows to [models.UserOut] before responding.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users := make([]models.User, 0)
	if err := r.client.Select(ctx, models.User{}.TableName(), nil, &users); err != nil {
		log.Err(err).Msg("error selecting users")
		return nil, fmt.Errorf("error selecting users: %w", err)
	}

	return users, nil
}

// CreateUser persists a new user row (email, profile fields, and the
// already-hashed password) and returns the stored row with its
// store-assigned id.
//
// Email uniqueness is enforced by the store's unique constraint; a
// violation surfaces as [ErrStoreRejected] from the client.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	rows := make([]models.User, 0, 1)
	if err := r.client.Insert(ctx, models.User{}.TableName(), user, &rows); err != nil {
		log.Err(err).Str("email", user.Email).Msg("error inserting user")
		return models.User{}, fmt.Errorf("error inserting user: %w", err)
	}
	if len(rows) == 0 {
		log.Error().Str("email", user.Email).Msg("user insert returned no rows")
		return models.User{}, fmt.Errorf("user insert: %w", ErrNoRows)
	}

	return rows[0], nil
}

// FindUserByEmail retrieves the user row whose email matches exactly.
//
// Error handling:
//   - no row with that email → [ErrNoRows].
//   - transport or store failure → wrapped client error.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	rows := make([]models.User, 0, 1)
	filters := map[string]string{"email": email}
	if err := r.client.Select(ctx, models.User{}.TableName(), filters, &rows); err != nil {
		log.Err(err).Str("email", email).Msg("error selecting user by email")
		return models.User{}, fmt.Errorf("error selecting user by email: %w", err)
	}
	if len(rows) == 0 {
		return models.User{}, fmt.Errorf("user %s: %w", email, ErrNoRows)
	}

	return rows[0], nil
}
