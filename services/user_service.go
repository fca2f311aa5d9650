package services

import (
	"context"

	"fitmatch_server/apperrors"
	"fitmatch_server/models"
	"fitmatch_server/store"

	"github.com/rs/zerolog"
)

// UserService handles profile operations on top of the store.
type UserService struct {
	Store  store.Store
	Logger zerolog.Logger
}

// CreateUser stores a new user profile and returns it with id and timestamps
// assigned.
func (s *UserService) CreateUser(ctx context.Context, input models.CreateUserInput) (models.User, error) {
	// Email uniqueness is not enforced; surface collisions in the logs so
	// they are at least visible.
	if existing := s.Store.GetUserByEmail(input.Email); existing != nil {
		s.Logger.Warn().Str("email", input.Email).Str("existingUserId", existing.ID).Msg("creating user with duplicate email")
	}

	user := s.Store.CreateUser(input)
	s.Logger.Info().Str("userId", user.ID).Str("email", user.Email).Msg("user created")
	return user, nil
}

// GetUser retrieves a user by id.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user := s.Store.GetUser(id)
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email address.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := s.Store.GetUserByEmail(email)
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}

// UpdateUser merges the given fields into an existing profile.
func (s *UserService) UpdateUser(ctx context.Context, id string, updates models.UpdateUserInput) (*models.User, error) {
	user := s.Store.UpdateUser(id, updates)
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	s.Logger.Info().Str("userId", id).Msg("user updated")
	return user, nil
}

// GetAllUsers returns every stored user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Store.GetAllUsers(), nil
}

// GetUsersNearby returns every user except the given one.
func (s *UserService) GetUsersNearby(ctx context.Context, userID string) ([]models.User, error) {
	return s.Store.GetUsersNearby(userID), nil
}

// SetOnlineStatus flips the user's online flag and refreshes last-seen.
// Unknown ids are ignored.
func (s *UserService) SetOnlineStatus(ctx context.Context, id string, isOnline bool) error {
	s.Store.UpdateUserOnlineStatus(id, isOnline)
	s.Logger.Debug().Str("userId", id).Bool("isOnline", isOnline).Msg("online status updated")
	return nil
}
