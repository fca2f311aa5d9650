package services

import (
	"context"

	"fitmatch_server/apperrors"
	"fitmatch_server/models"
	"fitmatch_server/store"

	"github.com/rs/zerolog"
)

// MatchService handles match requests and their lifecycle.
type MatchService struct {
	Store  store.Store
	Logger zerolog.Logger
}

// CreateMatch stores a new match between two users. At most one match may
// exist per unordered pair, in either argument order; status defaults to
// pending when omitted.
func (s *MatchService) CreateMatch(ctx context.Context, input models.CreateMatchInput) (models.Match, error) {
	if existing := s.Store.GetMatchBetweenUsers(input.UserID1, input.UserID2); existing != nil {
		return models.Match{}, apperrors.AlreadyExists("Match already exists")
	}

	status := input.Status
	if status == "" {
		status = models.MatchStatusPending
	}

	match := s.Store.CreateMatch(input.UserID1, input.UserID2, status)
	s.Logger.Info().
		Str("matchId", match.ID).
		Str("userId1", match.UserID1).
		Str("userId2", match.UserID2).
		Str("status", match.Status).
		Msg("match created")
	return match, nil
}

// UpdateStatus resolves a match request. The allowed status set is validated
// at the boundary; re-resolving an already-resolved match is permitted.
func (s *MatchService) UpdateStatus(ctx context.Context, id, status string) (*models.Match, error) {
	match := s.Store.UpdateMatchStatus(id, status)
	if match == nil {
		return nil, apperrors.NotFound("Match not found")
	}
	s.Logger.Info().Str("matchId", id).Str("status", status).Msg("match status updated")
	return match, nil
}

// GetMatch retrieves a match by id.
func (s *MatchService) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	match := s.Store.GetMatch(id)
	if match == nil {
		return nil, apperrors.NotFound("Match not found")
	}
	return match, nil
}

// GetUserMatches returns every match the user participates in.
func (s *MatchService) GetUserMatches(ctx context.Context, userID string) ([]models.Match, error) {
	return s.Store.GetUserMatches(userID), nil
}
