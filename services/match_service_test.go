package services

import (
	"context"
	"errors"
	"testing"

	"fitmatch_server/apperrors"
	"fitmatch_server/models"
	"fitmatch_server/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchService() *MatchService {
	return &MatchService{Store: store.NewMemoryStore(), Logger: zerolog.Nop()}
}

func TestCreateMatchDefaultsToPending(t *testing.T) {
	svc := newMatchService()

	match, err := svc.CreateMatch(context.Background(), models.CreateMatchInput{
		UserID1: "u1",
		UserID2: "u2",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusPending, match.Status)
}

func TestCreateMatchRejectsDuplicatePair(t *testing.T) {
	svc := newMatchService()
	ctx := context.Background()

	_, err := svc.CreateMatch(ctx, models.CreateMatchInput{UserID1: "u1", UserID2: "u2"})
	require.NoError(t, err)

	// same pair in reverse order counts as a duplicate
	_, err = svc.CreateMatch(ctx, models.CreateMatchInput{UserID1: "u2", UserID2: "u1"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestUpdateStatus(t *testing.T) {
	svc := newMatchService()
	ctx := context.Background()

	created, err := svc.CreateMatch(ctx, models.CreateMatchInput{UserID1: "u1", UserID2: "u2"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.ID, models.MatchStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusAccepted, updated.Status)
}

func TestUpdateStatusUnknownMatch(t *testing.T) {
	svc := newMatchService()

	_, err := svc.UpdateStatus(context.Background(), "no-such-id", models.MatchStatusAccepted)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetMatch(t *testing.T) {
	svc := newMatchService()
	ctx := context.Background()

	created, err := svc.CreateMatch(ctx, models.CreateMatchInput{UserID1: "u1", UserID2: "u2"})
	require.NoError(t, err)

	fetched, err := svc.GetMatch(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, *fetched)

	_, err = svc.GetMatch(ctx, "no-such-id")
	assert.Error(t, err)
}

func TestGetUserMatches(t *testing.T) {
	svc := newMatchService()
	ctx := context.Background()

	m1, err := svc.CreateMatch(ctx, models.CreateMatchInput{UserID1: "u1", UserID2: "u2"})
	require.NoError(t, err)
	_, err = svc.CreateMatch(ctx, models.CreateMatchInput{UserID1: "u2", UserID2: "u3"})
	require.NoError(t, err)

	matches, err := svc.GetUserMatches(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, m1.ID, matches[0].ID)
}
