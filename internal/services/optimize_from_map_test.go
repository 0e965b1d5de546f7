package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics-copilot/internal/adapters/backend"
	"logistics-copilot/internal/domain"
	"logistics-copilot/internal/platform/apperror"
)

func TestOptimizeFromMapSequencesBySelectionOrder(t *testing.T) {
	mock := backend.NewMockBackend(nil)

	_, err := OptimizeFromMap(context.Background(), mock, []domain.Location{
		{Name: "A", Lat: 1, Lon: 1},
		{Name: "B", Lat: 2, Lon: 2},
	})
	require.NoError(t, err)

	require.Len(t, mock.LastOptimized, 2)
	assert.Equal(t, 1, mock.LastOptimized[0].VisitSequence)
	assert.Equal(t, 2, mock.LastOptimized[1].VisitSequence)
}

func TestOptimizeFromMapOverridesPreexistingSequence(t *testing.T) {
	// Unlike the text flow, selection order is authoritative here.
	mock := backend.NewMockBackend(nil)

	_, err := OptimizeFromMap(context.Background(), mock, []domain.Location{
		{Name: "A", VisitSequence: 7},
		{Name: "B", VisitSequence: 3},
		{Name: "C", VisitSequence: 1},
	})
	require.NoError(t, err)

	got := make([]int, len(mock.LastOptimized))
	for i, loc := range mock.LastOptimized {
		got[i] = loc.VisitSequence
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestOptimizeFromMapFailsFastBelowTwoWaypoints(t *testing.T) {
	for _, locs := range [][]domain.Location{nil, {{Name: "A"}}} {
		mock := backend.NewMockBackend(nil)

		_, err := OptimizeFromMap(context.Background(), mock, locs)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		assert.Equal(t, ErrTooFewWaypoints, apperror.From(err).Message)
		assert.Equal(t, 0, mock.OptimizeCalls, "no network call below the gate")
	}
}
