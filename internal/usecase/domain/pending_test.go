package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPendingStoreTakeIsOneTime(t *testing.T) {
	s := newPendingStore(time.Minute)

	token := s.put(pendingScore{teamNumber: 7, score: 30, attempt: 1})
	require.NotEmpty(t, token)

	ps, ok := s.take(token)
	require.True(t, ok)
	require.Equal(t, 7, ps.teamNumber)
	require.Equal(t, 30, ps.score)

	_, ok = s.take(token)
	require.False(t, ok)
}

func TestPendingStoreUnknownToken(t *testing.T) {
	s := newPendingStore(time.Minute)

	_, ok := s.take("nope")
	require.False(t, ok)
}

func TestPendingStoreExpiry(t *testing.T) {
	s := newPendingStore(time.Nanosecond)

	token := s.put(pendingScore{teamNumber: 7, score: 30})
	time.Sleep(5 * time.Millisecond)

	_, ok := s.take(token)
	require.False(t, ok)
}
