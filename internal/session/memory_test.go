package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemory(ttl time.Duration) (*Memory, *time.Time) {
	m := NewMemory(ttl)

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	return m, &now
}

func TestMemory_CreateAndGet(t *testing.T) {
	m, _ := newTestMemory(time.Hour)
	ctx := context.Background()

	token, err := m.Create(ctx, 1, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	s, err := m.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: 1, SchoolID: 2}, s)

	other, err := m.Create(ctx, 1, 2)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestMemory_SlidingExpiry(t *testing.T) {
	m, now := newTestMemory(time.Hour)
	ctx := context.Background()

	token, err := m.Create(ctx, 1, 2)
	require.NoError(t, err)

	// Repeated reads inside the window keep the session alive well
	// past the original deadline.
	for i := 0; i < 5; i++ {
		*now = now.Add(45 * time.Minute)

		_, err := m.Get(ctx, token)
		require.NoError(t, err)
	}

	// Left unused for longer than the TTL, the next read fails.
	*now = now.Add(time.Hour + time.Minute)

	_, err = m.Get(ctx, token)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_GetUnknownToken(t *testing.T) {
	m, _ := newTestMemory(time.Hour)

	_, err := m.Get(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_RemoveIsIdempotent(t *testing.T) {
	m, _ := newTestMemory(time.Hour)
	ctx := context.Background()

	token, err := m.Create(ctx, 1, 2)
	require.NoError(t, err)

	require.NoError(t, m.Remove(ctx, token))

	_, err = m.Get(ctx, token)
	require.ErrorIs(t, err, ErrNotFound)

	// Removing again, or removing garbage, is not an error.
	require.NoError(t, m.Remove(ctx, token))
	require.NoError(t, m.Remove(ctx, "never-existed"))
}

func TestDecode(t *testing.T) {
	s, err := decode("12:34")
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: 12, SchoolID: 34}, s)

	for _, bad := range []string{"", "12", "a:b", "12:"} {
		_, err := decode(bad)
		require.Error(t, err, bad)
	}

	roundTrip, err := decode(encode(Session{UserID: 7, SchoolID: 9}))
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: 7, SchoolID: 9}, roundTrip)
}
