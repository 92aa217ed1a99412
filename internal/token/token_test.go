package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_NewPair_Verify(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	pair, err := m.NewPair("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	userID, err := m.Verify(pair.Access, TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	userID, err = m.Verify(pair.Refresh, TypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestManager_Verify_WrongType(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	pair, err := m.NewPair("user-1")
	require.NoError(t, err)

	_, err = m.Verify(pair.Refresh, TypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify(pair.Access, TypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_Expired(t *testing.T) {
	m := NewManager("test-secret", -1*time.Minute, 24*time.Hour)

	pair, err := m.NewPair("user-1")
	require.NoError(t, err)

	_, err = m.Verify(pair.Access, TypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	other := NewManager("other-secret", 15*time.Minute, 24*time.Hour)

	pair, err := m.NewPair("user-1")
	require.NoError(t, err)

	_, err = other.Verify(pair.Access, TypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_Garbage(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	_, err := m.Verify("not-a-token", TypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
