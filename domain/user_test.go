package dmn

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "Tangerine-Lighthouse-Orbit-1987"

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		id := uuid.New()
		u, err := NewUser(UserConfig{ID: id, Username: "maze_runner", PlainPassword: strongPassword})
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "maze_runner", u.Username)
		assert.NotEqual(t, strongPassword, u.PasswordHash)
		assert.Zero(t, u.BestScore)
		assert.True(t, u.VerifyPassword(strongPassword))
		assert.False(t, u.VerifyPassword("wrong"))
	})

	t.Run("username rules", func(t *testing.T) {
		_, err := NewUser(UserConfig{Username: "ab", PlainPassword: strongPassword})
		assert.ErrorIs(t, err, ErrUsernameTooShort)

		_, err = NewUser(UserConfig{Username: "a_very_long_username_indeed", PlainPassword: strongPassword})
		assert.ErrorIs(t, err, ErrUsernameTooLong)

		_, err = NewUser(UserConfig{Username: "bad name!", PlainPassword: strongPassword})
		assert.ErrorIs(t, err, ErrInvalidUsernameFomat)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := NewUser(UserConfig{Username: "maze_runner", PlainPassword: "password"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestRecordScore(t *testing.T) {
	u := &User{BestScore: 3}
	assert.False(t, u.RecordScore(2))
	assert.False(t, u.RecordScore(3))
	assert.True(t, u.RecordScore(5))
	assert.Equal(t, 5, u.BestScore)
}
