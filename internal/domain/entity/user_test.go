package entity

import (
	"testing"
	"time"

	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coremocks "github.com/fintrack-app/fintrack-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	t.Run("Creates a user with timestamps", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("Budi", "budi@example.com", "$2a$10$hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Budi", user.Name)
		assert.Equal(t, "budi@example.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
		assert.Nil(t, user.ProfileImage)
	})

	t.Run("Rejects blank fields", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewUser("  ", "budi@example.com", "$2a$10$hash", mockTime)
		assert.ErrorIs(t, err, errs.ErrMissingFields)

		_, err = NewUser("Budi", "", "$2a$10$hash", mockTime)
		assert.ErrorIs(t, err, errs.ErrMissingFields)

		_, err = NewUser("Budi", "budi@example.com", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})
}

func TestHasProfileImage(t *testing.T) {
	image := "profile_7_1700000000.png"
	empty := ""

	assert.True(t, (&User{ProfileImage: &image}).HasProfileImage())
	assert.False(t, (&User{ProfileImage: &empty}).HasProfileImage())
	assert.False(t, (&User{}).HasProfileImage())
}
