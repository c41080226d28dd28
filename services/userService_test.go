package services

import (
	"CarePulse/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, models.CreateUserParams{
		Name:  "Ada Lovelace",
		Email: " Ada@Example.com ",
		Phone: "+15555550100",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)

	t.Run("returning email yields the same user", func(t *testing.T) {
		again, err := svc.CreateUser(ctx, models.CreateUserParams{
			Name:  "Ada L.",
			Email: "ada@example.com",
			Phone: "+15555550100",
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, again.ID)
	})

	t.Run("invalid phone", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, models.CreateUserParams{
			Name:  "Bob",
			Email: "bob@example.com",
			Phone: "555-0100",
		})
		assert.Error(t, err)
	})
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	_, err := svc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
