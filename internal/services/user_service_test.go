package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleamarket_backend/internal/models"
)

func TestUserService_IconLifecycle(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users)
	require.NoError(t, users.Create(&models.User{Username: "bob", Email: "bob@test.kz"}))

	actor, err := users.FindByID(1)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateIcon(actor, "avatar.png"))
	stored, err := users.FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, stored.Icon)
	assert.Equal(t, "avatar.png", *stored.Icon)

	// Сброс иконки обнуляет поле, а не пишет пустую строку.
	require.NoError(t, svc.RemoveIcon(actor))
	stored, err = users.FindByID(1)
	require.NoError(t, err)
	assert.Nil(t, stored.Icon)
}
