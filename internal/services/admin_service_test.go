package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/services/dto"
)

func newTestAdminService() (*AdminService, *fakeUserRepo) {
	users := newFakeUserRepo()
	svc := NewAdminService(users, newFakeAdRepo(), newFakeCityRepo(), newFakeItemRepo())
	return svc, users
}

func TestAdminService_UpdateUserFlags(t *testing.T) {
	svc, users := newTestAdminService()
	require.NoError(t, users.Create(&models.User{Username: "bob", Email: "bob@test.kz"}))

	grant := true
	updated, err := svc.UpdateUserFlags(1, dto.UpdateUserFlagsRequest{IsAdmin: &grant})
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin)

	stored, err := users.FindByID(1)
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)

	// Флаг снимается тем же путем, остальные поля не трогаются.
	revoke := false
	updated, err = svc.UpdateUserFlags(1, dto.UpdateUserFlagsRequest{IsAdmin: &revoke})
	require.NoError(t, err)
	assert.False(t, updated.IsAdmin)
	assert.Equal(t, "bob", updated.Username)
}

func TestAdminService_UpdateUserFlagsUnknownUser(t *testing.T) {
	svc, _ := newTestAdminService()

	grant := true
	_, err := svc.UpdateUserFlags(404, dto.UpdateUserFlagsRequest{IsAdmin: &grant})
	assert.Error(t, err)
}

func TestAdminService_DeleteUser(t *testing.T) {
	svc, users := newTestAdminService()
	require.NoError(t, users.Create(&models.User{Username: "bob", Email: "bob@test.kz"}))

	require.NoError(t, svc.DeleteUser(1))
	assert.Error(t, svc.DeleteUser(1))
}
