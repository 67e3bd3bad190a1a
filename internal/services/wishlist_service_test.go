package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/services/dto"
)

func newTestWishlistService() (*WishlistService, *fakeWishlistRepo, *fakeItemRepo) {
	wishlist := newFakeWishlistRepo()
	items := newFakeItemRepo()
	return NewWishlistService(wishlist, items), wishlist, items
}

func TestWishlistService_AddIsIdempotent(t *testing.T) {
	svc, wishlist, items := newTestWishlistService()
	require.NoError(t, items.Create(&models.Item{Name: "bike", StoreID: 1}))

	actor := &models.User{}
	actor.ID = 7

	first, err := svc.Add(actor, dto.AddWishlistItemRequest{ItemID: 1})
	require.NoError(t, err)

	// Повторное откладывание возвращает ту же запись, дубликата нет.
	second, err := svc.Add(actor, dto.AddWishlistItemRequest{ItemID: 1})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, wishlist.entries, 1)
}

func TestWishlistService_AddUnknownItem(t *testing.T) {
	svc, _, _ := newTestWishlistService()
	actor := &models.User{}
	actor.ID = 7

	_, err := svc.Add(actor, dto.AddWishlistItemRequest{ItemID: 404})
	assert.Error(t, err)
}

func TestWishlistService_ListOnlyOwnEntries(t *testing.T) {
	svc, _, items := newTestWishlistService()
	require.NoError(t, items.Create(&models.Item{Name: "bike", StoreID: 1}))
	require.NoError(t, items.Create(&models.Item{Name: "lamp", StoreID: 1}))

	owner := &models.User{}
	owner.ID = 7
	other := &models.User{}
	other.ID = 8

	_, err := svc.Add(owner, dto.AddWishlistItemRequest{ItemID: 1})
	require.NoError(t, err)
	_, err = svc.Add(other, dto.AddWishlistItemRequest{ItemID: 2})
	require.NoError(t, err)

	entries, err := svc.List(owner)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(1), entries[0].ItemID)
}

func TestWishlistService_RemoveForeignEntryRejected(t *testing.T) {
	svc, wishlist, items := newTestWishlistService()
	require.NoError(t, items.Create(&models.Item{Name: "bike", StoreID: 1}))

	owner := &models.User{}
	owner.ID = 7
	entry, err := svc.Add(owner, dto.AddWishlistItemRequest{ItemID: 1})
	require.NoError(t, err)

	intruder := &models.User{}
	intruder.ID = 8
	assert.Error(t, svc.Remove(intruder, entry.ID))
	assert.Len(t, wishlist.entries, 1)

	require.NoError(t, svc.Remove(owner, entry.ID))
	assert.Empty(t, wishlist.entries)
}
