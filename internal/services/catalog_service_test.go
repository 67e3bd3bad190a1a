package services

import (
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/services/dto"
)

func makeItems(ids ...uint) []models.Item {
	items := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		item := models.Item{Name: "item"}
		item.ID = id
		items = append(items, item)
	}
	return items
}

func itemIDRange(from, to uint) []uint {
	ids := make([]uint, 0, to-from+1)
	for id := from; id <= to; id++ {
		ids = append(ids, id)
	}
	return ids
}

func newTestCatalogService() (*CatalogService, *fakeItemRepo, *fakeAdRepo, *fakeCommentRepo, *fakeCityRepo) {
	items := newFakeItemRepo()
	ads := newFakeAdRepo()
	comments := newFakeCommentRepo()
	cities := newFakeCityRepo()
	svc := NewCatalogService(items, ads, comments, cities, rand.New(rand.NewSource(1)))
	return svc, items, ads, comments, cities
}

func TestCatalogService_HotItemsSamplesTwenty(t *testing.T) {
	svc, items, _, _, _ := newTestCatalogService()
	items.hotPool = makeItems(itemIDRange(1, 25)...)

	picked, err := svc.HotItems()
	require.NoError(t, err)
	assert.Len(t, picked, 20)

	// Повторов нет, итог по возрастанию id.
	seen := map[uint]bool{}
	for _, item := range picked {
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
	}
	assert.True(t, sort.SliceIsSorted(picked, func(i, j int) bool {
		return picked[i].ID < picked[j].ID
	}))
}

func TestCatalogService_HotItemsSmallPoolReturnedWhole(t *testing.T) {
	svc, items, _, _, _ := newTestCatalogService()
	items.hotPool = makeItems(itemIDRange(1, 19)...)

	picked, err := svc.HotItems()
	require.NoError(t, err)
	assert.Len(t, picked, 19)
}

func TestCatalogService_BestItemsSortedDescending(t *testing.T) {
	svc, items, _, _, _ := newTestCatalogService()
	items.bestPool = makeItems(itemIDRange(1, 25)...)

	picked, err := svc.BestItems()
	require.NoError(t, err)
	assert.Len(t, picked, 20)
	assert.True(t, sort.SliceIsSorted(picked, func(i, j int) bool {
		return picked[i].ID > picked[j].ID
	}))
}

func TestCatalogService_EmptyPools(t *testing.T) {
	svc, _, _, _, _ := newTestCatalogService()

	hot, err := svc.HotItems()
	require.NoError(t, err)
	assert.Empty(t, hot)

	best, err := svc.BestItems()
	require.NoError(t, err)
	assert.Empty(t, best)

	ads, err := svc.ListAds()
	require.NoError(t, err)
	assert.Empty(t, ads)
}

func TestCatalogService_ListAdsSampling(t *testing.T) {
	svc, _, ads, _, _ := newTestCatalogService()
	for i := 0; i < 5; i++ {
		require.NoError(t, ads.Create(&models.Ad{Name: "ad", Image: "x.png", ItemID: 1}))
	}

	picked, err := svc.ListAds()
	require.NoError(t, err)
	assert.Len(t, picked, 5)

	for i := 0; i < 30; i++ {
		require.NoError(t, ads.Create(&models.Ad{Name: "ad", Image: "x.png", ItemID: 1}))
	}

	picked, err = svc.ListAds()
	require.NoError(t, err)
	assert.Len(t, picked, 20)

	seen := map[uint]bool{}
	for _, ad := range picked {
		assert.False(t, seen[ad.ID])
		seen[ad.ID] = true
	}
}

func TestCatalogService_ConcurrentShowcaseRequests(t *testing.T) {
	svc, items, ads, _, _ := newTestCatalogService()
	items.hotPool = makeItems(itemIDRange(1, 100)...)
	items.bestPool = makeItems(itemIDRange(1, 100)...)
	for i := 0; i < 30; i++ {
		require.NoError(t, ads.Create(&models.Ad{Name: "ad", Image: "x.png", ItemID: 1}))
	}

	// Общий генератор дергают несколько запросов одновременно;
	// под -race тут не должно быть гонки на его состоянии.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				hot, err := svc.HotItems()
				assert.NoError(t, err)
				assert.Len(t, hot, 20)

				best, err := svc.BestItems()
				assert.NoError(t, err)
				assert.Len(t, best, 20)

				picked, err := svc.ListAds()
				assert.NoError(t, err)
				assert.Len(t, picked, 20)
			}
		}()
	}
	wg.Wait()
}

func TestCatalogService_UpsertCommentOverwrites(t *testing.T) {
	svc, items, _, comments, _ := newTestCatalogService()
	require.NoError(t, items.Create(&models.Item{Name: "bike", StoreID: 1}))

	actor := &models.User{}
	actor.ID = 7

	require.NoError(t, svc.UpsertComment(actor, 1, dto.CommentRequest{Content: "ok", Stars: 3}))
	require.NoError(t, svc.UpsertComment(actor, 1, dto.CommentRequest{Content: "great", Stars: 5}))

	// Один отзыв на пару (пользователь, товар).
	assert.Len(t, comments.comments, 1)
	assert.Equal(t, "great", comments.comments[0].Content)
	assert.Equal(t, 5, comments.comments[0].Stars)
}

func TestCatalogService_UpsertCommentUnknownItem(t *testing.T) {
	svc, _, _, _, _ := newTestCatalogService()
	actor := &models.User{}
	actor.ID = 7

	err := svc.UpsertComment(actor, 404, dto.CommentRequest{Content: "ok", Stars: 3})
	assert.Error(t, err)
}

func TestCatalogService_Districts(t *testing.T) {
	svc, _, _, _, cities := newTestCatalogService()

	city := &models.City{Name: "Алматы"}
	require.NoError(t, cities.CreateCity(city))
	require.NoError(t, cities.CreateDistrict(&models.District{Name: "Центр", CityID: city.ID}))
	require.NoError(t, cities.CreateDistrict(&models.District{Name: "Север", CityID: city.ID}))

	districts, err := svc.Districts(city.ID)
	require.NoError(t, err)
	assert.Len(t, districts, 2)

	_, err = svc.Districts(999)
	assert.Error(t, err)
}
