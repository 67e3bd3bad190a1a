package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildItemOrder_PlainID(t *testing.T) {
	assert.Equal(t, []string{"id ASC"}, BuildItemOrder(ItemSortByID, false))
	assert.Equal(t, []string{"id DESC"}, BuildItemOrder(ItemSortByID, true))
}

func TestBuildItemOrder_TieBreakOppositeDirection(t *testing.T) {
	// Вторичная сортировка по id идет в направлении, противоположном основному.
	cases := []struct {
		sortBy ItemSortBy
		column string
	}{
		{ItemSortByName, "name"},
		{ItemSortByStoreID, "store_id"},
		{ItemSortByPrice, "price"},
		{ItemSortByHottest, "comment_counts"},
		{ItemSortByBest, "average_stars"},
	}

	for _, tc := range cases {
		t.Run(string(tc.sortBy), func(t *testing.T) {
			assert.Equal(t,
				[]string{tc.column + " ASC", "id DESC"},
				BuildItemOrder(tc.sortBy, false))
			assert.Equal(t,
				[]string{tc.column + " DESC", "id ASC"},
				BuildItemOrder(tc.sortBy, true))
		})
	}
}

func TestBuildItemOrder_UnknownKeyFallsBackToID(t *testing.T) {
	assert.Equal(t, []string{"id ASC"}, BuildItemOrder("", false))
	assert.Equal(t, []string{"id DESC"}, BuildItemOrder("bogus", true))
}

func TestBuildItemNameFilter_Empty(t *testing.T) {
	clause, args := BuildItemNameFilter("")
	assert.Empty(t, clause)
	assert.Nil(t, args)

	clause, args = BuildItemNameFilter("   \t ")
	assert.Empty(t, clause)
	assert.Nil(t, args)
}

func TestBuildItemNameFilter_SingleToken(t *testing.T) {
	clause, args := BuildItemNameFilter("велосипед")
	assert.Equal(t, "name LIKE ?", clause)
	assert.Equal(t, []interface{}{"%велосипед%"}, args)
}

func TestBuildItemNameFilter_MultipleTokensJoinedWithOR(t *testing.T) {
	clause, args := BuildItemNameFilter("  детский  велосипед ")
	assert.Equal(t, "name LIKE ? OR name LIKE ?", clause)
	assert.Equal(t, []interface{}{"%детский%", "%велосипед%"}, args)
}

func TestBuildItemNeed18Filter(t *testing.T) {
	clause, args := BuildItemNeed18Filter(nil)
	assert.Equal(t, "need_18 = ?", clause)
	assert.Equal(t, []interface{}{false}, args)

	on := true
	clause, args = BuildItemNeed18Filter(&on)
	assert.Equal(t, "need_18 = ? OR need_18 = ?", clause)
	assert.Equal(t, []interface{}{false, true}, args)

	// Явный false дублирует невыставленный фильтр.
	off := false
	clause, args = BuildItemNeed18Filter(&off)
	assert.Equal(t, "need_18 = ? OR need_18 = ?", clause)
	assert.Equal(t, []interface{}{false, false}, args)
}

func TestBuildUserOrder(t *testing.T) {
	assert.Equal(t, []string{"id ASC"}, BuildUserOrder(UserSortByID, false))
	assert.Equal(t, []string{"id DESC"}, BuildUserOrder(UserSortByID, true))
	assert.Equal(t, []string{"username ASC"}, BuildUserOrder(UserSortByUsername, false))
	assert.Equal(t, []string{"created_at DESC"}, BuildUserOrder(UserSortByCreatedAt, true))
	assert.Equal(t, []string{"id ASC"}, BuildUserOrder("nonsense", true))
}
