package services

import (
	"time"

	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/repositories"

	"gorm.io/gorm"
)

// Фейковые репозитории в памяти. Живой БД в юнит-тестах нет.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsWithUsernameOrEmail(username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ExistsOtherWithUsernameOrEmail(excludeID uint, username, email string) (bool, error) {
	for _, u := range f.users {
		if u.ID == excludeID {
			continue
		}
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	exists, _ := f.ExistsWithUsernameOrEmail(user.Username, user.Email)
	if exists {
		return repositories.ErrUserAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) UpdatePassword(userID uint, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) UpdateIcon(userID uint, icon *string) error {
	u, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Icon = icon
	return nil
}

func (f *fakeUserRepo) Delete(userID uint) error {
	if _, ok := f.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeUserRepo) FindWithFilter(filter repositories.UserFilter) ([]models.User, int64, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

type fakeVerificationRepo struct {
	byUser map[uint]*models.Verification
	users  *fakeUserRepo
	nextID uint
}

func newFakeVerificationRepo(users *fakeUserRepo) *fakeVerificationRepo {
	return &fakeVerificationRepo{byUser: map[uint]*models.Verification{}, users: users, nextID: 1}
}

func (f *fakeVerificationRepo) FindByUserID(userID uint) (*models.Verification, error) {
	if v, ok := f.byUser[userID]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, repositories.ErrVerificationNotFound
}

func (f *fakeVerificationRepo) FindByCode(code string) (*models.Verification, error) {
	for _, v := range f.byUser {
		if v.Code == code {
			copied := *v
			if f.users != nil {
				if u, err := f.users.FindByID(v.UserID); err == nil {
					copied.User = u
				}
			}
			return &copied, nil
		}
	}
	return nil, repositories.ErrVerificationNotFound
}

func (f *fakeVerificationRepo) Upsert(userID uint, code string, lastRequest time.Time) error {
	if v, ok := f.byUser[userID]; ok {
		v.Code = code
		v.LastRequest = lastRequest
		return nil
	}
	v := &models.Verification{UserID: userID, Code: code, LastRequest: lastRequest}
	v.ID = f.nextID
	f.nextID++
	f.byUser[userID] = v
	return nil
}

func (f *fakeVerificationRepo) Delete(verification *models.Verification) error {
	delete(f.byUser, verification.UserID)
	return nil
}

type fakeItemRepo struct {
	items    map[uint]*models.Item
	hotPool  []models.Item
	bestPool []models.Item
	nextID   uint
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[uint]*models.Item{}, nextID: 1}
}

func (f *fakeItemRepo) FindByID(id uint) (*models.Item, error) {
	if item, ok := f.items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, repositories.ErrItemNotFound
}

func (f *fakeItemRepo) FindByStoreID(storeID uint) ([]models.Item, error) {
	var out []models.Item
	for _, item := range f.items {
		if item.StoreID == storeID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Create(item *models.Item) error {
	item.ID = f.nextID
	f.nextID++
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemRepo) Update(item *models.Item) error {
	if _, ok := f.items[item.ID]; !ok {
		return repositories.ErrItemNotFound
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemRepo) Delete(itemID uint) error {
	if _, ok := f.items[itemID]; !ok {
		return repositories.ErrItemNotFound
	}
	delete(f.items, itemID)
	return nil
}

func (f *fakeItemRepo) Query(query repositories.ItemQuery) ([]models.Item, int64, error) {
	var out []models.Item
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (f *fakeItemRepo) HotPool(limit int) ([]models.Item, error) {
	if len(f.hotPool) > limit {
		return f.hotPool[:limit], nil
	}
	return f.hotPool, nil
}

func (f *fakeItemRepo) BestPool(limit int) ([]models.Item, error) {
	if len(f.bestPool) > limit {
		return f.bestPool[:limit], nil
	}
	return f.bestPool, nil
}

func (f *fakeItemRepo) DecrementStock(tx *gorm.DB, itemID uint, count int) (bool, error) {
	item, ok := f.items[itemID]
	if !ok || item.Count < count {
		return false, nil
	}
	item.Count -= count
	return true, nil
}

type fakeAdRepo struct {
	ads    []models.Ad
	nextID uint
}

func newFakeAdRepo() *fakeAdRepo {
	return &fakeAdRepo{nextID: 1}
}

func (f *fakeAdRepo) FindByID(id uint) (*models.Ad, error) {
	for _, ad := range f.ads {
		if ad.ID == id {
			copied := ad
			return &copied, nil
		}
	}
	return nil, repositories.ErrAdNotFound
}

func (f *fakeAdRepo) LatestPool(limit int) ([]models.Ad, error) {
	out := make([]models.Ad, len(f.ads))
	copy(out, f.ads)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAdRepo) Create(ad *models.Ad) error {
	ad.ID = f.nextID
	f.nextID++
	f.ads = append(f.ads, *ad)
	return nil
}

func (f *fakeAdRepo) Delete(adID uint) error {
	for i, ad := range f.ads {
		if ad.ID == adID {
			f.ads = append(f.ads[:i], f.ads[i+1:]...)
			return nil
		}
	}
	return repositories.ErrAdNotFound
}

type fakeCommentRepo struct {
	comments []models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (f *fakeCommentRepo) FindByUserAndItem(userID, itemID uint) (*models.Comment, error) {
	for _, c := range f.comments {
		if c.UserID == userID && c.ItemID == itemID {
			copied := c
			return &copied, nil
		}
	}
	return nil, repositories.ErrCommentNotFound
}

func (f *fakeCommentRepo) FindByItemID(itemID uint, page, pageSize int) ([]models.Comment, int64, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.ItemID == itemID {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCommentRepo) Upsert(comment *models.Comment) error {
	for i, c := range f.comments {
		if c.UserID == comment.UserID && c.ItemID == comment.ItemID {
			f.comments[i].Content = comment.Content
			f.comments[i].Stars = comment.Stars
			comment.ID = c.ID
			return nil
		}
	}
	comment.ID = f.nextID
	f.nextID++
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) Delete(commentID uint) error {
	for i, c := range f.comments {
		if c.ID == commentID {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return repositories.ErrCommentNotFound
}

type fakeCartItemRepo struct {
	cartItems []models.CartItem
	nextID    uint
}

func newFakeCartItemRepo() *fakeCartItemRepo {
	return &fakeCartItemRepo{nextID: 1}
}

func (f *fakeCartItemRepo) FindByID(id uint) (*models.CartItem, error) {
	for _, c := range f.cartItems {
		if c.ID == id {
			copied := c
			return &copied, nil
		}
	}
	return nil, repositories.ErrCartItemNotFound
}

func (f *fakeCartItemRepo) FindByUserID(userID uint) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, c := range f.cartItems {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCartItemRepo) FindByUserAndItem(userID, itemID uint) (*models.CartItem, error) {
	for _, c := range f.cartItems {
		if c.UserID == userID && c.ItemID == itemID {
			copied := c
			return &copied, nil
		}
	}
	return nil, repositories.ErrCartItemNotFound
}

func (f *fakeCartItemRepo) Create(cartItem *models.CartItem) error {
	cartItem.ID = f.nextID
	f.nextID++
	f.cartItems = append(f.cartItems, *cartItem)
	return nil
}

func (f *fakeCartItemRepo) UpdateCount(cartItemID uint, count int) error {
	for i, c := range f.cartItems {
		if c.ID == cartItemID {
			f.cartItems[i].Count = count
			return nil
		}
	}
	return repositories.ErrCartItemNotFound
}

func (f *fakeCartItemRepo) Delete(cartItemID uint) error {
	for i, c := range f.cartItems {
		if c.ID == cartItemID {
			f.cartItems = append(f.cartItems[:i], f.cartItems[i+1:]...)
			return nil
		}
	}
	return repositories.ErrCartItemNotFound
}

type fakeWishlistRepo struct {
	entries []models.WishlistItem
	nextID  uint
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{nextID: 1}
}

func (f *fakeWishlistRepo) FindByUserID(userID uint) ([]models.WishlistItem, error) {
	var out []models.WishlistItem
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) FindByUserAndItem(userID, itemID uint) (*models.WishlistItem, error) {
	for _, e := range f.entries {
		if e.UserID == userID && e.ItemID == itemID {
			copied := e
			return &copied, nil
		}
	}
	return nil, repositories.ErrWishlistItemNotFound
}

func (f *fakeWishlistRepo) Create(entry *models.WishlistItem) error {
	entry.ID = f.nextID
	f.nextID++
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeWishlistRepo) DeleteOwned(userID, entryID uint) error {
	for i, e := range f.entries {
		if e.ID == entryID && e.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return repositories.ErrWishlistItemNotFound
}

type fakeCityRepo struct {
	cities    map[uint]*models.City
	districts map[uint]*models.District
	nextID    uint
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{cities: map[uint]*models.City{}, districts: map[uint]*models.District{}, nextID: 1}
}

func (f *fakeCityRepo) FindAll() ([]models.City, error) {
	out := make([]models.City, 0, len(f.cities))
	for _, c := range f.cities {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCityRepo) FindByID(id uint) (*models.City, error) {
	if c, ok := f.cities[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, repositories.ErrCityNotFound
}

func (f *fakeCityRepo) FindDistrictByID(id uint) (*models.District, error) {
	if d, ok := f.districts[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, repositories.ErrDistrictNotFound
}

func (f *fakeCityRepo) FindDistrictsByCityID(cityID uint) ([]models.District, error) {
	var out []models.District
	for _, d := range f.districts {
		if d.CityID == cityID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeCityRepo) CreateCity(city *models.City) error {
	city.ID = f.nextID
	f.nextID++
	copied := *city
	f.cities[city.ID] = &copied
	return nil
}

func (f *fakeCityRepo) CreateDistrict(district *models.District) error {
	district.ID = f.nextID
	f.nextID++
	copied := *district
	f.districts[district.ID] = &copied
	return nil
}

func (f *fakeCityRepo) DeleteCity(cityID uint) error {
	if _, ok := f.cities[cityID]; !ok {
		return repositories.ErrCityNotFound
	}
	delete(f.cities, cityID)
	return nil
}

func (f *fakeCityRepo) DeleteDistrict(districtID uint) error {
	if _, ok := f.districts[districtID]; !ok {
		return repositories.ErrDistrictNotFound
	}
	delete(f.districts, districtID)
	return nil
}
