package repositories

import (
	"errors"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	FindByUserAndItem(userID, itemID uint) (*models.Comment, error)
	FindByItemID(itemID uint, page, pageSize int) ([]models.Comment, int64, error)
	// Upsert создает или перезаписывает отзыв пользователя на товар и в той же
	// транзакции пересчитывает average_stars и comment_counts товара.
	Upsert(comment *models.Comment) error
	Delete(commentID uint) error
}

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) FindByUserAndItem(userID, itemID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "user_id = ? AND item_id = ?", userID, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) FindByItemID(itemID uint, page, pageSize int) ([]models.Comment, int64, error) {
	dbQuery := r.db.Model(&models.Comment{}).Where("item_id = ?", itemID)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dbQuery = dbQuery.Order("id DESC")
	if pageSize > 0 {
		offset := (page - 1) * pageSize
		if offset < 0 {
			offset = 0
		}
		dbQuery = dbQuery.Offset(offset).Limit(pageSize)
	}

	var comments []models.Comment
	err := dbQuery.Find(&comments).Error
	return comments, total, err
}

func (r *CommentRepositoryImpl) Upsert(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Comment
		err := tx.First(&existing, "user_id = ? AND item_id = ?", comment.UserID, comment.ItemID).Error
		switch {
		case err == nil:
			result := tx.Model(&existing).Updates(map[string]interface{}{
				"content": comment.Content,
				"stars":   comment.Stars,
			})
			if result.Error != nil {
				return result.Error
			}
			comment.ID = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(comment).Error; err != nil {
				return err
			}
		default:
			return err
		}
		return recalcItemRating(tx, comment.ItemID)
	})
}

func (r *CommentRepositoryImpl) Delete(commentID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, "id = ?", commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}
		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		return recalcItemRating(tx, comment.ItemID)
	})
}

// recalcItemRating пересчитывает агрегаты товара по живым отзывам.
func recalcItemRating(tx *gorm.DB, itemID uint) error {
	var stats struct {
		Count int64
		Avg   float64
	}
	err := tx.Model(&models.Comment{}).
		Select("COUNT(*) AS count, COALESCE(AVG(stars), 0) AS avg").
		Where("item_id = ?", itemID).
		Scan(&stats).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Item{}).Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"average_stars":  stats.Avg,
			"comment_counts": stats.Count,
		}).Error
}
