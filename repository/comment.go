package repository

import (
	"taberu_api_ms/domain"

	"gorm.io/gorm"
)

type ICommentRepository interface {
	GetAll(db *gorm.DB, restaurantId string) ([]domain.Comment, error)
	GetByID(db *gorm.DB, id string) (*domain.Comment, error)
	Save(db *gorm.DB, comment *domain.Comment) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type CommentRepository struct {
}

func NewCommentRepository() ICommentRepository {
	return &CommentRepository{}
}

// GetAll lists comments, optionally filtered by restaurant.
func (r *CommentRepository) GetAll(db *gorm.DB, restaurantId string) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := db
	if restaurantId != "" {
		query = query.Where("restaurant_id = ?", restaurantId)
	}
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) GetByID(db *gorm.DB, id string) (*domain.Comment, error) {
	var comment domain.Comment
	if err := db.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Save(db *gorm.DB, comment *domain.Comment) error {
	return db.Save(comment).Error
}

func (r *CommentRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	updates := columnUpdates(domain.Comment{}, fields)
	if len(updates) == 0 {
		return nil
	}
	return db.Model(&domain.Comment{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CommentRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&domain.Comment{}, "id = ?", id).Error
}
