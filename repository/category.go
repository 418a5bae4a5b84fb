package repository

import (
	"taberu_api_ms/domain"

	"gorm.io/gorm"
)

type ICategoryRepository interface {
	GetAll(db *gorm.DB) ([]domain.Category, error)
	GetByID(db *gorm.DB, id string) (*domain.Category, error)
	SaveAll(db *gorm.DB, categories []domain.Category) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type CategoryRepository struct {
}

func NewCategoryRepository() ICategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) GetAll(db *gorm.DB) ([]domain.Category, error) {
	var categories []domain.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(db *gorm.DB, id string) (*domain.Category, error) {
	var category domain.Category
	if err := db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) SaveAll(db *gorm.DB, categories []domain.Category) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range categories {
			if err := tx.Save(&categories[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CategoryRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	updates := columnUpdates(domain.Category{}, fields)
	if len(updates) == 0 {
		return nil
	}
	return db.Model(&domain.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CategoryRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&domain.Category{}, "id = ?", id).Error
}
