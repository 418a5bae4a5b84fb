package repository

import (
	"taberu_api_ms/domain"

	"gorm.io/gorm"
)

type IRestaurantRepository interface {
	GetAll(db *gorm.DB) ([]domain.Restaurant, error)
	GetByID(db *gorm.DB, id string) (*domain.Restaurant, error)
	Save(db *gorm.DB, restaurant *domain.Restaurant) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type RestaurantRepository struct {
}

func NewRestaurantRepository() IRestaurantRepository {
	return &RestaurantRepository{}
}

func (r *RestaurantRepository) GetAll(db *gorm.DB) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	if err := db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *RestaurantRepository) GetByID(db *gorm.DB, id string) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := db.Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Save(db *gorm.DB, restaurant *domain.Restaurant) error {
	return db.Save(restaurant).Error
}

func (r *RestaurantRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) error {
	updates := columnUpdates(domain.Restaurant{}, fields)
	if len(updates) == 0 {
		return nil
	}
	return db.Model(&domain.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&domain.Restaurant{}, "id = ?", id).Error
}
