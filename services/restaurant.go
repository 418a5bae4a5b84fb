package services

import (
	"errors"
	"taberu_api_ms/domain"
	"taberu_api_ms/repository"

	"gorm.io/gorm"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

type IRestaurantService interface {
	GetAll() ([]domain.Restaurant, error)
	GetByID(id string) (*domain.Restaurant, error)
	Create(restaurant *domain.Restaurant) error
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type RestaurantService struct {
	db   *gorm.DB
	repo repository.IRestaurantRepository
}

func NewRestaurantService(db *gorm.DB, repo repository.IRestaurantRepository) IRestaurantService {
	return &RestaurantService{db: db, repo: repo}
}

func (s *RestaurantService) GetAll() ([]domain.Restaurant, error) {
	return s.repo.GetAll(s.db)
}

func (s *RestaurantService) GetByID(id string) (*domain.Restaurant, error) {
	restaurant, err := s.repo.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) Create(restaurant *domain.Restaurant) error {
	return s.repo.Save(s.db, restaurant)
}

func (s *RestaurantService) Update(id string, fields map[string]interface{}) error {
	return s.repo.Update(s.db, id, fields)
}

func (s *RestaurantService) Delete(id string) error {
	return s.repo.Delete(s.db, id)
}
