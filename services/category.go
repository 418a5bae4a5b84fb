package services

import (
	"errors"
	"taberu_api_ms/domain"
	"taberu_api_ms/repository"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type ICategoryService interface {
	GetAll() ([]domain.Category, error)
	GetByID(id string) (*domain.Category, error)
	CreateAll(categories []domain.Category) error
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type CategoryService struct {
	db   *gorm.DB
	repo repository.ICategoryRepository
}

func NewCategoryService(db *gorm.DB, repo repository.ICategoryRepository) ICategoryService {
	return &CategoryService{db: db, repo: repo}
}

func (s *CategoryService) GetAll() ([]domain.Category, error) {
	return s.repo.GetAll(s.db)
}

func (s *CategoryService) GetByID(id string) (*domain.Category, error) {
	category, err := s.repo.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) CreateAll(categories []domain.Category) error {
	return s.repo.SaveAll(s.db, categories)
}

func (s *CategoryService) Update(id string, fields map[string]interface{}) error {
	return s.repo.Update(s.db, id, fields)
}

func (s *CategoryService) Delete(id string) error {
	return s.repo.Delete(s.db, id)
}
