package services

import (
	"errors"
	"time"
	"taberu_api_ms/domain"
	"taberu_api_ms/repository"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type ICommentService interface {
	GetAll(restaurantId string) ([]domain.Comment, error)
	GetByID(id string) (*domain.Comment, error)
	Create(comment *domain.Comment) error
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type CommentService struct {
	db   *gorm.DB
	repo repository.ICommentRepository
}

func NewCommentService(db *gorm.DB, repo repository.ICommentRepository) ICommentService {
	return &CommentService{db: db, repo: repo}
}

func (s *CommentService) GetAll(restaurantId string) ([]domain.Comment, error) {
	return s.repo.GetAll(s.db, restaurantId)
}

func (s *CommentService) GetByID(id string) (*domain.Comment, error) {
	comment, err := s.repo.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Create(comment *domain.Comment) error {
	now := time.Now().UTC().Format(time.RFC3339)
	comment.CreatedAt = now
	comment.UpdatedAt = now
	if comment.Replies == nil {
		comment.Replies = []domain.Reply{}
	}
	return s.repo.Save(s.db, comment)
}

func (s *CommentService) Update(id string, fields map[string]interface{}) error {
	fields["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(s.db, id, fields)
}

func (s *CommentService) Delete(id string) error {
	return s.repo.Delete(s.db, id)
}
