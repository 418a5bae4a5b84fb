package repository

import (
	"taberu_api_ms/domain"

	"gorm.io/gorm"
)

type IChallengeRepository interface {
	Create(db *gorm.DB, challenge *domain.Challenge) error
	GetByID(db *gorm.DB, challengeId string) (*domain.Challenge, error)
	Consume(db *gorm.DB, challengeId string) (bool, error)
}

type ChallengeRepository struct {
}

func NewChallengeRepository() IChallengeRepository {
	return &ChallengeRepository{}
}

func (r *ChallengeRepository) Create(db *gorm.DB, challenge *domain.Challenge) error {
	return db.Create(challenge).Error
}

func (r *ChallengeRepository) GetByID(db *gorm.DB, challengeId string) (*domain.Challenge, error) {
	var challenge domain.Challenge
	if err := db.Where("challenge_id = ?", challengeId).First(&challenge).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

// Consume marks the challenge used with a conditional update so that two
// concurrent verifications cannot both spend the same challenge. Returns
// false when another caller got there first or the record is gone.
func (r *ChallengeRepository) Consume(db *gorm.DB, challengeId string) (bool, error) {
	res := db.Model(&domain.Challenge{}).
		Where("challenge_id = ? AND used = ?", challengeId, false).
		Update("used", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
