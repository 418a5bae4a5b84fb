package services

import (
	"errors"
	"strings"
	"time"
	"taberu_api_ms/domain"
	"taberu_api_ms/dtos/response"
	"taberu_api_ms/repository"
	"taberu_api_ms/util"

	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"
)

// ErrChallengeIssueUnsupported is returned by strategies that only validate
// externally issued proof tokens.
var ErrChallengeIssueUnsupported = errors.New("challenge issuing is not supported by this strategy")

// IChallengeVerifier is the bot-resistance capability. Verify must fail
// closed: any store or transport problem counts as a failed verification.
type IChallengeVerifier interface {
	Issue() (*response.CaptchaResponse, error)
	Verify(challengeId string, answer string) (bool, error)
}

// CaptchaService is the self-hosted code-challenge strategy.
type CaptchaService struct {
	db       *gorm.DB
	repo     repository.IChallengeRepository
	validity time.Duration
}

func NewCaptchaService(db *gorm.DB, repo repository.IChallengeRepository, validity time.Duration) IChallengeVerifier {
	return &CaptchaService{db: db, repo: repo, validity: validity}
}

func (s *CaptchaService) Issue() (*response.CaptchaResponse, error) {
	challengeId, err := uuid.GenerateUUID()
	if err != nil {
		return nil, err
	}
	code := util.GenerateCaptchaCode()

	challenge := &domain.Challenge{
		ChallengeId: challengeId,
		Value:       code,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if err := s.repo.Create(s.db, challenge); err != nil {
		return nil, err
	}

	return &response.CaptchaResponse{
		CaptchaId: challengeId,
		Question:  "Enter this code: " + code,
	}, nil
}

// Verify checks the answer case-insensitively and spends the challenge. A
// challenge verifies at most once; wrong answers leave it spendable within
// the validity window.
func (s *CaptchaService) Verify(challengeId string, answer string) (bool, error) {
	// This strategy can only verify challenges it issued, so the id is as
	// mandatory as the answer
	if challengeId == "" {
		return false, ErrMissingCaptcha
	}

	challenge, err := s.repo.GetByID(s.db, challengeId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if challenge.Used {
		return false, nil
	}
	if time.Now().UnixMilli()-challenge.CreatedAt > s.validity.Milliseconds() {
		return false, nil
	}
	if !strings.EqualFold(challenge.Value, answer) {
		return false, nil
	}

	return s.repo.Consume(s.db, challengeId)
}
