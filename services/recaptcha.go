package services

import (
	"encoding/json"
	"time"
	"taberu_api_ms/dtos/response"

	"github.com/gofiber/fiber/v2"
)

// RecaptchaService is the third-party proof-token strategy. The token is
// forwarded to the configured verify endpoint; anything short of an explicit
// success with a score above the threshold is a failed verification.
type RecaptchaService struct {
	VerifyURL      string
	Secret         string
	ScoreThreshold float64
	Timeout        time.Duration
}

func NewRecaptchaService(verifyURL, secret string, scoreThreshold float64, timeout time.Duration) IChallengeVerifier {
	return &RecaptchaService{
		VerifyURL:      verifyURL,
		Secret:         secret,
		ScoreThreshold: scoreThreshold,
		Timeout:        timeout,
	}
}

func (s *RecaptchaService) Issue() (*response.CaptchaResponse, error) {
	return nil, ErrChallengeIssueUnsupported
}

func (s *RecaptchaService) Verify(_ string, proofToken string) (bool, error) {
	if proofToken == "" {
		return false, nil
	}

	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.Header.SetMethod(fiber.MethodPost)
	req.SetRequestURI(s.VerifyURL)

	args := fiber.AcquireArgs()
	args.Set("secret", s.Secret)
	args.Set("response", proofToken)
	agent.Form(args)
	fiber.ReleaseArgs(args)

	agent.Timeout(s.Timeout)
	if err := agent.Parse(); err != nil {
		return false, err
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return false, errs[0]
	}
	if code != fiber.StatusOK {
		return false, nil
	}

	var result struct {
		Success bool    `json:"success"`
		Score   float64 `json:"score"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return false, nil
	}

	return result.Success && result.Score > s.ScoreThreshold, nil
}
