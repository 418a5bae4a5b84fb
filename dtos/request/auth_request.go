package request

import "taberu_api_ms/domain"

// AuthRequest carries the challenge proof and the claimed position. CaptchaId
// is empty under the third-party proof-token strategy.
type AuthRequest struct {
	CaptchaId    string           `json:"captchaId" validate:"omitempty,challengeid"`
	CaptchaToken string           `json:"captchaToken"`
	Location     *domain.GeoPoint `json:"location" validate:"omitempty"`
}
