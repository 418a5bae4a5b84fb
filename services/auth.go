package services

import (
	"errors"
	"time"
	"taberu_api_ms/domain"
	"taberu_api_ms/dtos/request"
	"taberu_api_ms/repository"

	"github.com/gofiber/fiber/v2/log"
	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingCaptcha    = errors.New("missing captcha information")
	ErrCaptchaFailed     = errors.New("captcha validation failed")
	ErrMissingLocation   = errors.New("missing location data")
	ErrUntrustedLocation = errors.New("suspicious location or IP change")
)

type IAuthService interface {
	Authenticate(info *domain.ClientInfo, captchaId string, captchaToken string) (string, error)
	Revoke(token string) error
}

type AuthService struct {
	db        *gorm.DB
	challenge IChallengeVerifier
	location  ILocationService
	jwt       IJWTService
	devices   repository.IDeviceRepository
	sessions  ISessionService
	notify    func(event *request.SuspiciousLoginEvent) error
}

func NewAuthService(
	db *gorm.DB,
	challenge IChallengeVerifier,
	location ILocationService,
	jwt IJWTService,
	devices repository.IDeviceRepository,
	sessions ISessionService,
) IAuthService {
	return &AuthService{
		db:        db,
		challenge: challenge,
		location:  location,
		jwt:       jwt,
		devices:   devices,
		sessions:  sessions,
		notify:    SendSuspiciousLoginEventToKafka,
	}
}

// Authenticate runs the full login pipeline with fail-fast short-circuits:
// challenge proof, claimed location, device trust, credential mint, baseline
// upsert, session persist. Store errors along the way fail the attempt.
func (a *AuthService) Authenticate(info *domain.ClientInfo, captchaId string, captchaToken string) (string, error) {
	if captchaToken == "" {
		return "", ErrMissingCaptcha
	}

	valid, err := a.challenge.Verify(captchaId, captchaToken)
	if err != nil {
		if errors.Is(err, ErrMissingCaptcha) {
			return "", ErrMissingCaptcha
		}
		log.Error("challenge verification error: ", err)
		return "", ErrCaptchaFailed
	}
	if !valid {
		return "", ErrCaptchaFailed
	}

	if info.Location == nil {
		return "", ErrMissingLocation
	}

	trusted, err := a.location.Evaluate(info.DeviceHash, info.Location, info.Ip)
	if err != nil {
		log.Error("location trust evaluation error: ", err)
		return "", ErrUntrustedLocation
	}
	if !trusted {
		log.Warnf("[Suspicious Login] Device %s from new location or IP: %s", info.DeviceHash, info.Ip)
		a.notifySuspiciousLogin(info)
		return "", ErrUntrustedLocation
	}

	token, err := a.jwt.GenerateToken(info.DeviceHash)
	if err != nil {
		return "", err
	}

	if err := a.devices.Upsert(a.db, &domain.Device{
		DeviceHash: info.DeviceHash,
		LastLat:    info.Location.Latitude,
		LastLng:    info.Location.Longitude,
		LastIp:     info.Ip,
		UpdatedAt:  time.Now().UnixMilli(),
	}); err != nil {
		return "", err
	}

	sessionId, err := uuid.GenerateUUID()
	if err != nil {
		return "", err
	}
	if err := a.sessions.StoreAuthSession(&domain.Session{
		SessionId:  sessionId,
		UserId:     info.DeviceHash,
		Token:      token,
		ClientInfo: *info,
	}); err != nil {
		return "", err
	}

	return token, nil
}

func (a *AuthService) Revoke(token string) error {
	return a.sessions.DeleteAuthSession(token)
}

// notifySuspiciousLogin is best effort and never on the critical path: the
// 403 goes out regardless of what happens here.
func (a *AuthService) notifySuspiciousLogin(info *domain.ClientInfo) {
	event := &request.SuspiciousLoginEvent{
		DeviceHash: info.DeviceHash,
		Ip:         info.Ip,
		Location:   info.Location,
		DetectedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("suspicious login notification panicked: ", r)
			}
		}()
		if err := a.notify(event); err != nil {
			log.Error("failed to send suspicious login event: ", err)
		}
	}()
}
