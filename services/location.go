package services

import (
	"errors"
	"taberu_api_ms/domain"
	"taberu_api_ms/repository"
	"taberu_api_ms/util"

	"gorm.io/gorm"
)

type ILocationService interface {
	Evaluate(deviceHash string, location *domain.GeoPoint, ip string) (bool, error)
}

// LocationService decides whether a claimed position/IP is consistent with a
// device's last trusted baseline. Pure decision, no writes; the caller rolls
// the baseline forward only after the whole authentication succeeds.
type LocationService struct {
	db          *gorm.DB
	devices     repository.IDeviceRepository
	thresholdKm float64
}

func NewLocationService(db *gorm.DB, devices repository.IDeviceRepository, thresholdKm float64) ILocationService {
	return &LocationService{db: db, devices: devices, thresholdKm: thresholdKm}
}

func (s *LocationService) Evaluate(deviceHash string, location *domain.GeoPoint, ip string) (bool, error) {
	prev, err := s.devices.GetByHash(s.db, deviceHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Trust on first use
			return true, nil
		}
		return false, err
	}

	sameIp := prev.LastIp == ip
	distance := util.HaversineKm(prev.LastLocation(), *location)
	return sameIp && distance <= s.thresholdKm, nil
}
