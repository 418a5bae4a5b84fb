package repository

import (
	"taberu_api_ms/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IDeviceRepository interface {
	GetByHash(db *gorm.DB, deviceHash string) (*domain.Device, error)
	Upsert(db *gorm.DB, device *domain.Device) error
}

type DeviceRepository struct {
}

func NewDeviceRepository() IDeviceRepository {
	return &DeviceRepository{}
}

func (r *DeviceRepository) GetByHash(db *gorm.DB, deviceHash string) (*domain.Device, error) {
	var device domain.Device
	if err := db.Where("device_hash = ?", deviceHash).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

// Upsert overwrites the whole trust baseline. Last write wins; racing logins
// for the same fingerprint are tolerated.
func (r *DeviceRepository) Upsert(db *gorm.DB, device *domain.Device) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_hash"}},
		UpdateAll: true,
	}).Create(device).Error
}
