package domain

// Device holds the last trusted baseline for one device fingerprint. Every
// successful login overwrites the baseline unconditionally.
type Device struct {
	DeviceHash string  `gorm:"primaryKey;size:64" json:"device_hash"`
	LastLat    float64 `json:"last_lat"`
	LastLng    float64 `json:"last_lng"`
	LastIp     string  `gorm:"size:64" json:"last_ip"`
	UpdatedAt  int64   `gorm:"not null" json:"updated_at"` // epoch millis
}

func (d *Device) LastLocation() GeoPoint {
	return GeoPoint{Latitude: d.LastLat, Longitude: d.LastLng}
}
