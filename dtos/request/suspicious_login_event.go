package request

import "taberu_api_ms/domain"

// SuspiciousLoginEvent is published to Kafka when a login is rejected by the
// location trust check. Consumed by the notification service.
type SuspiciousLoginEvent struct {
	DeviceHash string           `json:"deviceHash"`
	Ip         string           `json:"ip"`
	Location   *domain.GeoPoint `json:"location,omitempty"`
	DetectedAt string           `json:"detectedAt"` // RFC 3339
}
