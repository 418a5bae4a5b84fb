package domain

// GeoPoint is a geographic position in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// ClientInfo is the transport-level identity of a connecting client. Location
// is client-supplied and untrusted until the trust check has passed.
type ClientInfo struct {
	Ip         string    `json:"ip"`
	UserAgent  string    `json:"userAgent"`
	DeviceHash string    `json:"deviceHash"`
	Location   *GeoPoint `json:"location,omitempty"`
}
